package pdf

import (
	"fmt"
	"strconv"
	"strings"
)

const mmPerInch = 25.4

// PageSize ขนาดกระดาษ หน่วยมิลลิเมตร
type PageSize struct {
	Name     string
	WidthMM  float64
	HeightMM float64
}

var (
	A4     = PageSize{Name: "A4", WidthMM: 210, HeightMM: 297}
	A5     = PageSize{Name: "A5", WidthMM: 148, HeightMM: 210}
	Letter = PageSize{Name: "Letter", WidthMM: 215.9, HeightMM: 279.4}
)

// ParsePageSize แปลงชื่อกระดาษจาก config ค่าว่างคือ A4
func ParsePageSize(name string) (PageSize, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "a4":
		return A4, nil
	case "a5":
		return A5, nil
	case "letter":
		return Letter, nil
	default:
		return PageSize{}, fmt.Errorf("unsupported page size %q", name)
	}
}

func (p PageSize) WidthInches() float64  { return p.WidthMM / mmPerInch }
func (p PageSize) HeightInches() float64 { return p.HeightMM / mmPerInch }

// Margins ระยะขอบกระดาษ หน่วยมิลลิเมตร
type Margins struct {
	Top, Right, Bottom, Left float64
}

// DefaultMargins ขอบ 20 มม. ทุกด้าน
var DefaultMargins = UniformMargins(20)

func UniformMargins(mm float64) Margins {
	return Margins{Top: mm, Right: mm, Bottom: mm, Left: mm}
}

// ParseMargins รับค่าเดียว (ทุกด้าน) หรือสี่ค่าคั่นด้วย , เรียงแบบ CSS: บน ขวา ล่าง ซ้าย
func ParseMargins(s string) (Margins, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultMargins, nil
	}

	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return Margins{}, fmt.Errorf("invalid margin %q: %w", part, err)
		}
		if v < 0 {
			return Margins{}, fmt.Errorf("margin must not be negative: %v", v)
		}
		values = append(values, v)
	}

	switch len(values) {
	case 1:
		return UniformMargins(values[0]), nil
	case 4:
		return Margins{Top: values[0], Right: values[1], Bottom: values[2], Left: values[3]}, nil
	default:
		return Margins{}, fmt.Errorf("margin needs 1 or 4 values, got %d", len(values))
	}
}

func mmToInches(mm float64) float64 { return mm / mmPerInch }
