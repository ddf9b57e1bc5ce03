package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Converter แปลงเอกสาร HTML ที่สมบูรณ์แล้วเป็นไฟล์ PDF
type Converter interface {
	Convert(ctx context.Context, html string) ([]byte, error)
}

// Strategy วิธีสร้าง PDF
type Strategy string

const (
	// StrategyChrome ให้ Chrome พิมพ์ HTML เป็น PDF โดยตรง (ข้อความเลือกได้)
	StrategyChrome Strategy = "chrome"
	// StrategyRaster ถ่ายภาพหน้าเอกสารแล้วตัดเป็นหน้า A4 (ผลเหมือนการบันทึกจากหน้าเว็บ)
	StrategyRaster Strategy = "raster"
)

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategyChrome:
		return StrategyChrome, nil
	case StrategyRaster:
		return StrategyRaster, nil
	default:
		return "", fmt.Errorf("unknown pdf strategy %q", s)
	}
}

const (
	defaultTimeout     = 60 * time.Second
	defaultRasterScale = 2
)

// Options ค่าตั้งของตัวแปลง
type Options struct {
	ExecPath string // path ของ Chrome ถ้าว่างให้ chromedp หาเอง
	Page     PageSize
	Margins  Margins
	Timeout  time.Duration
	Scale    float64 // ใช้กับ raster เท่านั้น
	Logger   *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Page.WidthMM <= 0 || o.Page.HeightMM <= 0 {
		o.Page = A4
	}
	// ขอบเป็น 0 ทุกด้านถือว่าไม่ได้ตั้ง
	if o.Margins == (Margins{}) {
		o.Margins = DefaultMargins
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.Scale <= 0 {
		o.Scale = defaultRasterScale
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// New สร้างตัวแปลงตาม strategy
func New(strategy Strategy, opts Options) (Converter, error) {
	switch strategy {
	case StrategyChrome, "":
		return NewChromeConverter(opts), nil
	case StrategyRaster:
		return NewRasterConverter(opts), nil
	default:
		return nil, fmt.Errorf("unknown pdf strategy %q", strategy)
	}
}
