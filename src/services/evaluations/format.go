package evaluations

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ToFixed จัดรูปแบบทศนิยมแบบเดียวกับ toFixed ของหน้าเว็บ
// ค่าที่อยู่กึ่งกลางพอดีจะปัดออกจากศูนย์ (FormatFloat ปัดเข้าหาเลขคู่)
func ToFixed(v float64, digits int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if digits < 0 {
		digits = 0
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	x := new(big.Float).SetPrec(512).SetFloat64(math.Abs(v))
	x.Mul(x, new(big.Float).SetPrec(512).SetInt(scale))
	x.Add(x, new(big.Float).SetPrec(512).SetFloat64(0.5))
	n, _ := x.Int(nil)

	s := n.String()
	if digits > 0 {
		if len(s) <= digits {
			s = strings.Repeat("0", digits-len(s)+1) + s
		}
		s = s[:len(s)-digits] + "." + s[len(s)-digits:]
	}
	if v < 0 {
		s = "-" + s
	}
	return s
}

// formatNumber แสดงตัวเลขแบบสั้นที่สุด เช่น 43, 9.5
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
