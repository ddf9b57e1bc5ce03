package reports

import (
	"fmt"
	"strings"
	"unicode"

	"Evaluation-System/src/models"
	"Evaluation-System/src/services/evaluations"
	"Evaluation-System/src/services/pdf"
)

const unspecified = "ไม่ระบุ"

func renderSheet(sheet evaluations.Sheet) (string, error) {
	var b strings.Builder
	if err := evaluations.Render(&b, sheet); err != nil {
		return "", err
	}
	return b.String(), nil
}

// FileName ชื่อไฟล์ดาวน์โหลด ช่องที่ว่างใช้ "ไม่ระบุ"
//
//	chrome: evaluation-{ชื่อ}-{เดือน}-{ปี}.pdf
//	raster: แบบประเมิน-{ชื่อ}-{เดือน}-{ปี}.pdf
func FileName(record models.EvaluationRecord, strategy pdf.Strategy) string {
	prefix := "evaluation"
	if strategy == pdf.StrategyRaster {
		prefix = "แบบประเมิน"
	}
	return fmt.Sprintf("%s-%s-%s-%s.pdf",
		prefix,
		filePart(record.EmployeeName),
		filePart(record.EvaluationMonth),
		filePart(record.EvaluationYear),
	)
}

func filePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return unspecified
	}
	return sanitize(s)
}

// sanitize แทนตัวอักษรที่ใช้ในชื่อไฟล์ไม่ได้ด้วย _
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case strings.ContainsRune(`/\:*?"<>|`, r):
			return '_'
		case unicode.IsControl(r):
			return '_'
		default:
			return r
		}
	}, s)
}
