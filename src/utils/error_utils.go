// error_utils.go
package utils

import (
	"net/url"
	"strings"

	"Evaluation-System/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Error: message,
	})
}

// HandleValidationError ตอบ 400 พร้อมข้อความรายช่อง
func HandleValidationError(c *fiber.Ctx, message string, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Error:  message,
		Fields: fields,
	})
}

// ContentDisposition header สำหรับไฟล์ที่มีชื่อภาษาไทย
// filename= เป็น ASCII สำรองสำหรับ client เก่า ส่วน filename*= เป็นชื่อจริงแบบ UTF-8
func ContentDisposition(disposition, filename string) string {
	if disposition == "" {
		disposition = "inline"
	}
	return disposition +
		`; filename="` + asciiFallback(filename) + `"` +
		`; filename*=UTF-8''` + strings.ReplaceAll(url.QueryEscape(filename), "+", "%20")
}

func asciiFallback(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r == '"' || r == '\\':
			b.WriteByte('_')
		case r >= 0x20 && r < 0x7f:
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
