package qrcode

import (
	"encoding/base64"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 128

// GenerateQRCode สร้าง QR Code เป็นไฟล์ PNG ในหน่วยความจำ
func GenerateQRCode(data string, size int) ([]byte, error) {
	if size <= 0 {
		size = defaultSize
	}
	return qrcode.Encode(data, qrcode.Medium, size)
}

// DataURI สร้าง QR Code แล้วแปลงเป็น data URI สำหรับฝังใน <img>
func DataURI(data string, size int) (string, error) {
	png, err := GenerateQRCode(data, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
