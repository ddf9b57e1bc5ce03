package pdf

import (
	"bytes"
	"regexp"
)

var (
	datePattern = regexp.MustCompile(`/(CreationDate|ModDate)\s*\(D:[^)]*\)`)
	idPattern   = regexp.MustCompile(`/ID\s*\[\s*<[0-9A-Fa-f]*>\s*<[0-9A-Fa-f]*>\s*\]`)
)

// วันที่คงที่ที่ใช้แทนเวลาสร้างไฟล์
const fixedDateDigits = "20000101000000"

// Normalize แทนวันที่สร้างไฟล์และ /ID ด้วยค่าคงที่ ความยาวเท่าเดิมทุกไบต์
// ตาราง xref จึงยังชี้ตำแหน่งถูก และข้อมูลเดียวกันได้ไฟล์เดียวกันทุกครั้ง
func Normalize(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)

	out = datePattern.ReplaceAllFunc(out, fixDate)
	out = idPattern.ReplaceAllFunc(out, zeroHex)
	return out
}

func fixDate(match []byte) []byte {
	out := make([]byte, len(match))
	copy(out, match)

	start := bytes.Index(out, []byte("(D:")) + len("(D:")
	n := 0
	for i := start; i < len(out); i++ {
		c := out[i]
		if c < '0' || c > '9' {
			continue
		}
		if n < len(fixedDateDigits) {
			out[i] = fixedDateDigits[n]
		} else {
			out[i] = '0'
		}
		n++
	}
	return out
}

func zeroHex(match []byte) []byte {
	out := make([]byte, len(match))
	copy(out, match)

	inHex := false
	for i, c := range out {
		switch {
		case c == '<':
			inHex = true
		case c == '>':
			inHex = false
		case inHex:
			out[i] = '0'
		}
	}
	return out
}
