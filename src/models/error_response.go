package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Error  string            `json:"error"`            // รายละเอียดของ Error
	Fields map[string]string `json:"fields,omitempty"` // ข้อความรายช่องของฟอร์ม
}
