package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Status  int               `json:"status"`           // HTTP Status Code
	Message string            `json:"message"`          // รายละเอียดของ Error
	Errors  map[string]string `json:"errors,omitempty"` // field -> reason (validation)
}

// SuccessResponse ใช้ตอบกลับ endpoint ฝั่ง tracking / ingestion
type SuccessResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
}
