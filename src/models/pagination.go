package models

import "math"

const (
	MaxPageLimit = 100
	// MaxPage กัน (Page-1)*Limit ล้นจน skip ติดลบ
	MaxPage = 1_000_000
)

// PaginationParams ใช้เก็บค่าการแบ่งหน้า และเรียงลำดับ
type PaginationParams struct {
	Page  int    `json:"page" query:"page" example:"1"`      // หมายเลขหน้าที่ต้องการ
	Limit int    `json:"limit" query:"limit" example:"10"`   // จำนวนรายการต่อหน้า
	Order string `json:"order" query:"order" example:"desc"` // ทิศทางการเรียง (asc/desc)
}

// PaginatedResponse โครงสร้างการตอบกลับแบบแบ่งหน้า
type PaginatedResponse struct {
	Data        interface{} `json:"data"`
	Total       int64       `json:"total"`
	Page        int         `json:"page"`
	Limit       int         `json:"limit"`
	TotalPages  int         `json:"totalPages"`
	HasNext     bool        `json:"hasNext"`
	HasPrevious bool        `json:"hasPrevious"`
}

// DefaultPagination ค่าตั้งต้นสำหรับ Pagination
func DefaultPagination() PaginationParams {
	return PaginationParams{
		Page:  1,
		Limit: 10,
		Order: "desc",
	}
}

// Normalize แก้ค่าที่ผิดให้อยู่ในช่วงที่ใช้ได้
func (p *PaginationParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Order != "asc" {
		p.Order = "desc"
	}
}

// NewPaginatedResponse สร้าง PaginatedResponse ใหม่
func NewPaginatedResponse(data interface{}, total int64, params PaginationParams) *PaginatedResponse {
	totalPages := 0
	if params.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(params.Limit)))
	}

	return &PaginatedResponse{
		Data:        data,
		Total:       total,
		Page:        params.Page,
		Limit:       params.Limit,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrevious: params.Page > 1,
	}
}

// GetSkip คำนวณจำนวนรายการที่ต้องข้าม
func (p *PaginationParams) GetSkip() int64 {
	if p.Page < 1 || p.Limit < 1 {
		return 0
	}
	return (int64(p.Page) - 1) * int64(p.Limit)
}

// SortDirection คืนค่า 1 (asc) หรือ -1 (desc) สำหรับ mongo sort
func (p *PaginationParams) SortDirection() int {
	if p.Order == "asc" {
		return 1
	}
	return -1
}
