package qrcode

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

const (
	DefaultSize = 256
	MinSize     = 64
	MaxSize     = 1024
)

// PNG สร้าง QR Code เป็นไฟล์ PNG ใน memory; size นอกช่วงจะถูกปรับให้อยู่ในช่วง
func PNG(data string, size int) ([]byte, error) {
	if strings.TrimSpace(data) == "" {
		return nil, fmt.Errorf("qrcode: empty content")
	}
	switch {
	case size <= 0:
		size = DefaultSize
	case size < MinSize:
		size = MinSize
	case size > MaxSize:
		size = MaxSize
	}
	return qrcode.Encode(data, qrcode.Medium, size)
}

// ShareURL ลิงก์หน้าการ์ดบนเว็บ frontend
func ShareURL(siteURL, shareID string) string {
	return strings.TrimRight(siteURL, "/") + "/congratulations/" + shareID
}
