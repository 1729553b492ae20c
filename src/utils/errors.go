package utils

import "errors"

// sentinel errors ที่ service คืนให้ controller แปลงเป็น HTTP status
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("already exists")
	ErrUnavailable  = errors.New("service unavailable")
)
