package auth

import (
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"portfolio-backend/src/utils"

	"golang.org/x/crypto/bcrypt"
)

const RoleAdmin = "admin"

type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Service มี admin คนเดียว ตั้งค่าผ่าน ADMIN_EMAIL / ADMIN_PASSWORD_HASH
type Service struct {
	email        string
	passwordHash []byte
	jwt          *utils.JWTManager
}

func NewService(email, passwordHash string, jwtm *utils.JWTManager) *Service {
	return &Service{
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: []byte(passwordHash),
		jwt:          jwtm,
	}
}

func (s *Service) Login(email, password string) (*LoginResult, error) {
	if s.email == "" || len(s.passwordHash) == 0 {
		return nil, fmt.Errorf("admin login disabled: %w", utils.ErrUnavailable)
	}

	email = strings.ToLower(strings.TrimSpace(email))
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.email)) == 1
	// เช็ค bcrypt เสมอ ให้เวลาตอบไม่บอกว่า email ถูกหรือไม่
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if !emailOK || passErr != nil {
		return nil, fmt.Errorf("invalid email or password: %w", utils.ErrUnauthorized)
	}

	token, exp, err := s.jwt.Generate(s.email, RoleAdmin)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: exp}, nil
}

// HashPassword ใช้สร้างค่า ADMIN_PASSWORD_HASH
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}
