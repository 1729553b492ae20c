package utils

import (
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/spaolacci/murmur3"
)

var fingerprintPattern = regexp.MustCompile(`^[a-f0-9]{8,64}$`)

// Fingerprint ใช้ค่าที่ client ส่งมาถ้ารูปแบบถูกต้อง ไม่งั้น derive จาก ip/ua/lang
func Fingerprint(provided, ip, userAgent, acceptLanguage string) string {
	provided = strings.ToLower(strings.TrimSpace(provided))
	if ValidFingerprint(provided) {
		return provided
	}
	return DeriveFingerprint(ip, userAgent, acceptLanguage)
}

// DeriveFingerprint murmur3-128 ของ ip|ua|lang เป็น hex 32 ตัว
func DeriveFingerprint(ip, userAgent, acceptLanguage string) string {
	h := murmur3.New128()
	_, _ = h.Write([]byte(strings.TrimSpace(ip)))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(strings.TrimSpace(userAgent)))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(acceptLanguage))))
	return hex.EncodeToString(h.Sum(nil))
}

func ValidFingerprint(s string) bool {
	return fingerprintPattern.MatchString(s)
}
