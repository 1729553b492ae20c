package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret คือค่า fallback ของ JWT_SECRET ใช้ได้เฉพาะโหมด dev
const DefaultJWTSecret = "your_secret_key"

// RateRule คือกติกา rate limit หนึ่งชุด เช่น 60 ครั้งต่อ 1 นาที
type RateRule struct {
	Limit    int
	Interval time.Duration
}

type Config struct {
	AppPort        string
	AppEnv         string
	AllowedOrigins string
	SiteURL        string
	LogLevel       string
	RequestTimeout time.Duration
	// TrustedProxies คือ IP/CIDR ของ proxy ที่ยอมให้เชื่อ X-Forwarded-For
	TrustedProxies []string

	MongoURI string
	MongoDB  string

	RedisURI      string
	RedisPassword string

	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string

	CMSGraphQLURL    string
	CMSToken         string
	CMSCacheTTL      time.Duration
	RevalidateSecret string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	RateLimitMaxKeys      int
	RateLimitTrack        RateRule
	RateLimitAnalytics    RateRule
	RateLimitCongratulate RateRule
	RateLimitFormSubmit   RateRule
	RateLimitLogin        RateRule
}

// Load โหลด .env (ถ้ามี) แล้วอ่านค่าจาก environment
func Load() (*Config, error) {
	// ไม่มี .env ก็ไม่เป็นไร ใช้ env ของ process แทน
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv อ่าน Config จาก environment ปัจจุบันโดยไม่แตะไฟล์ .env
func FromEnv() (*Config, error) {
	cfg := &Config{
		AppPort:        getEnv("APP_PORT", getEnv("APP_URI", "8888")),
		AppEnv:         getEnv("APP_ENV", "production"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		SiteURL:        getEnv("PUBLIC_SITE_URL", "http://localhost:3000"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		TrustedProxies: getList("TRUSTED_PROXIES"),

		MongoURI: os.Getenv("MONGO_URI"),
		MongoDB:  getEnv("MONGO_DB", "PortfolioDB"),

		RedisURI:      os.Getenv("REDIS_URI"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		JWTSecret:         getEnv("JWT_SECRET", DefaultJWTSecret),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		CMSGraphQLURL:    os.Getenv("CMS_GRAPHQL_URL"),
		CMSToken:         os.Getenv("CMS_TOKEN"),
		RevalidateSecret: os.Getenv("REVALIDATE_SECRET"),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		SMTPFrom: os.Getenv("SMTP_FROM"),
	}

	var err error
	if cfg.RequestTimeout, err = getDuration("REQUEST_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.CMSCacheTTL, err = getDuration("CMS_CACHE_TTL", 10*time.Minute); err != nil {
		return nil, err
	}
	if cfg.SMTPPort, err = getInt("SMTP_PORT", 587); err != nil {
		return nil, err
	}
	if cfg.RateLimitMaxKeys, err = getInt("RATE_LIMIT_MAX_KEYS", 10000); err != nil {
		return nil, err
	}

	rules := []struct {
		key  string
		def  RateRule
		dest *RateRule
	}{
		{"RATE_LIMIT_TRACK", RateRule{60, time.Minute}, &cfg.RateLimitTrack},
		{"RATE_LIMIT_ANALYTICS", RateRule{30, time.Minute}, &cfg.RateLimitAnalytics},
		{"RATE_LIMIT_CONGRATULATE", RateRule{5, time.Minute}, &cfg.RateLimitCongratulate},
		{"RATE_LIMIT_FORM_SUBMIT", RateRule{3, time.Minute}, &cfg.RateLimitFormSubmit},
		{"RATE_LIMIT_LOGIN", RateRule{5, 15 * time.Minute}, &cfg.RateLimitLogin},
	}
	for _, r := range rules {
		raw := os.Getenv(r.key)
		if raw == "" {
			*r.dest = r.def
			continue
		}
		rule, err := ParseRateRule(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.key, err)
		}
		*r.dest = rule
	}

	return cfg, nil
}

// IsDevelopment บอกว่ากำลังรันในโหมด dev หรือไม่
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development" || c.AppEnv == "dev"
}

// Validate ปฏิเสธค่าที่ไม่ปลอดภัยนอกโหมด dev
func (c *Config) Validate() error {
	if c.IsDevelopment() {
		return nil
	}
	if c.JWTSecret == "" || c.JWTSecret == DefaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set to a non-default value when APP_ENV=%q", c.AppEnv)
	}
	return nil
}

// SMTPConfigured เช็คว่าตั้งค่า SMTP ครบหรือไม่
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPPort != 0 && c.SMTPFrom != ""
}

// ParseRateRule แปลงรูปแบบ "60/1m" เป็น RateRule
func ParseRateRule(raw string) (RateRule, error) {
	parts := strings.SplitN(strings.TrimSpace(raw), "/", 2)
	if len(parts) != 2 {
		return RateRule{}, fmt.Errorf("invalid rate rule %q, expected <limit>/<interval>", raw)
	}
	limit, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || limit <= 0 {
		return RateRule{}, fmt.Errorf("invalid rate limit %q", parts[0])
	}
	interval, err := time.ParseDuration(strings.TrimSpace(parts[1]))
	if err != nil || interval <= 0 {
		return RateRule{}, fmt.Errorf("invalid rate interval %q", parts[1])
	}
	return RateRule{Limit: limit, Interval: interval}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getList แยกค่าคั่นด้วย comma ตัดช่องว่างและค่าว่างทิ้ง
func getList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getInt(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
