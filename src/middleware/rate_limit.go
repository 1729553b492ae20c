package middleware

import (
	"math"
	"strconv"

	"portfolio-backend/src/ratelimit"
	"portfolio-backend/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RateLimit ปฏิเสธด้วย 429 เมื่อ client เกินโควตาของ route group นั้น
// ถ้า limiter error (เช่น redis ล่ม) จะปล่อยผ่าน
func RateLimit(lim ratelimit.Limiter, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := utils.ClientIP(c)
		res, err := lim.Allow(c.UserContext(), ip)
		if err != nil {
			log.Warn("rate limiter unavailable, allowing request", zap.String("ip", ip), zap.Error(err))
			return c.Next()
		}

		c.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))

		if !res.Allowed {
			secs := int(math.Ceil(res.RetryAfter.Seconds()))
			if secs < 1 {
				secs = 1
			}
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(secs))
			log.Info("rate limited", zap.String("ip", ip), zap.String("path", c.Path()))
			return utils.HandleError(c, fiber.StatusTooManyRequests, "Too many requests, please try again later")
		}
		return c.Next()
	}
}
