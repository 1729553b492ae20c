package middleware

import (
	"strings"

	"portfolio-backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthJWT ตรวจ Bearer token แล้วเก็บ email/role ไว้ใน Locals
func AuthJWT(jwtm *utils.JWTManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return utils.HandleError(c, fiber.StatusUnauthorized, "Missing or invalid Authorization header")
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := jwtm.Parse(tokenStr)
		if err != nil {
			return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		c.Locals("email", claims.Email)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}
