package routes

import (
	"portfolio-backend/src/controllers"
	"portfolio-backend/src/middleware"
	"portfolio-backend/src/ratelimit"
	"portfolio-backend/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Limiters แยกโควตาตาม route group; ค่า nil = ไม่จำกัด
type Limiters struct {
	Track        ratelimit.Limiter
	Analytics    ratelimit.Limiter
	Congratulate ratelimit.Limiter
	FormSubmit   ratelimit.Limiter
	Login        ratelimit.Limiter
}

type Deps struct {
	Tracking        *controllers.TrackingController
	Analytics       *controllers.AnalyticsController
	Congratulations *controllers.CongratulationController
	Forms           *controllers.FormController
	Content         *controllers.ContentController
	Auth            *controllers.AuthController

	JWT      *utils.JWTManager
	Limiters Limiters
	Log      *zap.Logger
}

func InitRoutes(app *fiber.App, d *Deps) {
	api := app.Group("/api")

	trackingRoutes(api, d)
	analyticsRoutes(api, d)
	congratulationRoutes(api, d)
	formRoutes(api, d)
	contentRoutes(api, d)
	adminRoutes(api, d)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}

func (d *Deps) limit(lim ratelimit.Limiter) fiber.Handler {
	if lim == nil {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return middleware.RateLimit(lim, d.Log)
}
