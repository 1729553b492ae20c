package routes

import (
	"portfolio-backend/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// adminRoutes login อยู่นอก JWT ส่วนที่เหลือต้องมี Bearer token
func adminRoutes(router fiber.Router, d *Deps) {
	admin := router.Group("/admin")
	authRoutes(admin, d)

	protected := admin.Group("", middleware.AuthJWT(d.JWT))
	protected.Get("/analytics/summary", d.Analytics.Summary)
	protected.Delete("/congratulations/:id", d.Congratulations.Delete)
	protected.Post("/forms", d.Forms.CreateForm)
	protected.Get("/forms/:id/submissions", d.Forms.ListSubmissions)
	protected.Delete("/submissions/:id", d.Forms.DeleteSubmission)
}
