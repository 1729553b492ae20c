package routes

import "github.com/gofiber/fiber/v2"

func analyticsRoutes(router fiber.Router, d *Deps) {
	router.Post("/analytics", d.limit(d.Limiters.Analytics), d.Analytics.Ingest)
}
