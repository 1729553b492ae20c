package routes

import "github.com/gofiber/fiber/v2"

// trackingRoutes ทุก endpoint ใต้ /track ใช้โควตาเดียวกัน
func trackingRoutes(router fiber.Router, d *Deps) {
	track := router.Group("/track", d.limit(d.Limiters.Track))

	track.Post("/pageview", d.Tracking.TrackPageView)
	track.Post("/interaction", d.Tracking.TrackInteraction)
	track.Get("/profile/:fingerprint", d.Tracking.GetProfile)
}
