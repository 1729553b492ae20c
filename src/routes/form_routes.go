package routes

import "github.com/gofiber/fiber/v2"

// formRoutes ฝั่ง public; การจัดการฟอร์มอยู่ใน adminRoutes
func formRoutes(router fiber.Router, d *Deps) {
	forms := router.Group("/forms")

	forms.Get("/:slug", d.Forms.GetForm)
	forms.Post("/:slug/submissions", d.limit(d.Limiters.FormSubmit), d.Forms.Submit)
}
