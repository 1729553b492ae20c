package routes

import "github.com/gofiber/fiber/v2"

// congratulationRoutes จำกัดเฉพาะการสร้างการ์ด การเปิดอ่านไม่จำกัด
func congratulationRoutes(router fiber.Router, d *Deps) {
	congrats := router.Group("/congratulations")

	congrats.Post("/", d.limit(d.Limiters.Congratulate), d.Congratulations.Create)
	congrats.Get("/", d.Congratulations.List)
	congrats.Get("/:shareId", d.Congratulations.GetByShareID)
	congrats.Get("/:shareId/qrcode", d.Congratulations.QRCode)
}
