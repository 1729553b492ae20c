package routes

import "github.com/gofiber/fiber/v2"

func authRoutes(admin fiber.Router, d *Deps) {
	admin.Post("/login", d.limit(d.Limiters.Login), d.Auth.Login) // 🔐 login
}
