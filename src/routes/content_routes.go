package routes

import "github.com/gofiber/fiber/v2"

func contentRoutes(router fiber.Router, d *Deps) {
	content := router.Group("/content")

	content.Get("/posts", d.Content.ListPosts)
	content.Get("/posts/:slug", d.Content.GetPost)
	content.Get("/projects", d.Content.ListProjects)
	content.Get("/projects/:slug", d.Content.GetProject)
	content.Get("/pages/:slug", d.Content.GetPage)

	router.Post("/revalidate", d.Content.Revalidate)
}
