package controllers

import (
	"context"
	"crypto/subtle"
	"strconv"

	"portfolio-backend/src/models"
	"portfolio-backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

type ContentService interface {
	ListPosts(ctx context.Context, first, skip int) ([]models.Post, error)
	GetPost(ctx context.Context, slug string) (*models.Post, error)
	ListProjects(ctx context.Context, featured *bool) ([]models.Project, error)
	GetProject(ctx context.Context, slug string) (*models.Project, error)
	GetPage(ctx context.Context, slug string) (*models.Page, error)
	Revalidate(ctx context.Context, tag string) ([]string, error)
}

type ContentController struct {
	svc              ContentService
	revalidateSecret string
}

func NewContentController(svc ContentService, revalidateSecret string) *ContentController {
	return &ContentController{svc: svc, revalidateSecret: revalidateSecret}
}

// ListPosts godoc
// @Summary      Blog posts from the CMS
// @Tags         content
// @Produce      json
// @Param        first  query  int  false  "Page size"  default(10)
// @Param        skip   query  int  false  "Offset"
// @Success      200    {array}  models.Post
// @Failure      503    {object}  models.ErrorResponse
// @Router       /api/content/posts [get]
func (ctl *ContentController) ListPosts(c *fiber.Ctx) error {
	posts, err := ctl.svc.ListPosts(c.UserContext(), c.QueryInt("first", 10), c.QueryInt("skip", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// GetPost godoc
// @Summary      Single post rendered to HTML
// @Tags         content
// @Produce      json
// @Param        slug  path      string  true  "Post slug"
// @Success      200   {object}  models.Post
// @Failure      404   {object}  models.ErrorResponse
// @Router       /api/content/posts/{slug} [get]
func (ctl *ContentController) GetPost(c *fiber.Ctx) error {
	post, err := ctl.svc.GetPost(c.UserContext(), c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(post)
}

// ListProjects godoc
// @Summary      Portfolio projects
// @Tags         content
// @Produce      json
// @Param        featured  query  bool  false  "Only featured projects"
// @Success      200       {array}  models.Project
// @Router       /api/content/projects [get]
func (ctl *ContentController) ListProjects(c *fiber.Ctx) error {
	var featured *bool
	if q := c.Query("featured"); q != "" {
		v, err := strconv.ParseBool(q)
		if err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "featured must be true or false")
		}
		featured = &v
	}
	projects, err := ctl.svc.ListProjects(c.UserContext(), featured)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(projects)
}

// GetProject godoc
// @Summary      Single project
// @Tags         content
// @Produce      json
// @Param        slug  path      string  true  "Project slug"
// @Success      200   {object}  models.Project
// @Failure      404   {object}  models.ErrorResponse
// @Router       /api/content/projects/{slug} [get]
func (ctl *ContentController) GetProject(c *fiber.Ctx) error {
	project, err := ctl.svc.GetProject(c.UserContext(), c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(project)
}

// GetPage godoc
// @Summary      Static page (about, now, ...)
// @Tags         content
// @Produce      json
// @Param        slug  path      string  true  "Page slug"
// @Success      200   {object}  models.Page
// @Failure      404   {object}  models.ErrorResponse
// @Router       /api/content/pages/{slug} [get]
func (ctl *ContentController) GetPage(c *fiber.Ctx) error {
	page, err := ctl.svc.GetPage(c.UserContext(), c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// Revalidate godoc
// @Summary      Purge cached CMS content
// @Tags         content
// @Produce      json
// @Param        secret               query   string  false  "Shared secret"
// @Param        X-Revalidate-Secret  header  string  false  "Shared secret"
// @Param        tag                  query   string  false  "posts, projects or pages; empty purges all"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /api/revalidate [post]
func (ctl *ContentController) Revalidate(c *fiber.Ctx) error {
	secret := c.Query("secret")
	if secret == "" {
		secret = c.Get("X-Revalidate-Secret")
	}
	if !ctl.secretMatches(secret) {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid revalidation secret")
	}

	tags, err := ctl.svc.Revalidate(c.UserContext(), c.Query("tag"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"revalidated": true, "tags": tags})
}

// ไม่ได้ตั้ง REVALIDATE_SECRET = ปิด endpoint นี้
func (ctl *ContentController) secretMatches(secret string) bool {
	if ctl.revalidateSecret == "" || secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(ctl.revalidateSecret)) == 1
}
