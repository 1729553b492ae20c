package controllers

import (
	"context"

	"portfolio-backend/src/models"
	formSvc "portfolio-backend/src/services/forms"
	"portfolio-backend/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FormService interface {
	CreateForm(ctx context.Context, req *models.CreateFormRequest) (*models.Form, error)
	GetActiveBySlug(ctx context.Context, slug string) (*models.Form, error)
	Submit(ctx context.Context, slug string, values map[string]string, meta formSvc.SubmissionMeta) (*models.Submission, error)
	ListSubmissions(ctx context.Context, formID primitive.ObjectID, params models.PaginationParams) (*models.PaginatedResponse, error)
	DeleteSubmission(ctx context.Context, id primitive.ObjectID) error
}

type FormController struct {
	svc FormService
}

func NewFormController(svc FormService) *FormController {
	return &FormController{svc: svc}
}

// GetForm godoc
// @Summary      Public form definition
// @Tags         forms
// @Produce      json
// @Param        slug  path      string  true  "Form slug"
// @Success      200   {object}  models.Form
// @Failure      404   {object}  models.ErrorResponse
// @Router       /api/forms/{slug} [get]
func (ctl *FormController) GetForm(c *fiber.Ctx) error {
	form, err := ctl.svc.GetActiveBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return respondError(c, err)
	}
	// ไม่เปิดเผยอีเมลปลายทางให้ฝั่ง public
	form.NotifyEmail = ""
	return c.JSON(form)
}

// Submit godoc
// @Summary      Submit a form (contact, etc.)
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        slug  path      string                    true  "Form slug"
// @Param        body  body      models.SubmitFormRequest  true  "Values"
// @Success      201   {object}  models.SuccessResponse
// @Failure      400   {object}  models.ErrorResponse
// @Failure      404   {object}  models.ErrorResponse
// @Failure      429   {object}  models.ErrorResponse
// @Router       /api/forms/{slug}/submissions [post]
func (ctl *FormController) Submit(c *fiber.Ctx) error {
	var in models.SubmitFormRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}

	sub, err := ctl.svc.Submit(c.UserContext(), c.Params("slug"), in.Values, formSvc.SubmissionMeta{
		Fingerprint: utils.RequestFingerprint(c, in.Fingerprint),
		IP:          utils.ClientIP(c),
		UserAgent:   c.Get(fiber.HeaderUserAgent),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse{Success: true, ID: sub.ID.Hex()})
}

// CreateForm godoc
// @Summary      Create a form definition
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      models.CreateFormRequest  true  "Form"
// @Success      201   {object}  models.Form
// @Failure      400   {object}  models.ErrorResponse
// @Failure      409   {object}  models.ErrorResponse
// @Router       /api/admin/forms [post]
func (ctl *FormController) CreateForm(c *fiber.Ctx) error {
	var in models.CreateFormRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	form, err := ctl.svc.CreateForm(c.UserContext(), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(form)
}

// ListSubmissions godoc
// @Summary      Submissions of a form
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true   "Form ID"
// @Param        page   query     int     false  "Page"
// @Param        limit  query     int     false  "Page size"
// @Success      200    {object}  models.PaginatedResponse
// @Router       /api/admin/forms/{id}/submissions [get]
func (ctl *FormController) ListSubmissions(c *fiber.Ctx) error {
	formID, ok, err := paramObjectID(c, "id")
	if !ok {
		return err
	}
	res, err := ctl.svc.ListSubmissions(c.UserContext(), formID, paginationFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// DeleteSubmission godoc
// @Summary      Delete a submission
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Submission ID"
// @Success      204
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/admin/submissions/{id} [delete]
func (ctl *FormController) DeleteSubmission(c *fiber.Ctx) error {
	id, ok, err := paramObjectID(c, "id")
	if !ok {
		return err
	}
	if err := ctl.svc.DeleteSubmission(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
