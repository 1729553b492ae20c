package controllers

import (
	"context"

	"portfolio-backend/src/models"
	"portfolio-backend/src/qrcode"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CongratulationService interface {
	Create(ctx context.Context, req *models.CreateCongratulationRequest) (*models.CongratulationEntry, error)
	GetByShareID(ctx context.Context, shareID string) (*models.CongratulationEntry, error)
	Exists(ctx context.Context, shareID string) error
	List(ctx context.Context, params models.PaginationParams) (*models.PaginatedResponse, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type CongratulationController struct {
	svc     CongratulationService
	siteURL string
}

func NewCongratulationController(svc CongratulationService, siteURL string) *CongratulationController {
	return &CongratulationController{svc: svc, siteURL: siteURL}
}

// Create godoc
// @Summary      Create a congratulation card
// @Tags         congratulations
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreateCongratulationRequest  true  "Card"
// @Success      201   {object}  models.CongratulationEntry
// @Failure      400   {object}  models.ErrorResponse
// @Failure      429   {object}  models.ErrorResponse
// @Router       /api/congratulations [post]
func (ctl *CongratulationController) Create(c *fiber.Ctx) error {
	var in models.CreateCongratulationRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	entry, err := ctl.svc.Create(c.UserContext(), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// GetByShareID godoc
// @Summary      Open a congratulation card by share id
// @Tags         congratulations
// @Produce      json
// @Param        shareId  path      string  true  "Share ID"
// @Success      200      {object}  models.CongratulationEntry
// @Failure      404      {object}  models.ErrorResponse
// @Router       /api/congratulations/{shareId} [get]
func (ctl *CongratulationController) GetByShareID(c *fiber.Ctx) error {
	entry, err := ctl.svc.GetByShareID(c.UserContext(), c.Params("shareId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(entry)
}

// QRCode godoc
// @Summary      QR code (PNG) linking to the card page
// @Tags         congratulations
// @Produce      png
// @Param        shareId  path   string  true   "Share ID"
// @Param        size     query  int     false  "Image size in pixels"  default(256)
// @Success      200
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/congratulations/{shareId}/qrcode [get]
func (ctl *CongratulationController) QRCode(c *fiber.Ctx) error {
	shareID := c.Params("shareId")
	if err := ctl.svc.Exists(c.UserContext(), shareID); err != nil {
		return respondError(c, err)
	}

	png, err := qrcode.PNG(qrcode.ShareURL(ctl.siteURL, shareID), c.QueryInt("size", qrcode.DefaultSize))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Send(png)
}

// List godoc
// @Summary      List congratulation cards, newest first
// @Tags         congratulations
// @Produce      json
// @Param        page   query     int     false  "Page"
// @Param        limit  query     int     false  "Page size"
// @Param        order  query     string  false  "asc or desc"
// @Success      200    {object}  models.PaginatedResponse
// @Router       /api/congratulations [get]
func (ctl *CongratulationController) List(c *fiber.Ctx) error {
	res, err := ctl.svc.List(c.UserContext(), paginationFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(res)
}

// Delete godoc
// @Summary      Delete a congratulation card
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "Entry ID"
// @Success      204
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/admin/congratulations/{id} [delete]
func (ctl *CongratulationController) Delete(c *fiber.Ctx) error {
	id, ok, err := paramObjectID(c, "id")
	if !ok {
		return err
	}
	if err := ctl.svc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
