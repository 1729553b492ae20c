package controllers

import (
	"context"
	"strconv"

	"portfolio-backend/src/models"
	"portfolio-backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

type AnalyticsService interface {
	Ingest(ctx context.Context, events []models.AnalyticsEvent, fingerprint string) (int, error)
	Summary(ctx context.Context, days int) (*models.AnalyticsSummary, error)
}

type AnalyticsController struct {
	svc AnalyticsService
}

func NewAnalyticsController(svc AnalyticsService) *AnalyticsController {
	return &AnalyticsController{svc: svc}
}

// Ingest godoc
// @Summary      Ingest a batch of client analytics events
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        body  body      models.AnalyticsBatchRequest  true  "Events"
// @Success      202   {object}  map[string]interface{}
// @Failure      400   {object}  models.ErrorResponse
// @Failure      429   {object}  models.ErrorResponse
// @Router       /api/analytics [post]
func (ctl *AnalyticsController) Ingest(c *fiber.Ctx) error {
	var in models.AnalyticsBatchRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}

	n, err := ctl.svc.Ingest(c.UserContext(), in.Events, utils.RequestFingerprint(c, ""))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"accepted": n})
}

// Summary godoc
// @Summary      Traffic summary for the admin dashboard
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        days  query     int  false  "Look-back window in days"  default(7)
// @Success      200   {object}  models.AnalyticsSummary
// @Failure      400   {object}  models.ErrorResponse
// @Failure      401   {object}  models.ErrorResponse
// @Router       /api/admin/analytics/summary [get]
func (ctl *AnalyticsController) Summary(c *fiber.Ctx) error {
	days := 7
	if q := c.Query("days"); q != "" {
		v, err := strconv.Atoi(q)
		if err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "days must be a number")
		}
		days = v
	}
	summary, err := ctl.svc.Summary(c.UserContext(), days)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
