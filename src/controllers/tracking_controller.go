package controllers

import (
	"context"
	"strings"

	"portfolio-backend/src/models"
	"portfolio-backend/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TrackingService interface {
	RecordPageView(ctx context.Context, pv *models.PageView) (*models.PageView, error)
	RecordInteraction(ctx context.Context, in *models.Interaction) (*models.Interaction, error)
	GetProfile(ctx context.Context, fingerprint string) (*models.VisitorProfile, error)
}

type TrackingController struct {
	svc TrackingService
	log *zap.Logger
}

func NewTrackingController(svc TrackingService, log *zap.Logger) *TrackingController {
	return &TrackingController{svc: svc, log: log}
}

// TrackPageView godoc
// @Summary      Record a page view
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        body  body      models.TrackPageViewRequest  true  "Page view"
// @Success      201   {object}  models.SuccessResponse
// @Failure      400   {object}  models.ErrorResponse
// @Failure      429   {object}  models.ErrorResponse
// @Router       /api/track/pageview [post]
func (ctl *TrackingController) TrackPageView(c *fiber.Ctx) error {
	var in models.TrackPageViewRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}

	pv := &models.PageView{
		SessionID:   in.SessionID,
		Fingerprint: utils.RequestFingerprint(c, in.Fingerprint),
		Path:        in.Path,
		Title:       in.Title,
		Referrer:    in.Referrer,
		Locale:      in.Locale,
		Screen:      in.Screen,
		DurationMs:  in.DurationMs,
		UserAgent:   c.Get(fiber.HeaderUserAgent),
		IP:          utils.ClientIP(c),
	}

	created, err := ctl.svc.RecordPageView(c.UserContext(), pv)
	if err != nil {
		ctl.log.Error("record page view failed", zap.String("path", in.Path), zap.Error(err))
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse{Success: true, ID: created.ID.Hex()})
}

// TrackInteraction godoc
// @Summary      Record a visitor interaction
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        body  body      models.TrackInteractionRequest  true  "Interaction"
// @Success      201   {object}  models.SuccessResponse
// @Failure      400   {object}  models.ErrorResponse
// @Failure      429   {object}  models.ErrorResponse
// @Router       /api/track/interaction [post]
func (ctl *TrackingController) TrackInteraction(c *fiber.Ctx) error {
	var in models.TrackInteractionRequest
	if ok, err := bind(c, &in); !ok {
		return err
	}
	if len(in.Metadata) > 20 {
		return utils.HandleValidationError(c, map[string]string{"metadata": "must have at most 20 keys"})
	}

	it := &models.Interaction{
		SessionID:   in.SessionID,
		Fingerprint: utils.RequestFingerprint(c, in.Fingerprint),
		Path:        in.Path,
		Type:        in.Type,
		Target:      in.Target,
		Value:       in.Value,
		Metadata:    in.Metadata,
	}

	created, err := ctl.svc.RecordInteraction(c.UserContext(), it)
	if err != nil {
		ctl.log.Error("record interaction failed", zap.String("type", in.Type), zap.Error(err))
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse{Success: true, ID: created.ID.Hex()})
}

// GetProfile godoc
// @Summary      Visitor profile by fingerprint
// @Tags         tracking
// @Produce      json
// @Param        fingerprint  path      string  true  "Fingerprint"
// @Success      200          {object}  models.VisitorProfile
// @Failure      404          {object}  models.ErrorResponse
// @Router       /api/track/profile/{fingerprint} [get]
func (ctl *TrackingController) GetProfile(c *fiber.Ctx) error {
	fp := strings.ToLower(c.Params("fingerprint"))
	if !utils.ValidFingerprint(fp) {
		return utils.HandleError(c, fiber.StatusBadRequest, "invalid fingerprint")
	}
	profile, err := ctl.svc.GetProfile(c.UserContext(), fp)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}
