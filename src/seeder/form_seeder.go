package seeder

import (
	"context"
	"errors"
	"fmt"

	"portfolio-backend/src/models"
	"portfolio-backend/src/utils"

	"go.uber.org/zap"
)

type FormCreator interface {
	CreateForm(ctx context.Context, req *models.CreateFormRequest) (*models.Form, error)
}

// DefaultForms ฟอร์มที่หน้าเว็บต้องมีเสมอ
func DefaultForms(notifyEmail string) []*models.CreateFormRequest {
	return []*models.CreateFormRequest{
		{
			Slug:        "contact",
			Title:       "Contact",
			Description: "Send me a message and I'll get back to you.",
			NotifyEmail: notifyEmail,
			Fields: []models.FormField{
				{Name: "name", Label: "Name", Type: models.FieldText, Required: true, MaxLength: 100},
				{Name: "email", Label: "Email", Type: models.FieldEmail, Required: true, MaxLength: 254},
				{Name: "subject", Label: "Subject", Type: models.FieldSelect, Options: []string{"Job opportunity", "Freelance", "Just saying hi"}},
				{Name: "message", Label: "Message", Type: models.FieldTextarea, Required: true, MaxLength: 5000},
			},
		},
	}
}

// SeedDefaultForms สร้างฟอร์มที่ยังไม่มี; ฟอร์มที่มีแล้วจะไม่ถูกแก้
func SeedDefaultForms(ctx context.Context, svc FormCreator, notifyEmail string, log *zap.Logger) error {
	for _, req := range DefaultForms(notifyEmail) {
		_, err := svc.CreateForm(ctx, req)
		switch {
		case err == nil:
			log.Info("seeded form", zap.String("slug", req.Slug))
		case errors.Is(err, utils.ErrConflict):
			log.Debug("form already exists", zap.String("slug", req.Slug))
		default:
			return fmt.Errorf("seed form %s: %w", req.Slug, err)
		}
	}
	return nil
}
