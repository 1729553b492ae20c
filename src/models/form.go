package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FieldText     = "text"
	FieldEmail    = "email"
	FieldTextarea = "textarea"
	FieldSelect   = "select"
)

// --- Form ---
type Form struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Slug        string             `bson:"slug" json:"slug"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Fields      []FormField        `bson:"fields" json:"fields"`
	NotifyEmail string             `bson:"notifyEmail,omitempty" json:"notifyEmail,omitempty"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// --- Field ---
type FormField struct {
	Name      string   `bson:"name" json:"name" validate:"required,max=50"`
	Label     string   `bson:"label" json:"label" validate:"required,max=200"`
	Type      string   `bson:"type" json:"type" validate:"required,oneof=text email textarea select"`
	Required  bool     `bson:"required" json:"required"`
	MaxLength int      `bson:"maxLength,omitempty" json:"maxLength,omitempty" validate:"gte=0"`
	Options   []string `bson:"options,omitempty" json:"options,omitempty"`
}

// CreateFormRequest body ของ POST /api/admin/forms
type CreateFormRequest struct {
	Slug        string      `json:"slug" validate:"required,max=100"`
	Title       string      `json:"title" validate:"required,max=200"`
	Description string      `json:"description" validate:"max=2000"`
	Fields      []FormField `json:"fields" validate:"required,min=1,dive"`
	NotifyEmail string      `json:"notifyEmail" validate:"omitempty,email"`
	IsActive    *bool       `json:"isActive"`
}
