package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Submission struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FormID      primitive.ObjectID `bson:"formId" json:"formId"`
	Values      map[string]string  `bson:"values" json:"values"`
	Fingerprint string             `bson:"fingerprint,omitempty" json:"fingerprint,omitempty"`
	IP          string             `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent   string             `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// SubmitFormRequest body ของ POST /api/forms/:slug/submissions
type SubmitFormRequest struct {
	Values      map[string]string `json:"values" validate:"required"`
	Fingerprint string            `json:"fingerprint" validate:"omitempty,fingerprint"`
}
