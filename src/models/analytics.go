package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const MaxAnalyticsBatch = 50

// AnalyticsEvent metric ฝั่ง client เช่น web vitals (LCP, CLS) หรือ custom event
type AnalyticsEvent struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" validate:"required,max=100"`
	Value       float64            `bson:"value" json:"value"`
	Label       string             `bson:"label,omitempty" json:"label,omitempty" validate:"max=200"`
	Path        string             `bson:"path,omitempty" json:"path,omitempty" validate:"max=500"`
	SessionID   string             `bson:"sessionId,omitempty" json:"sessionId,omitempty" validate:"max=64"`
	Fingerprint string             `bson:"fingerprint,omitempty" json:"fingerprint,omitempty" validate:"omitempty,fingerprint"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

type AnalyticsBatchRequest struct {
	Events []AnalyticsEvent `json:"events" validate:"required,min=1,max=50,dive"`
}

type PathCount struct {
	Path  string `bson:"_id" json:"path"`
	Count int64  `bson:"count" json:"count"`
}

type TypeCount struct {
	Type  string `bson:"_id" json:"type"`
	Count int64  `bson:"count" json:"count"`
}

type AnalyticsSummary struct {
	Since          time.Time   `json:"since"`
	TotalViews     int64       `json:"totalViews"`
	UniqueVisitors int64       `json:"uniqueVisitors"`
	TopPaths       []PathCount `json:"topPaths"`
	Interactions   []TypeCount `json:"interactions"`
}
