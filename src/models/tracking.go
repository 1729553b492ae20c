package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var InteractionTypes = []string{"click", "scroll", "submit", "download", "share", "custom"}

type Screen struct {
	Width  int `bson:"width" json:"width" validate:"gte=0,lte=20000"`
	Height int `bson:"height" json:"height" validate:"gte=0,lte=20000"`
}

type PageView struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID   string             `bson:"sessionId,omitempty" json:"sessionId,omitempty"`
	Fingerprint string             `bson:"fingerprint" json:"fingerprint"`
	Path        string             `bson:"path" json:"path"`
	Title       string             `bson:"title,omitempty" json:"title,omitempty"`
	Referrer    string             `bson:"referrer,omitempty" json:"referrer,omitempty"`
	Locale      string             `bson:"locale,omitempty" json:"locale,omitempty"`
	Screen      *Screen            `bson:"screen,omitempty" json:"screen,omitempty"`
	DurationMs  int64              `bson:"durationMs,omitempty" json:"durationMs,omitempty"`
	UserAgent   string             `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
	IP          string             `bson:"ip,omitempty" json:"ip,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

type Interaction struct {
	ID          primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	SessionID   string                 `bson:"sessionId,omitempty" json:"sessionId,omitempty"`
	Fingerprint string                 `bson:"fingerprint" json:"fingerprint"`
	Path        string                 `bson:"path,omitempty" json:"path,omitempty"`
	Type        string                 `bson:"type" json:"type"`
	Target      string                 `bson:"target,omitempty" json:"target,omitempty"`
	Value       string                 `bson:"value,omitempty" json:"value,omitempty"`
	Metadata    map[string]interface{} `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt   time.Time              `bson:"createdAt" json:"createdAt"`
}

// VisitorProfile สรุปข้อมูลผู้เข้าชมต่อ fingerprint (หนึ่ง document ต่อคน)
type VisitorProfile struct {
	Fingerprint  string    `bson:"_id" json:"fingerprint"`
	FirstSeen    time.Time `bson:"firstSeen" json:"firstSeen"`
	LastSeen     time.Time `bson:"lastSeen" json:"lastSeen"`
	Visits       int64     `bson:"visits" json:"visits"`
	PageViews    int64     `bson:"pageViews" json:"pageViews"`
	Interactions int64     `bson:"interactions" json:"interactions"`
	LastPath     string    `bson:"lastPath,omitempty" json:"lastPath,omitempty"`
	LastSession  string    `bson:"lastSession,omitempty" json:"lastSession,omitempty"`
	UserAgent    string    `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
	Locale       string    `bson:"locale,omitempty" json:"locale,omitempty"`
}

// --------- Input DTOs ---------

type TrackPageViewRequest struct {
	SessionID   string  `json:"sessionId" validate:"omitempty,max=64"`
	Fingerprint string  `json:"fingerprint" validate:"omitempty,fingerprint"`
	Path        string  `json:"path" validate:"required,startswith=/,max=500"`
	Title       string  `json:"title" validate:"max=300"`
	Referrer    string  `json:"referrer" validate:"max=1000"`
	Locale      string  `json:"locale" validate:"max=20"`
	Screen      *Screen `json:"screen"`
	DurationMs  int64   `json:"durationMs" validate:"gte=0"`
}

type TrackInteractionRequest struct {
	SessionID   string                 `json:"sessionId" validate:"omitempty,max=64"`
	Fingerprint string                 `json:"fingerprint" validate:"omitempty,fingerprint"`
	Path        string                 `json:"path" validate:"omitempty,max=500"`
	Type        string                 `json:"type" validate:"required,oneof=click scroll submit download share custom"`
	Target      string                 `json:"target" validate:"max=300"`
	Value       string                 `json:"value" validate:"max=1000"`
	Metadata    map[string]interface{} `json:"metadata"`
}
