package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var CongratulationThemes = []string{"confetti", "balloons", "fireworks", "hearts"}

const DefaultCongratulationTheme = "confetti"

// CongratulationEntry การ์ดแสดงความยินดีหนึ่งใบ เปิดดูผ่าน ShareID
type CongratulationEntry struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ShareID       string             `bson:"shareId" json:"shareId"`
	RecipientName string             `bson:"recipientName" json:"recipientName"`
	SenderName    string             `bson:"senderName" json:"senderName"`
	Message       string             `bson:"message" json:"message"`
	Theme         string             `bson:"theme" json:"theme"`
	Occasion      string             `bson:"occasion,omitempty" json:"occasion,omitempty"`
	ImageURL      string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Views         int64              `bson:"views" json:"views"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateCongratulationRequest body ของ POST /api/congratulations
type CreateCongratulationRequest struct {
	RecipientName string `json:"recipientName" validate:"required,max=100"`
	SenderName    string `json:"senderName" validate:"required,max=100"`
	Message       string `json:"message" validate:"required,max=2000"`
	Theme         string `json:"theme" validate:"omitempty,oneof=confetti balloons fireworks hearts"`
	Occasion      string `json:"occasion" validate:"omitempty,max=100"`
	ImageURL      string `json:"imageUrl" validate:"omitempty,url,max=500"`
}
