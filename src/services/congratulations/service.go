package congratulations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	DB "portfolio-backend/src/database"
	"portfolio-backend/src/models"
	"portfolio-backend/src/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Service struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewService(db *mongo.Database) *Service {
	return &Service{coll: db.Collection(DB.CongratulationsCollection), now: time.Now}
}

// BuildEntry แปลง request เป็น entry พร้อม shareId; แยกออกมาให้ test ได้โดยไม่ต้องมี DB
func BuildEntry(req *models.CreateCongratulationRequest, now time.Time) *models.CongratulationEntry {
	theme := strings.TrimSpace(req.Theme)
	if theme == "" {
		theme = models.DefaultCongratulationTheme
	}
	return &models.CongratulationEntry{
		ShareID:       uuid.NewString(),
		RecipientName: strings.TrimSpace(req.RecipientName),
		SenderName:    strings.TrimSpace(req.SenderName),
		Message:       strings.TrimSpace(req.Message),
		Theme:         theme,
		Occasion:      strings.TrimSpace(req.Occasion),
		ImageURL:      strings.TrimSpace(req.ImageURL),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (s *Service) Create(ctx context.Context, req *models.CreateCongratulationRequest) (*models.CongratulationEntry, error) {
	entry := BuildEntry(req, s.now())
	if entry.RecipientName == "" || entry.SenderName == "" || entry.Message == "" {
		return nil, fmt.Errorf("%w: recipientName, senderName and message are required", utils.ErrInvalidInput)
	}

	res, err := s.coll.InsertOne(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("insert congratulation: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		entry.ID = oid
	}
	return entry, nil
}

// GetByShareID คืน entry และนับ view เพิ่มหนึ่งครั้ง
func (s *Service) GetByShareID(ctx context.Context, shareID string) (*models.CongratulationEntry, error) {
	if _, err := uuid.Parse(shareID); err != nil {
		return nil, fmt.Errorf("congratulation %w", utils.ErrNotFound)
	}

	var entry models.CongratulationEntry
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"shareId": shareID},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("congratulation %w", utils.ErrNotFound)
		}
		return nil, err
	}
	return &entry, nil
}

// Exists เช็คว่ามีการ์ดนี้โดยไม่นับ view
func (s *Service) Exists(ctx context.Context, shareID string) error {
	if _, err := uuid.Parse(shareID); err != nil {
		return fmt.Errorf("congratulation %w", utils.ErrNotFound)
	}
	n, err := s.coll.CountDocuments(ctx, bson.M{"shareId": shareID}, options.Count().SetLimit(1))
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("congratulation %w", utils.ErrNotFound)
	}
	return nil
}

// List เรียงใหม่สุดก่อนเป็นค่าเริ่มต้น
func (s *Service) List(ctx context.Context, params models.PaginationParams) (*models.PaginatedResponse, error) {
	params.Normalize()

	total, err := s.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: "createdAt", Value: params.SortDirection()}})

	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := []models.CongratulationEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return models.NewPaginatedResponse(entries, total, params), nil
}

func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("congratulation %w", utils.ErrNotFound)
	}
	return nil
}
