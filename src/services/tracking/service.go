package tracking

import (
	"context"
	"errors"
	"fmt"
	"time"

	DB "portfolio-backend/src/database"
	"portfolio-backend/src/models"
	"portfolio-backend/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// VisitGap ถ้าหายไปนานกว่านี้ นับเป็น visit ใหม่แม้ session เดิม
const VisitGap = 30 * time.Minute

type Service struct {
	pageViews    *mongo.Collection
	interactions *mongo.Collection
	profiles     *mongo.Collection
	log          *zap.Logger
	now          func() time.Time
}

func NewService(db *mongo.Database, log *zap.Logger) *Service {
	return &Service{
		pageViews:    db.Collection(DB.PageViewsCollection),
		interactions: db.Collection(DB.InteractionsCollection),
		profiles:     db.Collection(DB.VisitorProfilesCollection),
		log:          log.Named("tracking"),
		now:          time.Now,
	}
}

// RecordPageView บันทึก page view แล้วอัปเดต visitor profile
func (s *Service) RecordPageView(ctx context.Context, pv *models.PageView) (*models.PageView, error) {
	if pv.Path == "" {
		return nil, fmt.Errorf("%w: path is required", utils.ErrInvalidInput)
	}
	pv.CreatedAt = s.now()

	res, err := s.pageViews.InsertOne(ctx, pv)
	if err != nil {
		return nil, fmt.Errorf("insert page view: %w", err)
	}
	pv.ID = insertedID(res, pv.ID)

	update := PageViewProfileUpdate(pv, pv.CreatedAt)
	if _, err := s.profiles.UpdateByID(ctx, pv.Fingerprint, update, options.Update().SetUpsert(true)); err != nil {
		// page view ถูกบันทึกแล้ว profile พลาดไม่ถือว่า request fail
		s.log.Warn("profile update failed", zap.String("fingerprint", pv.Fingerprint), zap.Error(err))
	}
	return pv, nil
}

// RecordInteraction บันทึก interaction (click, scroll, ...) แล้วนับเข้า profile
func (s *Service) RecordInteraction(ctx context.Context, in *models.Interaction) (*models.Interaction, error) {
	if in.Type == "" {
		return nil, fmt.Errorf("%w: type is required", utils.ErrInvalidInput)
	}
	in.CreatedAt = s.now()

	res, err := s.interactions.InsertOne(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("insert interaction: %w", err)
	}
	in.ID = insertedID(res, in.ID)

	update := InteractionProfileUpdate(in, in.CreatedAt)
	if _, err := s.profiles.UpdateByID(ctx, in.Fingerprint, update, options.Update().SetUpsert(true)); err != nil {
		s.log.Warn("profile update failed", zap.String("fingerprint", in.Fingerprint), zap.Error(err))
	}
	return in, nil
}

func (s *Service) GetProfile(ctx context.Context, fingerprint string) (*models.VisitorProfile, error) {
	var p models.VisitorProfile
	err := s.profiles.FindOne(ctx, bson.M{"_id": fingerprint}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("visitor profile %w", utils.ErrNotFound)
		}
		return nil, err
	}
	return &p, nil
}

// PageViewProfileUpdate สร้าง update pipeline ของ profile ตอนมี page view
// visits +1 เมื่อ session เปลี่ยนหรือห่างจาก lastSeen เกิน VisitGap
func PageViewProfileUpdate(pv *models.PageView, now time.Time) mongo.Pipeline {
	set := baseProfileSet(pv.SessionID, now)
	set = append(set,
		bson.E{Key: "visits", Value: bson.M{"$add": bson.A{
			ifNull("$visits", 0),
			bson.M{"$cond": bson.A{newVisitExpr(pv.SessionID, now), 1, 0}},
		}}},
		bson.E{Key: "pageViews", Value: bson.M{"$add": bson.A{ifNull("$pageViews", 0), 1}}},
		bson.E{Key: "interactions", Value: ifNull("$interactions", 0)},
		bson.E{Key: "lastPath", Value: literal(pv.Path)},
		bson.E{Key: "userAgent", Value: literal(pv.UserAgent)},
		bson.E{Key: "locale", Value: literal(pv.Locale)},
	)
	return mongo.Pipeline{{{Key: "$set", Value: set}}}
}

// InteractionProfileUpdate สร้าง update pipeline ของ profile ตอนมี interaction
func InteractionProfileUpdate(in *models.Interaction, now time.Time) mongo.Pipeline {
	set := baseProfileSet(in.SessionID, now)
	set = append(set,
		bson.E{Key: "visits", Value: bson.M{"$add": bson.A{
			ifNull("$visits", 0),
			bson.M{"$cond": bson.A{newVisitExpr(in.SessionID, now), 1, 0}},
		}}},
		bson.E{Key: "pageViews", Value: ifNull("$pageViews", 0)},
		bson.E{Key: "interactions", Value: bson.M{"$add": bson.A{ifNull("$interactions", 0), 1}}},
	)
	return mongo.Pipeline{{{Key: "$set", Value: set}}}
}

func baseProfileSet(sessionID string, now time.Time) bson.D {
	return bson.D{
		{Key: "firstSeen", Value: ifNull("$firstSeen", now)},
		{Key: "lastSeen", Value: now},
		{Key: "lastSession", Value: literal(sessionID)},
	}
}

// ทุก expression ใน $set stage เดียวกันอ่านค่าเดิมของ document
func newVisitExpr(sessionID string, now time.Time) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"$ne": bson.A{ifNull("$lastSession", ""), literal(sessionID)}},
		bson.M{"$lt": bson.A{ifNull("$lastSeen", time.Unix(0, 0).UTC()), now.Add(-VisitGap)}},
		bson.M{"$eq": bson.A{ifNull("$visits", 0), 0}},
	}}
}

func ifNull(field string, def interface{}) bson.M {
	return bson.M{"$ifNull": bson.A{field, def}}
}

// literal กันไม่ให้ค่าที่ผู้ใช้ส่งมา (เช่นขึ้นต้นด้วย $) ถูกตีความเป็น field path
func literal(v string) bson.M {
	return bson.M{"$literal": v}
}
