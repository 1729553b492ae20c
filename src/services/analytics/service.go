package analytics

import (
	"context"
	"fmt"
	"time"

	DB "portfolio-backend/src/database"
	"portfolio-backend/src/jobs"
	"portfolio-backend/src/models"
	"portfolio-backend/src/utils"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Enqueuer คือส่วนของ asynq.Client ที่ service ใช้
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

const topPathsLimit = 10

type Service struct {
	events       *mongo.Collection
	pageViews    *mongo.Collection
	interactions *mongo.Collection
	queue        Enqueuer
	log          *zap.Logger
	now          func() time.Time
}

// NewService queue เป็น nil ได้ ถ้าไม่มี redis จะ insert ตรง
func NewService(db *mongo.Database, queue Enqueuer, log *zap.Logger) *Service {
	return &Service{
		events:       db.Collection(DB.AnalyticsEventsCollection),
		pageViews:    db.Collection(DB.PageViewsCollection),
		interactions: db.Collection(DB.InteractionsCollection),
		queue:        queue,
		log:          log.Named("analytics"),
		now:          time.Now,
	}
}

// Ingest รับ batch จาก client; ถ้ามี queue จะส่งเข้า worker แทนการเขียนตรง
func (s *Service) Ingest(ctx context.Context, events []models.AnalyticsEvent, fingerprint string) (int, error) {
	if len(events) == 0 || len(events) > models.MaxAnalyticsBatch {
		return 0, fmt.Errorf("%w: batch must contain 1-%d events", utils.ErrInvalidInput, models.MaxAnalyticsBatch)
	}
	now := s.now()
	for i := range events {
		events[i].ID = primitive.NilObjectID
		events[i].CreatedAt = now
		events[i].Fingerprint = fingerprint
	}

	if s.queue != nil {
		task, err := jobs.NewIngestAnalyticsTask(events)
		if err != nil {
			return 0, err
		}
		_, err = s.queue.EnqueueContext(ctx, task, asynq.MaxRetry(3), asynq.Queue(jobs.QueueDefault))
		if err == nil {
			return len(events), nil
		}
		s.log.Warn("enqueue analytics failed, writing directly", zap.Error(err))
	}

	if err := s.InsertEvents(ctx, events); err != nil {
		return 0, err
	}
	return len(events), nil
}

// InsertEvents ถูกเรียกจาก worker (และ fallback ตอนไม่มี queue)
func (s *Service) InsertEvents(ctx context.Context, events []models.AnalyticsEvent) error {
	if len(events) == 0 {
		return nil
	}
	docs := make([]interface{}, len(events))
	for i := range events {
		docs[i] = events[i]
	}
	if _, err := s.events.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false)); err != nil {
		return fmt.Errorf("insert analytics events: %w", err)
	}
	return nil
}

// Summary สรุปยอดวิว ผู้เข้าชมไม่ซ้ำ path ยอดนิยม และ interaction ตามประเภท
func (s *Service) Summary(ctx context.Context, days int) (*models.AnalyticsSummary, error) {
	if days <= 0 || days > 365 {
		return nil, fmt.Errorf("%w: days must be between 1 and 365", utils.ErrInvalidInput)
	}
	since := s.now().AddDate(0, 0, -days)
	match := bson.M{"createdAt": bson.M{"$gte": since}}

	out := &models.AnalyticsSummary{Since: since, TopPaths: []models.PathCount{}, Interactions: []models.TypeCount{}}

	total, err := s.pageViews.CountDocuments(ctx, match)
	if err != nil {
		return nil, fmt.Errorf("count page views: %w", err)
	}
	out.TotalViews = total

	var unique []struct {
		Count int64 `bson:"count"`
	}
	if err := s.aggregate(ctx, s.pageViews, UniqueVisitorsPipeline(since), &unique); err != nil {
		return nil, err
	}
	if len(unique) > 0 {
		out.UniqueVisitors = unique[0].Count
	}

	if err := s.aggregate(ctx, s.pageViews, TopPathsPipeline(since, topPathsLimit), &out.TopPaths); err != nil {
		return nil, err
	}
	if err := s.aggregate(ctx, s.interactions, InteractionTypesPipeline(since), &out.Interactions); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) aggregate(ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline, out interface{}) error {
	cur, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("aggregate %s: %w", coll.Name(), err)
	}
	defer cur.Close(ctx)
	return cur.All(ctx, out)
}
