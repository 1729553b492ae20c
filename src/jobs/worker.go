package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"portfolio-backend/src/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// EventWriter เขียน analytics event ลง store
type EventWriter interface {
	InsertEvents(ctx context.Context, events []models.AnalyticsEvent) error
}

// SubmissionNotifier ส่งอีเมลแจ้ง submission ใหม่
type SubmissionNotifier interface {
	NotifySubmission(ctx context.Context, p NotifySubmissionPayload) error
}

func HandleIngestAnalytics(w EventWriter, log *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload IngestAnalyticsPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			log.Error("payload decode error", zap.String("type", t.Type()), zap.Error(err))
			// payload เสียจะ retry ไปก็ไม่หาย
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		if err := w.InsertEvents(ctx, payload.Events); err != nil {
			return err
		}
		log.Debug("analytics ingested", zap.Int("events", len(payload.Events)))
		return nil
	}
}

func HandleNotifySubmission(n SubmissionNotifier, log *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p NotifySubmissionPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			log.Error("payload decode error", zap.String("type", t.Type()), zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		if p.NotifyEmail == "" {
			log.Info("notify-submission: no recipient, skip", zap.String("submissionId", p.SubmissionID))
			return nil
		}
		if n == nil {
			// task ค้างจากตอนที่ยังมี SMTP; retry ไปก็ส่งไม่ได้
			log.Warn("notify-submission: smtp not configured, drop", zap.String("submissionId", p.SubmissionID))
			return fmt.Errorf("no notifier for %s: %w", p.SubmissionID, asynq.SkipRetry)
		}
		if err := n.NotifySubmission(ctx, p); err != nil {
			log.Warn("notify-submission failed", zap.String("submissionId", p.SubmissionID), zap.Error(err))
			return err
		}
		log.Info("submission notification sent", zap.String("submissionId", p.SubmissionID))
		return nil
	}
}

// NewServeMux ผูก handler กับ type ที่ใช้ใน task; notifier เป็น nil ได้ถ้าไม่มี SMTP
func NewServeMux(w EventWriter, n SubmissionNotifier, log *zap.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeIngestAnalytics, HandleIngestAnalytics(w, log.Named("jobs")))
	mux.HandleFunc(TypeNotifySubmission, HandleNotifySubmission(n, log.Named("jobs")))
	return mux
}

// NewServer สร้าง asynq server ที่ log ผ่าน zap
func NewServer(opt asynq.RedisConnOpt, log *zap.Logger) *asynq.Server {
	return asynq.NewServer(opt, asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			QueueCritical: 6,
			QueueDefault:  3,
		},
		Logger: zapAdapter{log.Named("asynq").Sugar()},
	})
}

type zapAdapter struct {
	s *zap.SugaredLogger
}

func (a zapAdapter) Debug(args ...interface{}) { a.s.Debug(args...) }
func (a zapAdapter) Info(args ...interface{})  { a.s.Info(args...) }
func (a zapAdapter) Warn(args ...interface{})  { a.s.Warn(args...) }
func (a zapAdapter) Error(args ...interface{}) { a.s.Error(args...) }
func (a zapAdapter) Fatal(args ...interface{}) { a.s.Fatal(args...) }
