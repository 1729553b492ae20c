package jobs

import (
	"encoding/json"
	"strings"

	"portfolio-backend/src/models"

	"github.com/hibiken/asynq"
)

const (
	QueueDefault  = "default"
	QueueCritical = "critical"
)

// jobs/task_payloads.go
const TypeIngestAnalytics = "analytics:ingest"

type IngestAnalyticsPayload struct {
	Events []models.AnalyticsEvent `json:"events"`
}

func NewIngestAnalyticsTask(events []models.AnalyticsEvent) (*asynq.Task, error) {
	payload, err := json.Marshal(IngestAnalyticsPayload{Events: events})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeIngestAnalytics, payload), nil
}

const TypeNotifySubmission = "forms:notify-submission"

type NotifySubmissionPayload struct {
	SubmissionID string            `json:"submissionId"`
	FormTitle    string            `json:"formTitle"`
	NotifyEmail  string            `json:"notifyEmail"`
	Values       map[string]string `json:"values"`
}

func (p *NotifySubmissionPayload) Normalize() {
	p.SubmissionID = strings.TrimSpace(p.SubmissionID)
	p.FormTitle = strings.TrimSpace(p.FormTitle)
	p.NotifyEmail = strings.TrimSpace(p.NotifyEmail)
}

func NewNotifySubmissionTask(p NotifySubmissionPayload) (*asynq.Task, error) {
	p.Normalize()
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeNotifySubmission, b), nil
}

// NotifySubmissionTaskID กันส่งเมลซ้ำต่อ submission
func NotifySubmissionTaskID(submissionID string) string {
	return "notify-submission-" + strings.TrimSpace(submissionID)
}
