package forms

import (
	"context"
	"errors"
	"fmt"
	"strings"
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

const defaultMaxLength = 5000

type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// SubmissionMeta ข้อมูลจาก request ที่แนบไปกับ submission
type SubmissionMeta struct {
	Fingerprint string
	IP          string
	UserAgent   string
}

type Service struct {
	forms       *mongo.Collection
	submissions *mongo.Collection
	queue       Enqueuer
	log         *zap.Logger
	now         func() time.Time
}

func NewService(db *mongo.Database, queue Enqueuer, log *zap.Logger) *Service {
	return &Service{
		forms:       db.Collection(DB.FormsCollection),
		submissions: db.Collection(DB.SubmissionsCollection),
		queue:       queue,
		log:         log.Named("forms"),
		now:         time.Now,
	}
}

func (s *Service) CreateForm(ctx context.Context, req *models.CreateFormRequest) (*models.Form, error) {
	if err := ValidateDefinition(req.Fields); err != nil {
		return nil, err
	}
	form := &models.Form{
		Slug:        strings.ToLower(strings.TrimSpace(req.Slug)),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Fields:      req.Fields,
		NotifyEmail: req.NotifyEmail,
		IsActive:    req.IsActive == nil || *req.IsActive,
		CreatedAt:   s.now(),
	}

	res, err := s.forms.InsertOne(ctx, form)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("form slug %q %w", form.Slug, utils.ErrConflict)
		}
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		form.ID = oid
	}
	return form, nil
}

// GetActiveBySlug ฟอร์มที่ปิดไว้ถือว่าไม่มี
func (s *Service) GetActiveBySlug(ctx context.Context, slug string) (*models.Form, error) {
	var form models.Form
	err := s.forms.FindOne(ctx, bson.M{"slug": strings.ToLower(slug), "isActive": true}).Decode(&form)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("form %w", utils.ErrNotFound)
		}
		return nil, err
	}
	return &form, nil
}

// Submit ตรวจค่าตาม definition ของฟอร์ม บันทึก แล้วส่ง task แจ้งเตือนทางอีเมล
func (s *Service) Submit(ctx context.Context, slug string, values map[string]string, meta SubmissionMeta) (*models.Submission, error) {
	form, err := s.GetActiveBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	clean, fieldErrs := ValidateValues(form, values)
	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	sub := &models.Submission{
		FormID:      form.ID,
		Values:      clean,
		Fingerprint: meta.Fingerprint,
		IP:          meta.IP,
		UserAgent:   meta.UserAgent,
		CreatedAt:   s.now(),
	}
	res, err := s.submissions.InsertOne(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("insert submission: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		sub.ID = oid
	}

	s.enqueueNotification(ctx, form, sub)
	return sub, nil
}

func (s *Service) enqueueNotification(ctx context.Context, form *models.Form, sub *models.Submission) {
	if s.queue == nil || form.NotifyEmail == "" {
		return
	}
	task, err := jobs.NewNotifySubmissionTask(jobs.NotifySubmissionPayload{
		SubmissionID: sub.ID.Hex(),
		FormTitle:    form.Title,
		NotifyEmail:  form.NotifyEmail,
		Values:       sub.Values,
	})
	if err == nil {
		_, err = s.queue.EnqueueContext(ctx, task,
			asynq.TaskID(jobs.NotifySubmissionTaskID(sub.ID.Hex())),
			asynq.MaxRetry(5),
			asynq.Queue(jobs.QueueCritical),
		)
	}
	if err != nil {
		// submission ถูกบันทึกแล้ว แค่ไม่ได้แจ้งเตือน
		s.log.Warn("enqueue submission notification failed", zap.String("submissionId", sub.ID.Hex()), zap.Error(err))
	}
}

func (s *Service) ListSubmissions(ctx context.Context, formID primitive.ObjectID, params models.PaginationParams) (*models.PaginatedResponse, error) {
	params.Normalize()
	filter := bson.M{"formId": formID}

	total, err := s.submissions.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	findOpts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(bson.D{{Key: "createdAt", Value: params.SortDirection()}})

	cursor, err := s.submissions.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subs := []models.Submission{}
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return models.NewPaginatedResponse(subs, total, params), nil
}

func (s *Service) DeleteSubmission(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.submissions.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("submission %w", utils.ErrNotFound)
	}
	return nil
}

// ValidationError รายละเอียดราย field เมื่อค่าที่ส่งมาไม่ตรง definition
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "submission validation failed"
}

func (e *ValidationError) FieldErrors() map[string]string {
	return e.Fields
}

func (e *ValidationError) Unwrap() error {
	return utils.ErrInvalidInput
}

// ValidateDefinition ชื่อ field ต้องไม่ซ้ำ และ select ต้องมี options
func ValidateDefinition(fields []models.FormField) error {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f.Name] {
			return fmt.Errorf("%w: duplicate field %q", utils.ErrInvalidInput, f.Name)
		}
		seen[f.Name] = true
		if f.Type == models.FieldSelect && len(f.Options) == 0 {
			return fmt.Errorf("%w: select field %q needs options", utils.ErrInvalidInput, f.Name)
		}
	}
	return nil
}

// ValidateValues คืนเฉพาะ field ที่ฟอร์มรู้จัก (trim แล้ว) และ error ราย field
func ValidateValues(form *models.Form, values map[string]string) (map[string]string, map[string]string) {
	clean := make(map[string]string, len(form.Fields))
	errs := map[string]string{}

	for _, f := range form.Fields {
		v := strings.TrimSpace(values[f.Name])
		if v == "" {
			if f.Required {
				errs[f.Name] = "is required"
			}
			continue
		}

		maxLen := f.MaxLength
		if maxLen <= 0 {
			maxLen = defaultMaxLength
		}
		if len([]rune(v)) > maxLen {
			errs[f.Name] = fmt.Sprintf("must be at most %d characters", maxLen)
			continue
		}

		switch f.Type {
		case models.FieldEmail:
			if err := utils.ValidateVar(v, "email"); err != nil {
				errs[f.Name] = "must be a valid email"
				continue
			}
		case models.FieldSelect:
			if !contains(f.Options, v) {
				errs[f.Name] = "must be one of: " + strings.Join(f.Options, ", ")
				continue
			}
		case models.FieldText:
			if strings.ContainsAny(v, "\r\n") {
				errs[f.Name] = "must be a single line"
				continue
			}
		}
		clean[f.Name] = v
	}
	return clean, errs
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
