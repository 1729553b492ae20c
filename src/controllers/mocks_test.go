package controllers

import (
	"context"

	"portfolio-backend/src/models"
	authSvc "portfolio-backend/src/services/auth"
	formSvc "portfolio-backend/src/services/forms"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockTrackingService struct {
	mock.Mock
}

func (m *MockTrackingService) RecordPageView(ctx context.Context, pv *models.PageView) (*models.PageView, error) {
	args := m.Called(ctx, pv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PageView), args.Error(1)
}

func (m *MockTrackingService) RecordInteraction(ctx context.Context, in *models.Interaction) (*models.Interaction, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Interaction), args.Error(1)
}

func (m *MockTrackingService) GetProfile(ctx context.Context, fingerprint string) (*models.VisitorProfile, error) {
	args := m.Called(ctx, fingerprint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VisitorProfile), args.Error(1)
}

type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) Ingest(ctx context.Context, events []models.AnalyticsEvent, fingerprint string) (int, error) {
	args := m.Called(ctx, events, fingerprint)
	return args.Int(0), args.Error(1)
}

func (m *MockAnalyticsService) Summary(ctx context.Context, days int) (*models.AnalyticsSummary, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AnalyticsSummary), args.Error(1)
}

type MockCongratulationService struct {
	mock.Mock
}

func (m *MockCongratulationService) Create(ctx context.Context, req *models.CreateCongratulationRequest) (*models.CongratulationEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CongratulationEntry), args.Error(1)
}

func (m *MockCongratulationService) GetByShareID(ctx context.Context, shareID string) (*models.CongratulationEntry, error) {
	args := m.Called(ctx, shareID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CongratulationEntry), args.Error(1)
}

func (m *MockCongratulationService) Exists(ctx context.Context, shareID string) error {
	return m.Called(ctx, shareID).Error(0)
}

func (m *MockCongratulationService) List(ctx context.Context, params models.PaginationParams) (*models.PaginatedResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaginatedResponse), args.Error(1)
}

func (m *MockCongratulationService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type MockFormService struct {
	mock.Mock
}

func (m *MockFormService) CreateForm(ctx context.Context, req *models.CreateFormRequest) (*models.Form, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Form), args.Error(1)
}

func (m *MockFormService) GetActiveBySlug(ctx context.Context, slug string) (*models.Form, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Form), args.Error(1)
}

func (m *MockFormService) Submit(ctx context.Context, slug string, values map[string]string, meta formSvc.SubmissionMeta) (*models.Submission, error) {
	args := m.Called(ctx, slug, values, meta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Submission), args.Error(1)
}

func (m *MockFormService) ListSubmissions(ctx context.Context, formID primitive.ObjectID, params models.PaginationParams) (*models.PaginatedResponse, error) {
	args := m.Called(ctx, formID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaginatedResponse), args.Error(1)
}

func (m *MockFormService) DeleteSubmission(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) ListPosts(ctx context.Context, first, skip int) ([]models.Post, error) {
	args := m.Called(ctx, first, skip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockContentService) GetPost(ctx context.Context, slug string) (*models.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockContentService) ListProjects(ctx context.Context, featured *bool) ([]models.Project, error) {
	args := m.Called(ctx, featured)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockContentService) GetProject(ctx context.Context, slug string) (*models.Project, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockContentService) GetPage(ctx context.Context, slug string) (*models.Page, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Page), args.Error(1)
}

func (m *MockContentService) Revalidate(ctx context.Context, tag string) ([]string, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(email, password string) (*authSvc.LoginResult, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authSvc.LoginResult), args.Error(1)
}
