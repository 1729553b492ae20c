package controllers

import (
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio-backend/src/middleware"
	"portfolio-backend/src/models"
	"portfolio-backend/src/ratelimit"
	authSvc "portfolio-backend/src/services/auth"
	formSvc "portfolio-backend/src/services/forms"
	"portfolio-backend/src/utils"
	"portfolio-backend/test"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func decodeError(t *testing.T, resp *http.Response) models.ErrorResponse {
	t.Helper()
	defer resp.Body.Close()
	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestTrackingController(t *testing.T) {
	suite := test.NewTestSuiteResult("Tracking Controller")
	defer suite.PrintSummary()

	newApp := func(svc *MockTrackingService, lim ratelimit.Limiter) *fiber.App {
		// app.Test ต่อมาจาก 0.0.0.0 ให้ถือเป็น proxy ที่ไว้ใจ
		app := fiber.New(utils.WithTrustedProxies(fiber.Config{}, []string{"0.0.0.0"}))
		ctl := NewTrackingController(svc, zap.NewNop())
		group := app.Group("/api/track")
		if lim != nil {
			group.Use(middleware.RateLimit(lim, zap.NewNop()))
		}
		group.Post("/pageview", ctl.TrackPageView)
		group.Post("/interaction", ctl.TrackInteraction)
		group.Get("/profile/:fingerprint", ctl.GetProfile)
		return app
	}

	suite.Run(t, "PageViewMissingPath", 0, func(t *testing.T) {
		svc := new(MockTrackingService)
		resp := test.DoJSON(t, newApp(svc, nil), fiber.MethodPost, "/api/track/pageview", `{"title":"Home"}`, nil)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "is required", body.Errors["path"])
		svc.AssertNotCalled(t, "RecordPageView", mock.Anything, mock.Anything)
	})

	suite.Run(t, "PageViewRejectsPrefixedFingerprint", 0, func(t *testing.T) {
		svc := new(MockTrackingService)
		resp := test.DoJSON(t, newApp(svc, nil), fiber.MethodPost, "/api/track/pageview",
			`{"path":"/","fingerprint":"0xABCDEF12"}`, nil)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "must be 8-64 hex characters", decodeError(t, resp).Errors["fingerprint"])
		svc.AssertNotCalled(t, "RecordPageView", mock.Anything, mock.Anything)
	})

	suite.Run(t, "PageViewMalformedJSON", 0, func(t *testing.T) {
		svc := new(MockTrackingService)
		resp := test.DoJSON(t, newApp(svc, nil), fiber.MethodPost, "/api/track/pageview", `{"path":`, nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	suite.Run(t, "PageViewStoredWithDerivedFingerprint", 0, func(t *testing.T) {
		svc := new(MockTrackingService)
		id := primitive.NewObjectID()
		svc.On("RecordPageView", mock.Anything, mock.MatchedBy(func(pv *models.PageView) bool {
			return pv.Path == "/about" && len(pv.Fingerprint) == 32 && pv.IP == "203.0.113.9" && pv.UserAgent == "test-agent"
		})).Return(&models.PageView{ID: id}, nil)

		resp := test.DoJSON(t, newApp(svc, nil), fiber.MethodPost, "/api/track/pageview", `{"path":"/about"}`, map[string]string{
			"X-Forwarded-For":     "6.6.6.6, 203.0.113.9",
			fiber.HeaderUserAgent: "test-agent",
		})

		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		var body models.SuccessResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.Success)
		assert.Equal(t, id.Hex(), body.ID)
		svc.AssertExpectations(t)
	})

	suite.Run(t, "BeaconTextPlainBody", 0, func(t *testing.T) {
		svc := new(MockTrackingService)
		svc.On("RecordPageView", mock.Anything, mock.Anything).Return(&models.PageView{ID: primitive.NewObjectID()}, nil)

		req := httptest.NewRequest(fiber.MethodPost, "/api/track/pageview", strings.NewReader(`{"path":"/"}`))
		req.Header.Set(fiber.HeaderContentType, "text/plain;charset=UTF-8")
		resp, err := newApp(svc, nil).Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	})

	suite.Run(t, "RateLimitedAfterThreshold", 0, func(t *testing.T) {
		svc := new(MockTrackingService)
		svc.On("RecordPageView", mock.Anything, mock.Anything).Return(&models.PageView{ID: primitive.NewObjectID()}, nil)
		lim, err := ratelimit.NewMemoryLimiter(ratelimit.Options{Limit: 2, Interval: time.Minute})
		require.NoError(t, err)
		app := newApp(svc, lim)

		for i := 0; i < 2; i++ {
			resp := test.DoJSON(t, app, fiber.MethodPost, "/api/track/pageview", `{"path":"/"}`, nil)
			require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		}
		resp := test.DoJSON(t, app, fiber.MethodPost, "/api/track/pageview", `{"path":"/"}`, nil)
		assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
		assert.Equal(t, "60", resp.Header.Get(fiber.HeaderRetryAfter))
		assert.Equal(t, fiber.StatusTooManyRequests, decodeError(t, resp).Status)
		svc.AssertNumberOfCalls(t, "RecordPageView", 2)
	})

	suite.Run(t, "InteractionUnknownType", 0, func(t *testing.T) {
		svc := new(MockTrackingService)
		resp := test.DoJSON(t, newApp(svc, nil), fiber.MethodPost, "/api/track/interaction", `{"type":"teleport"}`, nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, decodeError(t, resp).Errors, "type")
	})

	suite.Run(t, "InteractionTooMuchMetadata", 0, func(t *testing.T) {
		svc := new(MockTrackingService)
		meta := make([]string, 0, 21)
		for i := 0; i < 21; i++ {
			meta = append(meta, fmt.Sprintf(`"k%d":%d`, i, i))
		}
		body := `{"type":"click","metadata":{` + strings.Join(meta, ",") + `}}`
		resp := test.DoJSON(t, newApp(svc, nil), fiber.MethodPost, "/api/track/interaction", body, nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	suite.Run(t, "ProfileInvalidFingerprint", 0, func(t *testing.T) {
		svc := new(MockTrackingService)
		resp := test.DoJSON(t, newApp(svc, nil), fiber.MethodGet, "/api/track/profile/zz", "", nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	suite.Run(t, "ProfileNotFound", 0, func(t *testing.T) {
		svc := new(MockTrackingService)
		svc.On("GetProfile", mock.Anything, "abcdef0123456789").Return(nil, fmt.Errorf("profile: %w", utils.ErrNotFound))
		resp := test.DoJSON(t, newApp(svc, nil), fiber.MethodGet, "/api/track/profile/ABCDEF0123456789", "", nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		svc.AssertExpectations(t)
	})
}

func TestAnalyticsController(t *testing.T) {
	suite := test.NewTestSuiteResult("Analytics Controller")
	defer suite.PrintSummary()

	newApp := func(svc *MockAnalyticsService) *fiber.App {
		app := fiber.New()
		ctl := NewAnalyticsController(svc)
		app.Post("/api/analytics", ctl.Ingest)
		app.Get("/summary", ctl.Summary)
		return app
	}

	suite.Run(t, "EmptyBatch", 0, func(t *testing.T) {
		resp := test.DoJSON(t, newApp(new(MockAnalyticsService)), fiber.MethodPost, "/api/analytics", `{"events":[]}`, nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, decodeError(t, resp).Errors, "events")
	})

	suite.Run(t, "EventMissingName", 0, func(t *testing.T) {
		resp := test.DoJSON(t, newApp(new(MockAnalyticsService)), fiber.MethodPost, "/api/analytics",
			`{"events":[{"name":"scroll"},{"label":"x"}]}`, nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "is required", decodeError(t, resp).Errors["events[1].name"])
	})

	suite.Run(t, "Accepted", 0, func(t *testing.T) {
		svc := new(MockAnalyticsService)
		svc.On("Ingest", mock.Anything, mock.MatchedBy(func(ev []models.AnalyticsEvent) bool {
			return len(ev) == 2 && ev[0].Name == "scroll"
		}), mock.AnythingOfType("string")).Return(2, nil)

		resp := test.DoJSON(t, newApp(svc), fiber.MethodPost, "/api/analytics",
			`{"events":[{"name":"scroll"},{"name":"copy_email"}]}`, nil)
		assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
		var body map[string]int
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, 2, body["accepted"])
		svc.AssertExpectations(t)
	})

	suite.Run(t, "SummaryDefaultsToSevenDays", 0, func(t *testing.T) {
		svc := new(MockAnalyticsService)
		svc.On("Summary", mock.Anything, 7).Return(&models.AnalyticsSummary{TotalViews: 3}, nil)
		resp := test.DoJSON(t, newApp(svc), fiber.MethodGet, "/summary", "", nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	suite.Run(t, "SummaryBadDays", 0, func(t *testing.T) {
		resp := test.DoJSON(t, newApp(new(MockAnalyticsService)), fiber.MethodGet, "/summary?days=week", "", nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestCongratulationController(t *testing.T) {
	suite := test.NewTestSuiteResult("Congratulation Controller")
	defer suite.PrintSummary()

	newApp := func(svc *MockCongratulationService) *fiber.App {
		app := fiber.New()
		ctl := NewCongratulationController(svc, "https://portfolio.example")
		app.Post("/api/congratulations", ctl.Create)
		app.Get("/api/congratulations", ctl.List)
		app.Get("/api/congratulations/:shareId", ctl.GetByShareID)
		app.Get("/api/congratulations/:shareId/qrcode", ctl.QRCode)
		app.Delete("/api/admin/congratulations/:id", ctl.Delete)
		return app
	}

	suite.Run(t, "CreateMissingRecipient", 0, func(t *testing.T) {
		svc := new(MockCongratulationService)
		resp := test.DoJSON(t, newApp(svc), fiber.MethodPost, "/api/congratulations",
			`{"senderName":"Bob","message":"Well done"}`, nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, decodeError(t, resp).Errors, "recipientName")
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	suite.Run(t, "CreateUnknownTheme", 0, func(t *testing.T) {
		resp := test.DoJSON(t, newApp(new(MockCongratulationService)), fiber.MethodPost, "/api/congratulations",
			`{"recipientName":"Ann","senderName":"Bob","message":"Hi","theme":"glitter"}`, nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	suite.Run(t, "Created", 0, func(t *testing.T) {
		svc := new(MockCongratulationService)
		entry := &models.CongratulationEntry{ShareID: "0b6c3f0e-8a59-4c8e-9a55-2f1d4b7e9a10", RecipientName: "Ann"}
		svc.On("Create", mock.Anything, mock.AnythingOfType("*models.CreateCongratulationRequest")).Return(entry, nil)

		resp := test.DoJSON(t, newApp(svc), fiber.MethodPost, "/api/congratulations",
			`{"recipientName":"Ann","senderName":"Bob","message":"Congrats on the new job!"}`, nil)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		var body models.CongratulationEntry
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, entry.ShareID, body.ShareID)
	})

	suite.Run(t, "UnknownShareID", 0, func(t *testing.T) {
		svc := new(MockCongratulationService)
		svc.On("GetByShareID", mock.Anything, "missing").Return(nil, fmt.Errorf("congratulation: %w", utils.ErrNotFound))
		resp := test.DoJSON(t, newApp(svc), fiber.MethodGet, "/api/congratulations/missing", "", nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	suite.Run(t, "QRCodePNG", 0, func(t *testing.T) {
		svc := new(MockCongratulationService)
		shareID := "0b6c3f0e-8a59-4c8e-9a55-2f1d4b7e9a10"
		svc.On("Exists", mock.Anything, shareID).Return(nil)
		resp := test.DoJSON(t, newApp(svc), fiber.MethodGet, "/api/congratulations/"+shareID+"/qrcode?size=128", "", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "image/png", resp.Header.Get(fiber.HeaderContentType))
		img, err := png.Decode(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, 128, img.Bounds().Dx())
		svc.AssertNotCalled(t, "GetByShareID", mock.Anything, mock.Anything)
	})

	suite.Run(t, "QRCodeUnknownShareID", 0, func(t *testing.T) {
		svc := new(MockCongratulationService)
		svc.On("Exists", mock.Anything, "missing").Return(utils.ErrNotFound)
		resp := test.DoJSON(t, newApp(svc), fiber.MethodGet, "/api/congratulations/missing/qrcode", "", nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	suite.Run(t, "ListUsesPagination", 0, func(t *testing.T) {
		svc := new(MockCongratulationService)
		want := models.PaginationParams{Page: 2, Limit: 100, Order: "desc"}
		svc.On("List", mock.Anything, want).Return(&models.PaginatedResponse{Page: 2}, nil)
		resp := test.DoJSON(t, newApp(svc), fiber.MethodGet, "/api/congratulations?page=2&limit=500", "", nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	suite.Run(t, "DeleteBadID", 0, func(t *testing.T) {
		resp := test.DoJSON(t, newApp(new(MockCongratulationService)), fiber.MethodDelete, "/api/admin/congratulations/nope", "", nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	suite.Run(t, "Deleted", 0, func(t *testing.T) {
		svc := new(MockCongratulationService)
		id := primitive.NewObjectID()
		svc.On("Delete", mock.Anything, id).Return(nil)
		resp := test.DoJSON(t, newApp(svc), fiber.MethodDelete, "/api/admin/congratulations/"+id.Hex(), "", nil)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
		svc.AssertExpectations(t)
	})
}

func TestFormController(t *testing.T) {
	suite := test.NewTestSuiteResult("Form Controller")
	defer suite.PrintSummary()

	newApp := func(svc *MockFormService) *fiber.App {
		app := fiber.New(utils.WithTrustedProxies(fiber.Config{}, []string{"0.0.0.0"}))
		ctl := NewFormController(svc)
		app.Get("/api/forms/:slug", ctl.GetForm)
		app.Post("/api/forms/:slug/submissions", ctl.Submit)
		app.Post("/api/admin/forms", ctl.CreateForm)
		return app
	}

	suite.Run(t, "GetFormHidesNotifyEmail", 0, func(t *testing.T) {
		svc := new(MockFormService)
		svc.On("GetActiveBySlug", mock.Anything, "contact").Return(&models.Form{Slug: "contact", NotifyEmail: "me@example.com"}, nil)
		resp := test.DoJSON(t, newApp(svc), fiber.MethodGet, "/api/forms/contact", "", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Empty(t, body["notifyEmail"])
	})

	suite.Run(t, "SubmitMissingValues", 0, func(t *testing.T) {
		svc := new(MockFormService)
		resp := test.DoJSON(t, newApp(svc), fiber.MethodPost, "/api/forms/contact/submissions", `{}`, nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		svc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	suite.Run(t, "SubmitFieldErrorsFromService", 0, func(t *testing.T) {
		svc := new(MockFormService)
		verr := &formSvc.ValidationError{Fields: map[string]string{"email": "is required"}}
		svc.On("Submit", mock.Anything, "contact", map[string]string{"name": "Ann"}, mock.AnythingOfType("forms.SubmissionMeta")).
			Return(nil, fmt.Errorf("submit: %w", verr))

		resp := test.DoJSON(t, newApp(svc), fiber.MethodPost, "/api/forms/contact/submissions", `{"values":{"name":"Ann"}}`, nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "is required", decodeError(t, resp).Errors["email"])
	})

	suite.Run(t, "SubmitUnknownForm", 0, func(t *testing.T) {
		svc := new(MockFormService)
		svc.On("Submit", mock.Anything, "ghost", mock.Anything, mock.Anything).Return(nil, utils.ErrNotFound)
		resp := test.DoJSON(t, newApp(svc), fiber.MethodPost, "/api/forms/ghost/submissions", `{"values":{"a":"b"}}`, nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	suite.Run(t, "SubmitCreated", 0, func(t *testing.T) {
		svc := new(MockFormService)
		id := primitive.NewObjectID()
		svc.On("Submit", mock.Anything, "contact", mock.Anything, mock.MatchedBy(func(m formSvc.SubmissionMeta) bool {
			return m.IP == "198.51.100.7" && m.Fingerprint == "deadbeefcafe"
		})).Return(&models.Submission{ID: id}, nil)

		resp := test.DoJSON(t, newApp(svc), fiber.MethodPost, "/api/forms/contact/submissions",
			`{"values":{"email":"a@b.co"},"fingerprint":"DEADBEEFCAFE"}`, map[string]string{"X-Forwarded-For": "198.51.100.7"})
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	suite.Run(t, "CreateFormConflict", 0, func(t *testing.T) {
		svc := new(MockFormService)
		svc.On("CreateForm", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("form contact: %w", utils.ErrConflict))
		resp := test.DoJSON(t, newApp(svc), fiber.MethodPost, "/api/admin/forms",
			`{"slug":"contact","title":"Contact","fields":[{"name":"email","label":"Email","type":"email","required":true}]}`, nil)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})
}

func TestContentController(t *testing.T) {
	suite := test.NewTestSuiteResult("Content Controller")
	defer suite.PrintSummary()

	newApp := func(svc *MockContentService) *fiber.App {
		app := fiber.New()
		ctl := NewContentController(svc, "s3cret")
		app.Get("/api/content/posts", ctl.ListPosts)
		app.Get("/api/content/posts/:slug", ctl.GetPost)
		app.Get("/api/content/projects", ctl.ListProjects)
		app.Post("/api/revalidate", ctl.Revalidate)
		return app
	}

	suite.Run(t, "RevalidateBadSecret", 0, func(t *testing.T) {
		svc := new(MockContentService)
		resp := test.DoJSON(t, newApp(svc), fiber.MethodPost, "/api/revalidate?secret=wrong", "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		svc.AssertNotCalled(t, "Revalidate", mock.Anything, mock.Anything)
	})

	suite.Run(t, "RevalidateMissingSecret", 0, func(t *testing.T) {
		resp := test.DoJSON(t, newApp(new(MockContentService)), fiber.MethodPost, "/api/revalidate", "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	suite.Run(t, "RevalidateHeaderSecret", 0, func(t *testing.T) {
		svc := new(MockContentService)
		svc.On("Revalidate", mock.Anything, "posts").Return([]string{"posts"}, nil)
		resp := test.DoJSON(t, newApp(svc), fiber.MethodPost, "/api/revalidate?tag=posts", "",
			map[string]string{"X-Revalidate-Secret": "s3cret"})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var body struct {
			Revalidated bool     `json:"revalidated"`
			Tags        []string `json:"tags"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, body.Revalidated)
		assert.Equal(t, []string{"posts"}, body.Tags)
	})

	suite.Run(t, "RevalidateUnknownTag", 0, func(t *testing.T) {
		svc := new(MockContentService)
		svc.On("Revalidate", mock.Anything, "videos").Return(nil, fmt.Errorf("%w: unknown tag", utils.ErrInvalidInput))
		resp := test.DoJSON(t, newApp(svc), fiber.MethodPost, "/api/revalidate?secret=s3cret&tag=videos", "", nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	suite.Run(t, "PostNotFound", 0, func(t *testing.T) {
		svc := new(MockContentService)
		svc.On("GetPost", mock.Anything, "nope").Return(nil, utils.ErrNotFound)
		resp := test.DoJSON(t, newApp(svc), fiber.MethodGet, "/api/content/posts/nope", "", nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	suite.Run(t, "CMSDown", 0, func(t *testing.T) {
		svc := new(MockContentService)
		svc.On("ListPosts", mock.Anything, 10, 0).Return(nil, fmt.Errorf("cms: %w", utils.ErrUnavailable))
		resp := test.DoJSON(t, newApp(svc), fiber.MethodGet, "/api/content/posts", "", nil)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	})

	suite.Run(t, "FeaturedProjects", 0, func(t *testing.T) {
		svc := new(MockContentService)
		svc.On("ListProjects", mock.Anything, mock.MatchedBy(func(f *bool) bool { return f != nil && *f })).
			Return([]models.Project{{Slug: "p1", Featured: true}}, nil)
		resp := test.DoJSON(t, newApp(svc), fiber.MethodGet, "/api/content/projects?featured=true", "", nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	suite.Run(t, "FeaturedNotBool", 0, func(t *testing.T) {
		resp := test.DoJSON(t, newApp(new(MockContentService)), fiber.MethodGet, "/api/content/projects?featured=maybe", "", nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestAuthController(t *testing.T) {
	suite := test.NewTestSuiteResult("Auth Controller")
	defer suite.PrintSummary()

	newApp := func(svc *MockAuthService) *fiber.App {
		app := fiber.New()
		app.Post("/api/admin/login", NewAuthController(svc, zap.NewNop()).Login)
		return app
	}

	suite.Run(t, "MissingPassword", 0, func(t *testing.T) {
		resp := test.DoJSON(t, newApp(new(MockAuthService)), fiber.MethodPost, "/api/admin/login", `{"email":"me@example.com"}`, nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, decodeError(t, resp).Errors, "password")
	})

	suite.Run(t, "WrongPassword", 0, func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", "me@example.com", "wrong-password").Return(nil, fmt.Errorf("bad: %w", utils.ErrUnauthorized))
		resp := test.DoJSON(t, newApp(svc), fiber.MethodPost, "/api/admin/login",
			`{"email":"me@example.com","password":"wrong-password"}`, nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	suite.Run(t, "Success", 0, func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", "me@example.com", "correct-horse").Return(&authSvc.LoginResult{Token: "jwt"}, nil)
		resp := test.DoJSON(t, newApp(svc), fiber.MethodPost, "/api/admin/login",
			`{"email":"me@example.com","password":"correct-horse"}`, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		var body authSvc.LoginResult
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "jwt", body.Token)
	})
}
