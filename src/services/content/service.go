package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"portfolio-backend/src/models"
	"portfolio-backend/src/utils"

	"go.uber.org/zap"
)

const maxPostsPage = 50

// Querier คือส่วนของ GraphQLClient ที่ service ใช้
type Querier interface {
	Query(ctx context.Context, query string, vars map[string]interface{}, out interface{}) error
}

type Service struct {
	cms   Querier
	cache Cache
	ttl   time.Duration
	log   *zap.Logger
}

func NewService(cms Querier, cache Cache, ttl time.Duration, log *zap.Logger) *Service {
	if cache == nil {
		cache = NewMemoryCache()
	}
	return &Service{cms: cms, cache: cache, ttl: ttl, log: log.Named("content")}
}

func (s *Service) ListPosts(ctx context.Context, first, skip int) ([]models.Post, error) {
	if first <= 0 || first > maxPostsPage {
		first = 10
	}
	if skip < 0 {
		skip = 0
	}
	key := fmt.Sprintf("posts:list:%d:%d", first, skip)
	return cached(ctx, s, TagPosts, key, func(ctx context.Context) ([]models.Post, error) {
		var data struct {
			Posts []models.Post `json:"posts"`
		}
		if err := s.cms.Query(ctx, postsQuery, map[string]interface{}{"first": first, "skip": skip}, &data); err != nil {
			return nil, err
		}
		if data.Posts == nil {
			data.Posts = []models.Post{}
		}
		return data.Posts, nil
	})
}

func (s *Service) GetPost(ctx context.Context, slug string) (*models.Post, error) {
	slug = normalizeSlug(slug)
	return cached(ctx, s, TagPosts, "posts:slug:"+slug, func(ctx context.Context) (*models.Post, error) {
		var data struct {
			Post *models.Post `json:"post"`
		}
		if err := s.cms.Query(ctx, postBySlugQuery, map[string]interface{}{"slug": slug}, &data); err != nil {
			return nil, err
		}
		if data.Post == nil {
			return nil, fmt.Errorf("post %q %w", slug, utils.ErrNotFound)
		}
		html, err := RenderMarkdown(data.Post.Body)
		if err != nil {
			return nil, fmt.Errorf("render post %q: %w", slug, err)
		}
		data.Post.HTML = html
		return data.Post, nil
	})
}

// ListProjects featured=nil คืนทุกโปรเจกต์
func (s *Service) ListProjects(ctx context.Context, featured *bool) ([]models.Project, error) {
	key := "projects:list:all"
	query := allProjectsQuery
	var vars map[string]interface{}
	if featured != nil {
		key = fmt.Sprintf("projects:list:featured=%t", *featured)
		query = projectsQuery
		vars = map[string]interface{}{"featured": *featured}
	}
	return cached(ctx, s, TagProjects, key, func(ctx context.Context) ([]models.Project, error) {
		var data struct {
			Projects []models.Project `json:"projects"`
		}
		if err := s.cms.Query(ctx, query, vars, &data); err != nil {
			return nil, err
		}
		if data.Projects == nil {
			data.Projects = []models.Project{}
		}
		return data.Projects, nil
	})
}

func (s *Service) GetProject(ctx context.Context, slug string) (*models.Project, error) {
	slug = normalizeSlug(slug)
	return cached(ctx, s, TagProjects, "projects:slug:"+slug, func(ctx context.Context) (*models.Project, error) {
		var data struct {
			Project *models.Project `json:"project"`
		}
		if err := s.cms.Query(ctx, projectBySlugQuery, map[string]interface{}{"slug": slug}, &data); err != nil {
			return nil, err
		}
		if data.Project == nil {
			return nil, fmt.Errorf("project %q %w", slug, utils.ErrNotFound)
		}
		html, err := RenderMarkdown(data.Project.Description)
		if err != nil {
			return nil, fmt.Errorf("render project %q: %w", slug, err)
		}
		data.Project.HTML = html
		return data.Project, nil
	})
}

func (s *Service) GetPage(ctx context.Context, slug string) (*models.Page, error) {
	slug = normalizeSlug(slug)
	return cached(ctx, s, TagPages, "pages:slug:"+slug, func(ctx context.Context) (*models.Page, error) {
		var data struct {
			Page *models.Page `json:"page"`
		}
		if err := s.cms.Query(ctx, pageBySlugQuery, map[string]interface{}{"slug": slug}, &data); err != nil {
			return nil, err
		}
		if data.Page == nil {
			return nil, fmt.Errorf("page %q %w", slug, utils.ErrNotFound)
		}
		html, err := RenderMarkdown(data.Page.Body)
		if err != nil {
			return nil, fmt.Errorf("render page %q: %w", slug, err)
		}
		data.Page.HTML = html
		return data.Page, nil
	})
}

// Revalidate ล้าง cache ของ tag ที่ระบุ หรือทุก tag ถ้าส่งค่าว่าง
func (s *Service) Revalidate(ctx context.Context, tag string) ([]string, error) {
	tags := KnownTags
	if tag != "" {
		if !isKnownTag(tag) {
			return nil, fmt.Errorf("%w: unknown tag %q", utils.ErrInvalidInput, tag)
		}
		tags = []string{tag}
	}
	for _, t := range tags {
		if err := s.cache.InvalidateTag(ctx, t); err != nil {
			return nil, err
		}
	}
	s.log.Info("content revalidated", zap.Strings("tags", tags))
	return tags, nil
}

// cached อ่านจาก cache ก่อน; cache ล่มจะข้ามไปดึงจาก CMS ตรง ๆ
// ผลลัพธ์ error (รวมถึง not found) ไม่ถูก cache
func cached[T any](ctx context.Context, s *Service, tag, key string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	if raw, ok, err := s.cache.Get(ctx, key); err != nil {
		s.log.Warn("content cache read failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			return v, nil
		}
	}

	v, err := fetch(ctx)
	if err != nil {
		return zero, err
	}

	if raw, err := json.Marshal(v); err == nil {
		if err := s.cache.Set(ctx, tag, key, raw, s.ttl); err != nil {
			s.log.Warn("content cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return v, nil
}

func normalizeSlug(slug string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(slug), "/"))
}

func isKnownTag(tag string) bool {
	for _, t := range KnownTags {
		if t == tag {
			return true
		}
	}
	return false
}
