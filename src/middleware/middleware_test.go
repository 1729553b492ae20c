package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-backend/src/ratelimit"
	"portfolio-backend/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (ratelimit.Result, error) {
	return ratelimit.Result{}, errors.New("redis down")
}

func newLimitedApp(t *testing.T, lim ratelimit.Limiter, proxies ...string) *fiber.App {
	t.Helper()
	app := fiber.New(utils.WithTrustedProxies(fiber.Config{}, proxies))
	app.Post("/track", RateLimit(lim, zap.NewNop()), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})
	return app
}

func TestRateLimitReturns429AfterThreshold(t *testing.T) {
	lim, err := ratelimit.NewMemoryLimiter(ratelimit.Options{Limit: 2, Interval: time.Minute})
	require.NoError(t, err)
	// app.Test ต่อมาจาก 0.0.0.0 ให้ถือเป็น proxy เพื่อแยก client ด้วย X-Forwarded-For
	app := newLimitedApp(t, lim, "0.0.0.0")

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/track", nil)
		req.Header.Set("X-Forwarded-For", "5.5.5.5")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		assert.Equal(t, "2", resp.Header.Get("X-RateLimit-Limit"))
	}

	req := httptest.NewRequest("POST", "/track", nil)
	req.Header.Set("X-Forwarded-For", "5.5.5.5")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "60", resp.Header.Get("Retry-After"))
	assert.Equal(t, "0", resp.Header.Get("X-RateLimit-Remaining"))

	// another client is unaffected
	req = httptest.NewRequest("POST", "/track", nil)
	req.Header.Set("X-Forwarded-For", "6.6.6.6")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestRateLimitIgnoresSpoofedForwardedFor(t *testing.T) {
	for name, proxies := range map[string][]string{
		"no trusted proxies": nil,
		"untrusted peer":     {"10.0.0.1"},
	} {
		t.Run(name, func(t *testing.T) {
			lim, err := ratelimit.NewMemoryLimiter(ratelimit.Options{Limit: 3, Interval: time.Minute})
			require.NoError(t, err)
			app := newLimitedApp(t, lim, proxies...)

			admitted := 0
			for i := 0; i < 20; i++ {
				req := httptest.NewRequest("POST", "/track", nil)
				req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.0.%d", i))
				req.Header.Set("X-Real-IP", fmt.Sprintf("192.0.2.%d", i))
				resp, err := app.Test(req)
				require.NoError(t, err)
				if resp.StatusCode == fiber.StatusCreated {
					admitted++
				} else {
					assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
				}
			}
			assert.Equal(t, 3, admitted)
		})
	}
}

func TestRateLimitFailsOpen(t *testing.T) {
	app := newLimitedApp(t, failingLimiter{})
	resp, err := app.Test(httptest.NewRequest("POST", "/track", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestAuthJWT(t *testing.T) {
	jwtm := utils.NewJWTManager("secret", time.Hour)
	app := fiber.New()
	app.Get("/admin", AuthJWT(jwtm), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("email").(string))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	token, _, err := jwtm.Generate("admin@example.com", "admin")
	require.NoError(t, err)
	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestTimeoutSetsDeadline(t *testing.T) {
	app := fiber.New()
	app.Get("/", Timeout(time.Second), func(c *fiber.Ctx) error {
		_, ok := c.UserContext().Deadline()
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestAccessLogPassesThrough(t *testing.T) {
	app := fiber.New()
	app.Use(AccessLog(zap.NewNop()))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusAccepted) })
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
}
