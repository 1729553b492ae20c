package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"portfolio-backend/src/utils"

	"github.com/gofiber/fiber/v2"
)

const defaultCMSTimeout = 8 * time.Second

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

type GraphQLError struct {
	Message string        `json:"message"`
	Path    []interface{} `json:"path,omitempty"`
}

// GraphQLErrors คือ errors[] ที่ CMS ส่งกลับมาพร้อม HTTP 200
type GraphQLErrors []GraphQLError

func (e GraphQLErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ge := range e {
		msgs[i] = ge.Message
	}
	return "cms graphql: " + strings.Join(msgs, "; ")
}

// GraphQLClient ยิง query ไปยัง headless CMS
type GraphQLClient struct {
	endpoint string
	token    string
	timeout  time.Duration
}

func NewGraphQLClient(endpoint, token string, timeout time.Duration) *GraphQLClient {
	if timeout <= 0 {
		timeout = defaultCMSTimeout
	}
	return &GraphQLClient{endpoint: endpoint, token: token, timeout: timeout}
}

// Query ถอด data ลง out; deadline ของ ctx จำกัด timeout ของ request
func (c *GraphQLClient) Query(ctx context.Context, query string, vars map[string]interface{}, out interface{}) error {
	if c.endpoint == "" {
		return fmt.Errorf("cms endpoint not configured: %w", utils.ErrUnavailable)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	timeout := c.timeout
	if dl, ok := ctx.Deadline(); ok {
		if remaining := time.Until(dl); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		return context.DeadlineExceeded
	}

	a := fiber.AcquireAgent()
	req := a.Request()
	req.Header.SetMethod(fiber.MethodPost)
	req.SetRequestURI(c.endpoint)
	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return fmt.Errorf("cms endpoint: %w", err)
	}
	a.JSON(graphqlRequest{Query: query, Variables: vars})
	a.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if c.token != "" {
		a.Set(fiber.HeaderAuthorization, "Bearer "+c.token)
	}
	a.Timeout(timeout)

	// Bytes คืน agent เข้า pool เอง
	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("cms request: %w: %w", utils.ErrUnavailable, errors.Join(errs...))
	}
	if code != fiber.StatusOK {
		return fmt.Errorf("cms responded with status %d: %w", code, utils.ErrUnavailable)
	}

	var resp graphqlResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("decode cms response: %w: %w", utils.ErrUnavailable, err)
	}
	if len(resp.Errors) > 0 {
		return GraphQLErrors(resp.Errors)
	}
	if out == nil || len(resp.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("decode cms data: %w", err)
	}
	return nil
}
