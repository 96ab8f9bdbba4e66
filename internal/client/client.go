package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shamsy-hassan/FSH-sub001/internal/pkg/constants"
	"github.com/shamsy-hassan/FSH-sub001/internal/pkg/logger"
	"github.com/shamsy-hassan/FSH-sub001/internal/session"
)

var validate = validator.New()

// Client is the authenticated HTTP core shared by all resource gateways. The
// session store is passed in explicitly so multiple clients (and tests) can
// carry independent sessions.
type Client struct {
	baseURL string
	httpc   *http.Client
	session *session.Store

	Auth        *AuthGateway
	User        *UserGateway
	Market      *MarketGateway
	Sacco       *SaccoGateway
	AgroClimate *AgroClimateGateway
	ECommerce   *ECommerceGateway
	Order       *OrderGateway
	Skill       *SkillGateway
	Storage     *StorageGateway
	Message     *MessageGateway
	Dashboard   *DashboardGateway
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpc.Timeout = d }
}

func New(baseURL string, sess *session.Store, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 15 * time.Second},
		session: sess,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Auth = &AuthGateway{c: c}
	c.User = &UserGateway{c: c}
	c.Market = &MarketGateway{c: c}
	c.Sacco = &SaccoGateway{c: c}
	c.AgroClimate = &AgroClimateGateway{c: c}
	c.ECommerce = &ECommerceGateway{c: c}
	c.Order = &OrderGateway{c: c}
	c.Skill = &SkillGateway{c: c}
	c.Storage = &StorageGateway{c: c}
	c.Message = &MessageGateway{c: c}
	c.Dashboard = &DashboardGateway{c: c}
	return c
}

func (c *Client) Session() *session.Store {
	return c.session
}

// requireAdmin is the client-side guard for admin-gated operations. It is a
// UX fast-path only; the backend re-enforces authorization.
func (c *Client) requireAdmin() error {
	if !c.session.IsAdmin() {
		return constants.ErrAdminRequired
	}
	return nil
}

// request issues a JSON (or bodyless) call and returns the raw response body.
func (c *Client) request(ctx context.Context, method, path string, query url.Values, body interface{}) ([]byte, error) {
	var reader io.Reader
	contentType := ""
	if body != nil {
		raw, err := sonic.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(raw)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, query, reader, contentType)
}

// requestMultipart issues a multipart call. The Content-Type (with boundary)
// comes from the encoded form; no JSON header is set.
func (c *Client) requestMultipart(ctx context.Context, method, path string, form *Form) ([]byte, error) {
	body, contentType, err := form.encode()
	if err != nil {
		return nil, fmt.Errorf("encode multipart form: %w", err)
	}
	return c.do(ctx, method, path, nil, body, contentType)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set(constants.HeaderRequestID, uuid.NewString())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return raw, nil
	}

	apiErr := responseError(resp.StatusCode, resp.Header.Get("Content-Type"), raw)
	logger.Warnf(ctx, "%s %s failed: %s", method, path, apiErr.Error())
	return nil, apiErr
}

// responseError builds the single error taxonomy of the client: the parsed
// {message} when the backend sent one, otherwise the body text, otherwise a
// generic failure. No 4xx/5xx distinction beyond the carried code.
func responseError(status int, contentType string, raw []byte) error {
	msg := ""
	if strings.Contains(contentType, "application/json") {
		var body struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if err := sonic.Unmarshal(raw, &body); err == nil {
			msg = body.Message
			if msg == "" {
				msg = body.Error
			}
		}
	} else {
		msg = strings.TrimSpace(string(raw))
	}
	if msg == "" {
		msg = "api request failed"
	}
	return constants.NewCodedError(status, msg)
}

// decodeInto decodes a JSON body into out.
func decodeInto(raw []byte, out interface{}) error {
	if err := sonic.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeList normalizes the two list shapes the backend produces: a bare
// array, or an envelope with a named collection field. A missing field is an
// empty collection, never an error.
func decodeList[T any](raw []byte, field string) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []T{}, nil
	}

	if trimmed[0] == '[' {
		var items []T
		if err := sonic.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		return items, nil
	}

	var envelope map[string]json.RawMessage
	if err := sonic.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	member, ok := envelope[field]
	if !ok || len(member) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := sonic.Unmarshal(member, &items); err != nil {
		return nil, fmt.Errorf("decode %q: %w", field, err)
	}
	return items, nil
}
