package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	upstreamerrors "leavedesk/internal/upstream/errors"

	"leavedesk/internal/shared/apperror"

	"go.uber.org/zap"
)

// Client is the single HTTP wrapper for the HR REST API. Every call
// takes a context and the caller's bearer token; nothing is retried
// here, a failed call is reported once.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, logger ...*zap.Logger) *Client {
	l := zap.L().Named("upstream.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("upstream.client")
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 15 * time.Second},
		logger:  l,
	}
}

// errorPayload covers both message shapes the API uses for failures.
type errorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (p errorPayload) text() string {
	if p.Message != "" {
		return p.Message
	}
	return p.Error
}

func (c *Client) send(ctx context.Context, method, path, token string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Error("upstream request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, apperror.Wrap(err,
			apperror.CodeUpstreamUnavailable,
			upstreamerrors.ErrUnreachable.Message,
			http.StatusBadGateway,
		)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, apperror.Wrap(err,
			apperror.CodeUpstreamUnavailable,
			upstreamerrors.ErrBadPayload.Message,
			http.StatusBadGateway,
		)
	}

	if res.StatusCode >= http.StatusBadRequest {
		return nil, c.mapStatus(method, path, res.StatusCode, data)
	}
	return data, nil
}

// mapStatus translates upstream failures into the gateway error
// taxonomy. 401 becomes the global session-expired sentinel; other
// statuses keep the server message when one is present.
func (c *Client) mapStatus(method, path string, status int, body []byte) error {
	switch status {
	case http.StatusUnauthorized:
		return upstreamerrors.ErrSessionExpired
	case http.StatusForbidden:
		return upstreamerrors.ErrAccessDenied
	}

	var payload errorPayload
	_ = json.Unmarshal(body, &payload)
	message := payload.text()
	if message == "" {
		message = "The leave service rejected the request"
	}

	c.logger.Warn("upstream rejected request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.String("message", message),
	)
	return apperror.New(apperror.CodeUpstreamRejected, message, status)
}

func (c *Client) get(ctx context.Context, path, token string) ([]byte, error) {
	return c.send(ctx, http.MethodGet, path, token, nil)
}

func decodeOne[R any, T any](data []byte, fn func(R) T) (T, error) {
	var raw R
	if err := json.Unmarshal(data, &raw); err != nil {
		var zero T
		return zero, upstreamerrors.ErrBadPayload
	}
	return fn(raw), nil
}

func decodeListOrFail[R any, T any](data []byte, fn func(R) T) ([]T, error) {
	out, err := decodeNormalized(data, fn)
	if err != nil {
		return nil, upstreamerrors.ErrBadPayload
	}
	return out, nil
}
