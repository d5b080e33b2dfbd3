// Package verifyapi is the HTTP client for the external verification
// backend that scores submissions and credits points.
package verifyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/greenmap-app/greenmap-verify/constants"
	"github.com/greenmap-app/greenmap-verify/internal/common"
)

// DuplicateMessage replaces the backend's wording when it reports an
// already-verified receipt.
const DuplicateMessage = "이미 인증된 내역이에요"

type Client struct {
	http    *http.Client
	baseURL string
	logger  *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// Response is the backend's answer to a submission.
type Response struct {
	Status    int
	Message   string
	Duplicate bool
}

// Endpoint maps an activity type onto its verification path.
func Endpoint(at constants.ActivityType) string {
	switch at.ID {
	case constants.ActivityBike:
		return "/api/v1/verifications/bike"
	case constants.ActivityCharge:
		if at.IsHydrogen() {
			return "/api/v1/verifications/h2"
		}
		return "/api/v1/verifications/ev"
	case constants.ActivityStore:
		return "/api/v1/verifications/store"
	default:
		return ""
	}
}

type backendBody struct {
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

// Submit posts the payload for the given activity type. Non-success
// responses come back as ErrSubmissionRejected (or ErrDuplicateSubmission
// with a friendlier message), with the backend's own message attached.
func (c *Client) Submit(ctx context.Context, at constants.ActivityType, payload any) (*Response, error) {
	endpoint := Endpoint(at)
	if endpoint == "" {
		return nil, fmt.Errorf("%w: unknown activity type %q", common.ErrInvalidInput, at.ID)
	}
	url := c.baseURL + endpoint

	reqID := uuid.New().String()
	start := time.Now()

	bs, err := json.Marshal(payload)
	if err != nil {
		c.logger.Error("verifyapi.encode_error", "req_id", reqID, "error", err)
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bs))
	if err != nil {
		c.logger.Error("verifyapi.build_request_error", "req_id", reqID, "error", err)
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Info("verifyapi.request",
		"req_id", reqID,
		"url", url,
		"activity", string(at.ID),
		"content_length", len(bs),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("verifyapi.send_error", "req_id", reqID, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.logger.Warn("verifyapi.response_body_close_error", "req_id", reqID, "error", cerr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)

	c.logger.Info("verifyapi.response",
		"req_id", reqID,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	var body backendBody
	_ = json.Unmarshal(raw, &body)

	out := &Response{Status: resp.StatusCode, Message: body.Message}
	if resp.StatusCode/100 == 2 {
		return out, nil
	}

	if resp.StatusCode == http.StatusConflict || strings.EqualFold(body.Code, "DUPLICATE") {
		out.Duplicate = true
		out.Message = DuplicateMessage
		return out, fmt.Errorf("%w: %s", common.ErrDuplicateSubmission, body.Message)
	}
	if out.Message == "" {
		out.Message = fmt.Sprintf("verification failed (status %d)", resp.StatusCode)
	}
	return out, fmt.Errorf("%w: status %d: %s", common.ErrSubmissionRejected, resp.StatusCode, body.Message)
}
