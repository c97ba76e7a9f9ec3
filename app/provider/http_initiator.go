package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vibast-solutions/ms-go-enrollment/app/checkout"
)

const (
	amountField          = "payment_amount"
	requestIDHeader      = "X-Request-ID"
	defaultHTTPTimeout   = 10 * time.Second
	maxErrorBodyLogBytes = 2048
)

type HTTPInitiatorConfig struct {
	Flow    string
	BaseURL string
	Path    string
	APIKey  string
	Timeout time.Duration
}

// HTTPInitiator posts {<flow field>: target, "payment_amount": "123.46"} as
// JSON and expects {"url": ..., "payload": {...}} back.
type HTTPInitiator struct {
	cfg    HTTPInitiatorConfig
	client *http.Client
}

func NewHTTPInitiator(cfg HTTPInitiatorConfig) *HTTPInitiator {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	if strings.TrimSpace(cfg.Flow) == "" {
		cfg.Flow = FlowRunKey
	}

	return &HTTPInitiator{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

func (i *HTTPInitiator) Flow() string {
	return i.cfg.Flow
}

//nolint:nonamedreturns
func (i *HTTPInitiator) Initiate(ctx context.Context, input *InitiateInput) (instruction *checkout.RedirectInstruction, err error) {
	body, err := json.Marshal(i.requestBody(input))
	if err != nil {
		return nil, fmt.Errorf("encode initiation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create initiation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if input.RequestID != "" {
		req.Header.Set(requestIDHeader, input.RequestID)
	}
	if key := strings.TrimSpace(i.cfg.APIKey); key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = &NetworkError{Err: closeErr}
			instruction = nil
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &RemoteRejectedError{StatusCode: resp.StatusCode, Body: truncate(string(respBody), maxErrorBodyLogBytes)}
	}

	var payload struct {
		URL     string            `json:"url"`
		Payload map[string]string `json:"payload"`
	}
	if jsonErr := json.Unmarshal(respBody, &payload); jsonErr != nil {
		return nil, &RemoteRejectedError{StatusCode: resp.StatusCode, Body: truncate(string(respBody), maxErrorBodyLogBytes)}
	}
	if strings.TrimSpace(payload.URL) == "" {
		return nil, &RemoteRejectedError{StatusCode: resp.StatusCode, Body: "redirect url missing"}
	}
	if payload.Payload == nil {
		payload.Payload = map[string]string{}
	}

	return &checkout.RedirectInstruction{URL: payload.URL, Payload: payload.Payload}, nil
}

func (i *HTTPInitiator) requestBody(input *InitiateInput) map[string]any {
	body := map[string]any{
		amountField: checkout.FormatSubmissionAmount(input.Amount),
	}
	switch i.cfg.Flow {
	case FlowBootcampRunID:
		body[FlowBootcampRunID] = input.Target.BootcampRunID
	default:
		body[FlowRunKey] = input.Target.Key
	}
	return body
}

func (i *HTTPInitiator) endpoint() string {
	base := strings.TrimRight(strings.TrimSpace(i.cfg.BaseURL), "/")
	path := strings.TrimSpace(i.cfg.Path)
	if path == "" {
		return base
	}
	return base + "/" + strings.TrimLeft(path, "/")
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}

// IsRetryable reports whether the applicant can simply try again.
func IsRetryable(err error) bool {
	var rejected *RemoteRejectedError
	if errors.As(err, &rejected) {
		return rejected.StatusCode >= http.StatusInternalServerError
	}
	return errors.Is(err, ErrNetwork)
}
