// Package api is the HTTP client for the dashboard backend.
package api

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

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/swalay/labelctl/internal/labels"
	"github.com/swalay/labelctl/internal/log"
	"github.com/swalay/labelctl/internal/tracing"
)

// RequestIDHeader carries a per-request uuid for correlating backend logs.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody caps how much of a failed response is read.
const maxErrorBody = 64 << 10

// Config configures a Client.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration // 0 = no client-side timeout

	// HTTPClient overrides the transport. Defaults to a fresh http.Client.
	HTTPClient *http.Client
	// Tracer records one client span per call. Defaults to a no-op tracer.
	Tracer trace.Tracer
}

// Client posts to the dashboard backend. It implements labels.Registrar.
type Client struct {
	baseURL string
	token   string
	timeout time.Duration
	http    *http.Client
	tracer  trace.Tracer
}

var _ labels.Registrar = (*Client)(nil)

// NewClient creates a Client from cfg.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("noop")
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		timeout: cfg.Timeout,
		http:    httpClient,
		tracer:  tracer,
	}
}

// BaseURL returns the backend root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// StatusError is returned for non-2xx responses that carry no usable
// {success, message} body.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// AddLabel registers a label. A backend answer of success=false is returned
// as a Response, not an error; errors mean the call itself failed.
func (c *Client) AddLabel(ctx context.Context, reg labels.Registration) (labels.Response, error) {
	requestID := uuid.NewString()

	ctx, span := c.tracer.Start(ctx, tracing.SpanAddLabel,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(tracing.AttrRequestID, requestID),
			attribute.String(tracing.AttrUserType, string(reg.UserType)),
		),
	)
	defer span.End()

	var resp labels.Response
	status, err := c.post(ctx, labels.AddLabelPath, requestID, reg, &resp)
	if status != 0 {
		span.SetAttributes(attribute.Int(tracing.AttrHTTPStatusCode, status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return labels.Response{}, err
	}

	span.SetAttributes(attribute.Bool(tracing.AttrSuccess, resp.Success))
	if !resp.Success {
		span.SetStatus(codes.Error, resp.Message)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	log.Info(log.CatAPI, "Registration answered", "request_id", requestID, "status", status, "success", resp.Success)
	return resp, nil
}

// post sends body as JSON and decodes the reply into out.
// It returns the HTTP status code when a response was received.
func (c *Client) post(ctx context.Context, path, requestID string, body, out any) (int, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("encoding request: %w", err)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	log.Debug(log.CatAPI, "POST", "url", url, "request_id", requestID)

	res, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("POST %s: %w", path, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return res.StatusCode, fmt.Errorf("decoding response: %w", err)
		}
		return res.StatusCode, nil
	}

	// Error statuses still count as a backend answer when they carry a message.
	raw, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	var failure labels.Response
	if err := json.Unmarshal(raw, &failure); err == nil && strings.TrimSpace(failure.Message) != "" {
		failure.Success = false
		if r, ok := out.(*labels.Response); ok {
			*r = failure
			return res.StatusCode, nil
		}
	}

	return res.StatusCode, &StatusError{
		StatusCode: res.StatusCode,
		Body:       strings.TrimSpace(string(raw)),
	}
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}
