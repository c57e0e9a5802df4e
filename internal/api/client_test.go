package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/swalay/labelctl/internal/labels"
	"github.com/swalay/labelctl/internal/tracing"
)

func superRegistration() labels.Registration {
	return labels.Registration{
		Username: "alice",
		Email:    "a@b.com",
		Contact:  "9999999999",
		UserType: labels.UserTypeSuper,
		IsLabel:  true,
		Label:    "Acme Records",
	}
}

func TestAddLabel_Success(t *testing.T) {
	var got labels.Registration
	var headers http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/labels/addLabel", r.URL.Path)
		headers = r.Header.Clone()
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Config{BaseURL: srv.URL + "/", Token: "tok"})
	resp, err := c.AddLabel(context.Background(), superRegistration())

	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Equal(t, superRegistration(), got)
	require.Equal(t, "application/json", headers.Get("Content-Type"))
	require.Equal(t, "Bearer tok", headers.Get("Authorization"))
	_, err = uuid.Parse(headers.Get(RequestIDHeader))
	require.NoError(t, err, "request id should be a uuid")
}

func TestAddLabel_NoTokenNoAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	t.Cleanup(srv.Close)

	_, err := NewClient(Config{BaseURL: srv.URL}).AddLabel(context.Background(), superRegistration())
	require.NoError(t, err)
}

func TestAddLabel_ServerReportedFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"duplicate email"}`))
	}))
	t.Cleanup(srv.Close)

	resp, err := NewClient(Config{BaseURL: srv.URL}).AddLabel(context.Background(), superRegistration())

	require.NoError(t, err)
	require.False(t, resp.Success)
	require.Equal(t, "duplicate email", resp.Message)
}

func TestAddLabel_ErrorStatusWithMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"success":false,"message":"Username already taken"}`))
	}))
	t.Cleanup(srv.Close)

	resp, err := NewClient(Config{BaseURL: srv.URL}).AddLabel(context.Background(), superRegistration())

	require.NoError(t, err)
	require.False(t, resp.Success)
	require.Equal(t, "Username already taken", resp.Message)
}

func TestAddLabel_ErrorStatusWithoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	_, err := NewClient(Config{BaseURL: srv.URL}).AddLabel(context.Background(), superRegistration())

	require.Error(t, err)
	require.True(t, IsStatus(err, http.StatusInternalServerError))
	require.Contains(t, err.Error(), "boom")
}

func TestAddLabel_UndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	t.Cleanup(srv.Close)

	_, err := NewClient(Config{BaseURL: srv.URL}).AddLabel(context.Background(), superRegistration())
	require.ErrorContains(t, err, "decoding response")
}

func TestAddLabel_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(Config{BaseURL: url}).AddLabel(context.Background(), superRegistration())
	require.ErrorContains(t, err, "POST /api/labels/addLabel")
}

func TestAddLabel_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	c := NewClient(Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	_, err := c.AddLabel(context.Background(), superRegistration())

	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAddLabel_NoDeduplication(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Config{BaseURL: srv.URL})
	for range 2 {
		_, err := c.AddLabel(context.Background(), superRegistration())
		require.NoError(t, err)
	}
	require.Equal(t, int32(2), calls.Load())
}

func TestAddLabel_RecordsSpan(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"duplicate email"}`))
	}))
	t.Cleanup(srv.Close)

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	c := NewClient(Config{BaseURL: srv.URL, Tracer: tp.Tracer("test")})
	_, err := c.AddLabel(context.Background(), superRegistration())
	require.NoError(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	span := spans[0]
	require.Equal(t, tracing.SpanAddLabel, span.Name)
	require.Equal(t, codes.Error, span.Status.Code)
	require.Equal(t, "duplicate email", span.Status.Description)
	require.Contains(t, span.Attributes, attribute.String(tracing.AttrUserType, "super"))
	require.Contains(t, span.Attributes, attribute.Int(tracing.AttrHTTPStatusCode, http.StatusOK))
	require.Contains(t, span.Attributes, attribute.Bool(tracing.AttrSuccess, false))
}

func TestStatusError_Message(t *testing.T) {
	require.Equal(t, "unexpected status 502", (&StatusError{StatusCode: 502}).Error())
	require.Equal(t, "unexpected status 500: boom", (&StatusError{StatusCode: 500, Body: "boom"}).Error())
}
