package router

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/respond"
	"github.com/fastygo/respond/internal/handler"
	"github.com/fastygo/respond/internal/middleware"
	"github.com/fastygo/respond/internal/store"
)

func newTestRouter(t *testing.T) fasthttp.RequestHandler {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "notes.db"), "notes")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	zlog := zap.NewNop()
	handlers := Handlers{
		Health: handler.NewHealthHandler(st, zlog),
		Notes:  handler.NewNotesHandler(st, zlog),
		Token:  handler.NewTokenHandler("test-secret", "respond-demo", time.Hour, zlog),
		Outage: handler.NewOutageHandler(zlog),
	}
	r := New(handlers, Options{
		Respond:     respond.Config{ErrorLabel: "exception"},
		TokenSecret: "test-secret",
		Logger:      zlog,
	})
	return r.Handler
}

func doRequest(h fasthttp.RequestHandler, method, uri string, body []byte, headers map[string]string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if body != nil {
		ctx.Request.SetBody(body)
	}
	for k, v := range headers {
		ctx.Request.Header.Set(k, v)
	}
	h(ctx)
	return ctx
}

func TestNotesLifecycle(t *testing.T) {
	h := newTestRouter(t)

	created := doRequest(h, fasthttp.MethodPost, "/api/v1/notes", []byte(`{"title":"first"}`), nil)
	require.Equal(t, http.StatusCreated, created.Response.StatusCode())

	var envelope struct {
		Status string     `json:"status"`
		Data   store.Note `json:"data"`
	}
	require.NoError(t, json.Unmarshal(created.Response.Body(), &envelope))
	require.Equal(t, "success", envelope.Status)
	require.NotEmpty(t, envelope.Data.ID)

	got := doRequest(h, fasthttp.MethodGet, "/api/v1/notes/"+envelope.Data.ID, nil, nil)
	assert.Equal(t, http.StatusOK, got.Response.StatusCode())

	listed := doRequest(h, fasthttp.MethodGet, "/api/v1/notes", nil, nil)
	assert.Equal(t, http.StatusOK, listed.Response.StatusCode())
	assert.Contains(t, string(listed.Response.Body()), `"count":1`)
}

func TestDeleteRequiresToken(t *testing.T) {
	h := newTestRouter(t)

	created := doRequest(h, fasthttp.MethodPost, "/api/v1/notes", []byte(`{"title":"guarded"}`), nil)
	var envelope struct {
		Data store.Note `json:"data"`
	}
	require.NoError(t, json.Unmarshal(created.Response.Body(), &envelope))

	denied := doRequest(h, fasthttp.MethodDelete, "/api/v1/notes/"+envelope.Data.ID, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, denied.Response.StatusCode())
	assert.JSONEq(t, `{"status":"fail","data":{"reason":"missing bearer token"}}`, string(denied.Response.Body()))

	issued := doRequest(h, fasthttp.MethodPost, "/api/v1/token", []byte(`{"subject":"user-1"}`), nil)
	require.Equal(t, http.StatusCreated, issued.Response.StatusCode())
	var tokenEnvelope struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(issued.Response.Body(), &tokenEnvelope))

	deleted := doRequest(h, fasthttp.MethodDelete, "/api/v1/notes/"+envelope.Data.ID, nil, map[string]string{
		"Authorization": "Bearer " + tokenEnvelope.Data["token"],
	})
	assert.Equal(t, http.StatusOK, deleted.Response.StatusCode())
	assert.JSONEq(t, `{"status":"success","data":null}`, string(deleted.Response.Body()))
}

func TestConfiguredErrorLabelFlowsThroughChain(t *testing.T) {
	h := newTestRouter(t)

	ctx := doRequest(h, fasthttp.MethodGet, "/api/v1/outage", nil, map[string]string{
		middleware.HeaderRequestID: "abc123",
	})

	assert.Equal(t, http.StatusServiceUnavailable, ctx.Response.StatusCode())
	assert.JSONEq(t, `{
		"status": "exception",
		"message": "DB down",
		"code": "DB_ERR",
		"details": {"retryAfter": 60},
		"extra": {"traceId": "abc123"}
	}`, string(ctx.Response.Body()))
}

func TestRequestIDHeaderEchoed(t *testing.T) {
	h := newTestRouter(t)

	ctx := doRequest(h, fasthttp.MethodGet, "/health", nil, nil)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.NotEmpty(t, string(ctx.Response.Header.Peek(middleware.HeaderRequestID)))
}
