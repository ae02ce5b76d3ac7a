package handler

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/respond/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "notes.db"), "notes")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func decodeEnvelope(t *testing.T, ctx *fasthttp.RequestCtx) (string, map[string]any) {
	t.Helper()
	var envelope struct {
		Status string         `json:"status"`
		Data   map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &envelope))
	return envelope.Status, envelope.Data
}

func TestCreateNote(t *testing.T) {
	st := newTestStore(t)
	h := NewNotesHandler(st, zap.NewNop())

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetBody([]byte(`{"title":"groceries","body":"milk","tags":["home"]}`))
	h.Create(ctx)

	assert.Equal(t, http.StatusCreated, ctx.Response.StatusCode())

	status, data := decodeEnvelope(t, ctx)
	assert.Equal(t, "success", status)
	assert.NotEmpty(t, data["id"])
	assert.Equal(t, "groceries", data["title"])

	count, err := st.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCreateNoteInvalidJSON(t *testing.T) {
	h := NewNotesHandler(newTestStore(t), zap.NewNop())

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetBody([]byte(`{not json`))
	h.Create(ctx)

	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"status":"fail","data":{"reason":"invalid JSON payload"}}`, string(ctx.Response.Body()))
}

func TestCreateNoteMissingTitle(t *testing.T) {
	h := NewNotesHandler(newTestStore(t), zap.NewNop())

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetBody([]byte(`{"title":"   "}`))
	h.Create(ctx)

	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"status":"fail","data":{"field":"title","reason":"required"}}`, string(ctx.Response.Body()))
}

func TestGetNote(t *testing.T) {
	st := newTestStore(t)
	h := NewNotesHandler(st, zap.NewNop())

	note := &store.Note{Title: "groceries"}
	require.NoError(t, st.Put(note))

	ctx := &fasthttp.RequestCtx{}
	ctx.SetUserValue("id", note.ID)
	h.Get(ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	status, data := decodeEnvelope(t, ctx)
	assert.Equal(t, "success", status)
	assert.Equal(t, note.ID, data["id"])
}

func TestGetNoteMissing(t *testing.T) {
	h := NewNotesHandler(newTestStore(t), zap.NewNop())

	ctx := &fasthttp.RequestCtx{}
	ctx.SetUserValue("id", "no-such-id")
	h.Get(ctx)

	assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"status":"fail","data":{"id":"no-such-id","reason":"note not found"}}`, string(ctx.Response.Body()))
}

func TestListNotes(t *testing.T) {
	st := newTestStore(t)
	h := NewNotesHandler(st, zap.NewNop())

	require.NoError(t, st.Put(&store.Note{Title: "one"}))
	require.NoError(t, st.Put(&store.Note{Title: "two"}))

	ctx := &fasthttp.RequestCtx{}
	h.List(ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	status, data := decodeEnvelope(t, ctx)
	assert.Equal(t, "success", status)
	assert.EqualValues(t, 2, data["count"])
}

func TestListNotesEmptyIsArray(t *testing.T) {
	h := NewNotesHandler(newTestStore(t), zap.NewNop())

	ctx := &fasthttp.RequestCtx{}
	h.List(ctx)

	assert.JSONEq(t, `{"status":"success","data":{"notes":[],"count":0}}`, string(ctx.Response.Body()))
}

func TestDeleteNote(t *testing.T) {
	st := newTestStore(t)
	h := NewNotesHandler(st, zap.NewNop())

	note := &store.Note{Title: "temp"}
	require.NoError(t, st.Put(note))

	ctx := &fasthttp.RequestCtx{}
	ctx.SetUserValue("id", note.ID)
	h.Delete(ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"status":"success","data":null}`, string(ctx.Response.Body()))
}

func TestDeleteNoteMissing(t *testing.T) {
	h := NewNotesHandler(newTestStore(t), zap.NewNop())

	ctx := &fasthttp.RequestCtx{}
	ctx.SetUserValue("id", "no-such-id")
	h.Delete(ctx)

	assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
}
