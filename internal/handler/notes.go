// Package handler contains the fasthttp handlers of the demo service. Every
// handler finalizes its response through the Formatter installed by
// fasthttpx.Install.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/respond"
	"github.com/fastygo/respond/fasthttpx"
	"github.com/fastygo/respond/internal/middleware"
	"github.com/fastygo/respond/internal/store"
	"github.com/fastygo/respond/pkg/logger"
)

type noteRequest struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags"`
}

// NotesHandler serves the note CRUD endpoints.
type NotesHandler struct {
	store  *store.Store
	logger *zap.Logger
}

// NewNotesHandler wires the handler to its note store.
func NewNotesHandler(st *store.Store, log *zap.Logger) *NotesHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &NotesHandler{store: st, logger: log}
}

// @Summary List notes
// @Tags notes
// @Router /api/v1/notes [get]
func (h *NotesHandler) List(ctx *fasthttp.RequestCtx) {
	f := fasthttpx.From(ctx)

	limit := parseInt(string(ctx.QueryArgs().Peek("limit")), 50)
	notes, err := h.store.List(limit)
	if err != nil {
		h.logger.Error("listing notes failed", zap.Error(err), logger.RequestID(middleware.RequestIDFrom(ctx)))
		_ = f.Error("could not list notes", respond.WithCode("STORE_READ"))
		return
	}
	if notes == nil {
		notes = []store.Note{}
	}
	_ = f.Success(map[string]any{"notes": notes, "count": len(notes)})
}

// @Summary Create note
// @Tags notes
// @Router /api/v1/notes [post]
func (h *NotesHandler) Create(ctx *fasthttp.RequestCtx) {
	f := fasthttpx.From(ctx)

	var req noteRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		_ = f.Fail(map[string]any{"reason": "invalid JSON payload"})
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		_ = f.Fail(map[string]any{"field": "title", "reason": "required"})
		return
	}

	note := &store.Note{Title: req.Title, Body: req.Body, Tags: req.Tags}
	if err := h.store.Put(note); err != nil {
		h.logger.Error("persisting note failed", zap.Error(err), logger.RequestID(middleware.RequestIDFrom(ctx)))
		_ = f.Error("could not persist note", respond.WithCode("STORE_WRITE"))
		return
	}
	_ = f.Success(note, respond.WithStatusCode(http.StatusCreated))
}

// @Summary Get note
// @Tags notes
// @Router /api/v1/notes/{id} [get]
func (h *NotesHandler) Get(ctx *fasthttp.RequestCtx) {
	f := fasthttpx.From(ctx)

	id, _ := ctx.UserValue("id").(string)
	note, err := h.store.Get(id)
	switch {
	case errors.Is(err, store.ErrNoteNotFound):
		_ = f.Fail(map[string]any{"id": id, "reason": "note not found"}, respond.WithStatusCode(http.StatusNotFound))
	case err != nil:
		h.logger.Error("loading note failed", zap.Error(err), logger.RequestID(middleware.RequestIDFrom(ctx)))
		_ = f.Error("could not load note", respond.WithCode("STORE_READ"))
	default:
		_ = f.Success(note)
	}
}

// @Summary Delete note
// @Tags notes
// @Router /api/v1/notes/{id} [delete]
func (h *NotesHandler) Delete(ctx *fasthttp.RequestCtx) {
	f := fasthttpx.From(ctx)

	id, _ := ctx.UserValue("id").(string)
	err := h.store.Delete(id)
	switch {
	case errors.Is(err, store.ErrNoteNotFound):
		_ = f.Fail(map[string]any{"id": id, "reason": "note not found"}, respond.WithStatusCode(http.StatusNotFound))
	case err != nil:
		h.logger.Error("deleting note failed", zap.Error(err), logger.RequestID(middleware.RequestIDFrom(ctx)))
		_ = f.Error("could not delete note", respond.WithCode("STORE_WRITE"))
	default:
		_ = f.Success(nil)
	}
}

func parseInt(value string, fallback int) int {
	if v, err := strconv.Atoi(value); err == nil {
		return v
	}
	return fallback
}
