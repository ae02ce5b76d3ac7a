package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/respond"
	"github.com/fastygo/respond/fasthttpx"
	"github.com/fastygo/respond/internal/middleware"
	"github.com/fastygo/respond/pkg/logger"
)

type tokenRequest struct {
	Subject string `json:"subject"`
}

// TokenHandler issues bearer tokens for the protected endpoints.
type TokenHandler struct {
	secret string
	issuer string
	ttl    time.Duration
	logger *zap.Logger
}

// NewTokenHandler wires the handler to the signing secret and token policy.
func NewTokenHandler(secret, issuer string, ttl time.Duration, log *zap.Logger) *TokenHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &TokenHandler{secret: secret, issuer: issuer, ttl: ttl, logger: log}
}

// @Summary Issue token
// @Tags auth
// @Router /api/v1/token [post]
func (h *TokenHandler) Issue(ctx *fasthttp.RequestCtx) {
	f := fasthttpx.From(ctx)

	var req tokenRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		_ = f.Fail(map[string]any{"reason": "invalid JSON payload"})
		return
	}
	if strings.TrimSpace(req.Subject) == "" {
		_ = f.Fail(map[string]any{"field": "subject", "reason": "required"})
		return
	}

	expiresAt := time.Now().Add(h.ttl)
	claims := jwt.MapClaims{
		"sub": req.Subject,
		"iss": h.issuer,
		"iat": time.Now().Unix(),
		"exp": expiresAt.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.secret))
	if err != nil {
		h.logger.Error("signing token failed", zap.Error(err), logger.RequestID(middleware.RequestIDFrom(ctx)))
		_ = f.Error("could not issue token", respond.WithCode("TOKEN_SIGN"))
		return
	}

	_ = f.Success(map[string]any{
		"token":      signed,
		"expires_at": expiresAt.UTC().Format(time.RFC3339),
	}, respond.WithStatusCode(http.StatusCreated))
}
