package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

func TestIssueToken(t *testing.T) {
	h := NewTokenHandler("test-secret", "respond-demo", time.Hour, zap.NewNop())

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetBody([]byte(`{"subject":"user-1"}`))
	h.Issue(ctx)

	assert.Equal(t, http.StatusCreated, ctx.Response.StatusCode())
	status, data := decodeEnvelope(t, ctx)
	assert.Equal(t, "success", status)

	raw, ok := data["token"].(string)
	require.True(t, ok)

	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "user-1", claims["sub"])
	assert.Equal(t, "respond-demo", claims["iss"])
}

func TestIssueTokenMissingSubject(t *testing.T) {
	h := NewTokenHandler("test-secret", "respond-demo", time.Hour, zap.NewNop())

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetBody([]byte(`{}`))
	h.Issue(ctx)

	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"status":"fail","data":{"field":"subject","reason":"required"}}`, string(ctx.Response.Body()))
}

func TestIssueTokenInvalidJSON(t *testing.T) {
	h := NewTokenHandler("test-secret", "respond-demo", time.Hour, zap.NewNop())

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetBody([]byte(`subject=user-1`))
	h.Issue(ctx)

	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
}
