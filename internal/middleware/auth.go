package middleware

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/respond"
	"github.com/fastygo/respond/fasthttpx"
	"github.com/fastygo/respond/pkg/logger"
)

const subjectKey = "auth_subject"

// BearerAuth verifies the Authorization bearer token and rejects the request
// with a fail envelope when it is missing or invalid. The token subject is
// exposed to handlers via SubjectFrom.
func BearerAuth(secret string, log *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			raw := extractToken(ctx)
			if raw == "" {
				reject(ctx, "missing bearer token")
				return
			}

			token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				log.Warn("invalid bearer token", zap.Error(err), logger.RequestID(RequestIDFrom(ctx)))
				reject(ctx, "invalid bearer token")
				return
			}

			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if sub, ok := claims["sub"].(string); ok {
					ctx.SetUserValue(subjectKey, sub)
				}
			}

			next(ctx)
		}
	}
}

// SubjectFrom returns the token subject stored by BearerAuth, or "".
func SubjectFrom(ctx *fasthttp.RequestCtx) string {
	sub, _ := ctx.UserValue(subjectKey).(string)
	return sub
}

func reject(ctx *fasthttp.RequestCtx, reason string) {
	_ = fasthttpx.From(ctx).Fail(
		map[string]any{"reason": reason},
		respond.WithStatusCode(fasthttp.StatusUnauthorized),
	)
}

func extractToken(ctx *fasthttp.RequestCtx) string {
	header := string(ctx.Request.Header.Peek("Authorization"))
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
