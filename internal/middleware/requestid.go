package middleware

import (
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

// HeaderRequestID is the header the request ID is read from and echoed to.
const HeaderRequestID = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID assigns every request an ID, reusing the client-provided header
// when present, and echoes it on the response.
func RequestID() func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			id := string(ctx.Request.Header.Peek(HeaderRequestID))
			if id == "" {
				id = uuid.NewString()
			}
			ctx.SetUserValue(requestIDKey, id)
			ctx.Response.Header.Set(HeaderRequestID, id)
			next(ctx)
		}
	}
}

// RequestIDFrom returns the request ID assigned by RequestID, or "".
func RequestIDFrom(ctx *fasthttp.RequestCtx) string {
	id, _ := ctx.UserValue(requestIDKey).(string)
	return id
}
