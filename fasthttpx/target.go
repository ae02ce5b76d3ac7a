// Package fasthttpx binds the respond toolkit to fasthttp. It adapts
// *fasthttp.RequestCtx to the respond.Target capability and installs a
// pre-configured Formatter on every request passing through its middleware.
package fasthttpx

import (
	"encoding/json"
	"fmt"

	"github.com/valyala/fasthttp"

	"github.com/fastygo/respond"
)

const contentTypeJSON = "application/json"

// target adapts *fasthttp.RequestCtx to respond.Target.
type target struct {
	ctx *fasthttp.RequestCtx
}

func (t target) SetStatusCode(statusCode int) {
	t.ctx.SetStatusCode(statusCode)
}

func (t target) SendJSON(v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	t.ctx.SetContentType(contentTypeJSON)
	t.ctx.SetBody(body)
	return nil
}

// NewFormatter binds a Formatter to the request context. A nil ctx is
// rejected with respond.ErrInvalidResponseTarget.
func NewFormatter(ctx *fasthttp.RequestCtx, cfg respond.Config) (*respond.Formatter, error) {
	if ctx == nil {
		return nil, fmt.Errorf("%w: nil fasthttp request context", respond.ErrInvalidResponseTarget)
	}
	return respond.New(target{ctx: ctx}, cfg)
}
