// Package httpx binds the respond toolkit to net/http. It adapts
// http.ResponseWriter to the respond.Target capability and installs a
// pre-configured Formatter on every request passing through its middleware.
package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fastygo/respond"
)

// target adapts http.ResponseWriter to respond.Target. The status code is
// held until SendJSON because net/http freezes headers once WriteHeader has
// been called, and the Content-Type header still has to go out first.
type target struct {
	w          http.ResponseWriter
	statusCode int
}

func (t *target) SetStatusCode(statusCode int) {
	t.statusCode = statusCode
}

func (t *target) SendJSON(v any) error {
	t.w.Header().Set("Content-Type", "application/json")
	code := t.statusCode
	if code == 0 {
		code = http.StatusOK
	}
	t.w.WriteHeader(code)
	return json.NewEncoder(t.w).Encode(v)
}

// NewFormatter binds a Formatter to w. A nil writer is rejected with
// respond.ErrInvalidResponseTarget.
func NewFormatter(w http.ResponseWriter, cfg respond.Config) (*respond.Formatter, error) {
	if w == nil {
		return nil, fmt.Errorf("%w: nil response writer", respond.ErrInvalidResponseTarget)
	}
	return respond.New(&target{w: w}, cfg)
}
