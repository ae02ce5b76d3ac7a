package respond

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvelopeString(t *testing.T) {
	e := Envelope{Status: "success", Data: map[string]any{"id": 1}}
	assert.JSONEq(t, `{"status":"success","data":{"id":1}}`, e.String())

	ee := ErrorEnvelope{Status: "error", Message: "boom"}
	assert.JSONEq(t, `{"status":"error","message":"boom"}`, ee.String())
}

func TestEnvelopeStringUnmarshalable(t *testing.T) {
	e := Envelope{Status: "success", Data: make(chan int)}
	assert.Equal(t, "{}", e.String())
}
