package respond

import "encoding/json"

// Envelope is the wire shape shared by success and fail responses. Data is
// always emitted, as JSON null when nil, so clients can rely on the key
// being present.
type Envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

// ErrorEnvelope is the wire shape for server-side error responses. Code,
// Details and Extra are emitted only when they carry a value.
type ErrorEnvelope struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Code    string         `json:"code,omitempty"`
	Details any            `json:"details,omitempty"`
	Extra   map[string]any `json:"extra,omitempty"`
}

// String returns the JSON representation of the envelope for logging.
func (e Envelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}

// String returns the JSON representation of the envelope for logging.
func (e ErrorEnvelope) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}
