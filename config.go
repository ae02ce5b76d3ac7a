package respond

// Default status labels, applied wherever a Config leaves one empty.
const (
	DefaultSuccessLabel = "success"
	DefaultFailLabel    = "fail"
	DefaultErrorLabel   = "error"
)

// DefaultErrorMessage is the message emitted by InternalError.
const DefaultErrorMessage = "Internal Server Error"

// Config carries the default status labels a Formatter stamps on envelopes.
// The zero value is valid and resolves to the standard labels. A Config is
// resolved once when a Formatter is bound and is read-only afterwards, so a
// single value can safely serve every request.
type Config struct {
	SuccessLabel string
	FailLabel    string
	ErrorLabel   string
}

// WithDefaults returns a copy of c with empty labels replaced by the
// package defaults.
func (c Config) WithDefaults() Config {
	if c.SuccessLabel == "" {
		c.SuccessLabel = DefaultSuccessLabel
	}
	if c.FailLabel == "" {
		c.FailLabel = DefaultFailLabel
	}
	if c.ErrorLabel == "" {
		c.ErrorLabel = DefaultErrorLabel
	}
	return c
}
