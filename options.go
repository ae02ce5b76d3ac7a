package respond

// callOptions collects the per-call overrides resolved by each operation.
type callOptions struct {
	statusCode int
	label      string
	code       string
	details    any
	extra      any
}

// Option overrides one per-call default of a Formatter operation.
type Option func(*callOptions)

// WithStatusCode overrides the operation's default HTTP status code.
func WithStatusCode(statusCode int) Option {
	return func(o *callOptions) { o.statusCode = statusCode }
}

// WithLabel overrides the configured status label for a single call. An
// empty label is ignored so envelopes never carry a blank status.
func WithLabel(label string) Option {
	return func(o *callOptions) { o.label = label }
}

// WithCode attaches a machine-readable error code to an Error envelope.
// Success and Fail ignore it.
func WithCode(code string) Option {
	return func(o *callOptions) { o.code = code }
}

// WithDetails attaches diagnostic details to an Error envelope. Success and
// Fail ignore it.
func WithDetails(details any) Option {
	return func(o *callOptions) { o.details = details }
}

// WithExtra attaches extension fields to an Error envelope. The value must
// be a map[string]any; it is shallow-copied before emission, so the caller
// may keep mutating the original map. Success and Fail ignore it.
func WithExtra(extra any) Option {
	return func(o *callOptions) { o.extra = extra }
}

func applyOptions(opts []Option) callOptions {
	var o callOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o callOptions) statusOr(fallback int) int {
	if o.statusCode != 0 {
		return o.statusCode
	}
	return fallback
}

func (o callOptions) labelOr(configured string) string {
	if o.label != "" {
		return o.label
	}
	return configured
}
