package respond

import (
	"fmt"
	"maps"
	"net/http"
	"reflect"
	"strings"
)

// Formatter emits standardized JSON envelopes onto a single response target.
// A Formatter is bound to one request's target and one resolved Config; it
// is not safe for concurrent use and must not outlive the request that
// created it.
type Formatter struct {
	target Target
	cfg    Config
}

// New binds a Formatter to target. The Config is resolved with WithDefaults
// so envelopes never carry an empty status label. A nil target is rejected
// with ErrInvalidResponseTarget.
func New(target Target, cfg Config) (*Formatter, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: target is nil", ErrInvalidResponseTarget)
	}
	return &Formatter{target: target, cfg: cfg.WithDefaults()}, nil
}

// Bind is the loosely typed counterpart of New for callers holding a
// response object of unknown type. Values that do not implement Target are
// rejected with ErrInvalidResponseTarget.
func Bind(v any, cfg Config) (*Formatter, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: target is nil", ErrInvalidResponseTarget)
	}
	target, ok := v.(Target)
	if !ok {
		return nil, fmt.Errorf("%w: %T cannot set a status code and send JSON", ErrInvalidResponseTarget, v)
	}
	return New(target, cfg)
}

// Config returns the resolved label configuration the Formatter was bound
// with.
func (f *Formatter) Config() Config {
	if f == nil {
		return Config{}.WithDefaults()
	}
	return f.cfg
}

// Success finalizes the response with a success envelope. data must be nil
// or an object-kind value. Defaults are status code 200 and the configured
// success label; override them with WithStatusCode and WithLabel.
func (f *Formatter) Success(data any, opts ...Option) error {
	if err := f.ready(); err != nil {
		return err
	}
	return f.sendData(f.cfg.SuccessLabel, http.StatusOK, data, opts)
}

// Fail finalizes the response with a fail envelope for client-side errors.
// Same data contract as Success; defaults are status code 400 and the
// configured fail label.
func (f *Formatter) Fail(data any, opts ...Option) error {
	if err := f.ready(); err != nil {
		return err
	}
	return f.sendData(f.cfg.FailLabel, http.StatusBadRequest, data, opts)
}

// Error finalizes the response with an error envelope for server-side
// failures. message must contain at least one non-whitespace character.
// Code and details are included only when set; extra must be a
// map[string]any and is shallow-copied into the envelope. Defaults are
// status code 500 and the configured error label.
func (f *Formatter) Error(message string, opts ...Option) error {
	if err := f.ready(); err != nil {
		return err
	}
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("%w: got %q", ErrInvalidMessage, message)
	}
	o := applyOptions(opts)
	extra, err := copyExtra(o.extra)
	if err != nil {
		return err
	}
	env := ErrorEnvelope{
		Status:  o.labelOr(f.cfg.ErrorLabel),
		Message: message,
		Code:    o.code,
		Details: o.details,
		Extra:   extra,
	}
	return f.send(o.statusOr(http.StatusInternalServerError), env)
}

// InternalError is shorthand for Error with DefaultErrorMessage.
func (f *Formatter) InternalError(opts ...Option) error {
	return f.Error(DefaultErrorMessage, opts...)
}

func (f *Formatter) sendData(label string, defaultStatus int, data any, opts []Option) error {
	if err := checkDataKind(data); err != nil {
		return err
	}
	o := applyOptions(opts)
	env := Envelope{
		Status: o.labelOr(label),
		Data:   data,
	}
	return f.send(o.statusOr(defaultStatus), env)
}

// send is the single point where the target is touched. Validation has
// already passed by the time it runs, so a response is emitted exactly once
// per call.
func (f *Formatter) send(statusCode int, body any) error {
	f.target.SetStatusCode(statusCode)
	return f.target.SendJSON(body)
}

func (f *Formatter) ready() error {
	if f == nil || f.target == nil {
		return fmt.Errorf("%w: formatter is not bound to a target", ErrInvalidResponseTarget)
	}
	return nil
}

// checkDataKind enforces the object-or-nil contract for envelope data.
// Pointers are followed to the value they reference; slices and arrays are
// accepted alongside maps and structs since only top-level primitives are
// ruled out of the data slot.
func checkDataKind(data any) error {
	if data == nil {
		return nil
	}
	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array:
		return nil
	default:
		return fmt.Errorf("%w: got %T", ErrInvalidDataKind, data)
	}
}

// copyExtra validates and snapshots the extra option so later mutation of
// the caller's map cannot change an envelope that was already sent.
func copyExtra(extra any) (map[string]any, error) {
	if extra == nil {
		return nil, nil
	}
	m, ok := extra.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidExtraKind, extra)
	}
	return maps.Clone(m), nil
}
