package respond

import "errors"

// Validation faults returned by the constructors and Formatter operations.
// They are reported to the caller before anything is written to the target
// and are never themselves turned into response envelopes. Classify them
// with errors.Is.
var (
	// ErrInvalidResponseTarget reports that the value a Formatter was bound
	// to is nil or lacks the status and JSON-send capabilities.
	ErrInvalidResponseTarget = errors.New("respond: invalid response target")

	// ErrInvalidDataKind reports that data passed to Success or Fail was
	// neither nil nor an object-kind value.
	ErrInvalidDataKind = errors.New("respond: data must be nil or an object")

	// ErrInvalidMessage reports that the message passed to Error was blank.
	ErrInvalidMessage = errors.New("respond: message must contain a non-whitespace character")

	// ErrInvalidExtraKind reports that WithExtra carried a value that is not
	// a map[string]any.
	ErrInvalidExtraKind = errors.New("respond: extra must be a map[string]any")
)
