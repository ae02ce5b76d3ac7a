package respond

// Target is the minimal capability a response object must expose for a
// Formatter to finalize a response: record a status code, then send a JSON
// body. Framework response types are adapted to it at the boundary; see the
// fasthttpx and httpx subpackages for the bundled adapters.
type Target interface {
	// SetStatusCode records the HTTP status code for the response.
	SetStatusCode(statusCode int)

	// SendJSON emits v as the JSON response body. Implementations own the
	// Content-Type header and whatever write ordering their framework
	// requires.
	SendJSON(v any) error
}
