// Package respond builds and emits standardized JSON response envelopes for
// HTTP handlers.
//
// Every response falls into one of three cases: success and fail share the
// {status, data} shape, while error carries {status, message} plus optional
// code, details and extra fields. A Formatter is bound per request to a
// response Target and to a Config of default status labels; handler code then
// finalizes the response with a single Success, Fail or Error call.
//
// The package is framework-agnostic: anything implementing Target can be
// written to. The fasthttpx and httpx subpackages adapt fasthttp and net/http
// response objects and install pre-configured Formatters per request, so
// handlers only ever deal with the three envelope operations.
package respond
