package rove

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// HTTPError is an explicit, application-raised failure carrying its own
// HTTP status and message. Returning one from a handler or listener aborts
// the rest of the pipeline for that request; the status and message reach
// the client verbatim.
//
// Example:
//
//	func handler(ctx context.Context, req *rove.Request, resp *rove.Response, params rove.Params) error {
//	    if params["id"] == "" {
//	        return rove.NewHTTPError(http.StatusBadRequest, "missing id")
//	    }
//	    return resp.JSON(map[string]string{"id": params["id"]})
//	}
type HTTPError struct {
	Status  int
	Message string
}

// NewHTTPError creates an HTTPError. An empty message defaults to the
// standard status phrase (e.g. "Not Found" for 404).
func NewHTTPError(status int, message string) *HTTPError {
	if message == "" {
		message = http.StatusText(status)
	}
	return &HTTPError{Status: status, Message: message}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// NoRouteError is returned by route resolution when no registered pattern
// matches the request path, for any method. It maps to 404.
type NoRouteError struct {
	Path string
}

func (e *NoRouteError) Error() string {
	return fmt.Sprintf("no route for path %q", e.Path)
}

// MethodNotAllowedError is returned by route resolution when at least one
// pattern matches the request path but none is registered for the request
// method. It maps to 405 with an Allow header listing the permitted
// methods in the order the router discovered them.
type MethodNotAllowedError struct {
	Method  string
	Path    string
	Allowed []string
}

func (e *MethodNotAllowedError) Error() string {
	return fmt.Sprintf("method %s not allowed for path %q (allow: %s)", e.Method, e.Path, strings.Join(e.Allowed, ", "))
}

// mapError converts a pipeline failure into a final status, extra headers,
// and body. It runs exactly once per failed request and never fails itself.
// Unexpected errors collapse to a generic 500 so internal detail never
// reaches the client; the original error still reaches "error" listeners.
func mapError(err error) (status int, header http.Header, body string) {
	var herr *HTTPError
	if errors.As(err, &herr) {
		return herr.Status, nil, herr.Message
	}

	var nre *NoRouteError
	if errors.As(err, &nre) {
		return http.StatusNotFound, nil, nre.Path
	}

	var mna *MethodNotAllowedError
	if errors.As(err, &mna) {
		h := http.Header{}
		h.Set("Allow", strings.Join(mna.Allowed, ", "))
		return http.StatusMethodNotAllowed, h, http.StatusText(http.StatusMethodNotAllowed)
	}

	return http.StatusInternalServerError, nil, http.StatusText(http.StatusInternalServerError)
}
