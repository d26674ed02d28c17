package rove

import "context"

// Built-in lifecycle event names. Applications and extensions may fire
// and listen to any other name they agree on; firing a name with no
// listeners is a no-op.
const (
	// EventRequest fires once per request, before routing. Listeners may
	// observe the request, abort dispatch by returning an error (usually
	// an *HTTPError), or answer the request themselves by mutating the
	// response and returning true.
	EventRequest = "request"

	// EventResponse fires once per request after the handler — or a
	// request listener that answered the request itself — completes
	// successfully. Listeners may mutate the response headers and body.
	EventResponse = "response"

	// EventError fires when a failure escapes route resolution, a
	// listener, or the handler. Listeners observe the failure for
	// logging or telemetry; they cannot suppress it, and their own
	// errors are swallowed.
	EventError = "error"

	// EventStartup and EventShutdown bracket the serving phase. They
	// are fired by App.Startup and App.Shutdown.
	EventStartup  = "startup"
	EventShutdown = "shutdown"
)

// Event is the payload passed to listeners. Which fields are populated
// depends on the event: "request" carries Request and Response, "response"
// carries both, "error" additionally carries Err. Application-defined
// events populate whatever they fire with.
type Event struct {
	Name     string
	Request  *Request
	Response *Response
	Err      error
}

// Listener is a callable registered against a named lifecycle event.
//
// Returning (true, nil) marks the event handled: remaining listeners for
// this firing are skipped, and for "request" the rest of dispatch is
// skipped too, with the response sent as already built. Returning a
// non-nil error also stops the firing and routes the error to the error
// mapper. Each listener runs to completion, including any suspension of
// its own, before the next one starts.
type Listener func(ctx context.Context, e *Event) (bool, error)

// hooks is the per-application event registry: an append-only mapping
// from event name to an ordered listener chain. Listeners are registered
// during configuration only; firing never mutates the registry, so no
// locking is needed once serving begins.
type hooks struct {
	listeners map[string][]Listener
}

func newHooks() *hooks {
	return &hooks{listeners: make(map[string][]Listener)}
}

func (h *hooks) listen(name string, l Listener) {
	h.listeners[name] = append(h.listeners[name], l)
}

// fire invokes every listener registered for e.Name in registration
// order. It stops early when a listener reports the event handled or
// fails. Unknown event names are a no-op.
func (h *hooks) fire(ctx context.Context, e *Event) (bool, error) {
	for _, l := range h.listeners[e.Name] {
		done, err := l(ctx, e)
		if err != nil {
			return false, err
		}
		if done {
			return true, nil
		}
	}
	return false, nil
}
