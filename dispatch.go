package rove

import (
	"context"
	"fmt"
)

// Respond runs the full dispatch pipeline for one request and returns the
// finished response.
//
// The pipeline fires "request" listeners, resolves the route, invokes the
// handler, then fires "response" listeners. A failure at any stage skips
// the remaining stages, fires the "error" event, and applies the error
// mapper — exactly once — so a well-formed response always comes back.
// Respond never panics across this boundary: a panicking handler or
// listener is recovered into a generic 500.
//
// The kernel's own work here is synchronous and non-blocking; suspension
// happens only inside handlers and listeners, via ctx. Cancellation is
// observed between stages: once ctx is done, no further listener or
// handler code runs for this request, with no rollback of response
// mutations already made.
func (a *App) Respond(ctx context.Context, req *Request) *Response {
	resp := NewResponse()
	if err := a.dispatch(ctx, req, resp); err != nil {
		a.handleError(ctx, req, resp, err)
	}
	return resp
}

func (a *App) dispatch(ctx context.Context, req *Request, resp *Response) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in dispatch: %v", r)
		}
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	done, err := a.hooks.fire(ctx, &Event{Name: EventRequest, Request: req, Response: resp})
	if err != nil {
		return err
	}

	// A request listener may answer the request itself, skipping routing
	// and the handler. Response listeners still run over what it built.
	if !done {
		handler, params, err := a.router.resolve(req.Method, req.Path)
		if err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}
		if err := handler(ctx, req, resp, params); err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	_, err = a.hooks.fire(ctx, &Event{Name: EventResponse, Request: req, Response: resp})
	return err
}

// handleError funnels a pipeline failure through the "error" event and
// the error mapper. The event is best-effort: a listener that fails or
// panics cannot mask the original failure or alter the decided
// status/body. The mapper's fresh body overwrites any partial output.
func (a *App) handleError(ctx context.Context, req *Request, resp *Response, failure error) {
	func() {
		defer func() { _ = recover() }()
		_, _ = a.hooks.fire(ctx, &Event{Name: EventError, Request: req, Response: resp, Err: failure})
	}()

	status, header, body := mapError(failure)
	resp.Status = status
	resp.Text(body)
	for k, vs := range header {
		resp.Header[k] = vs
	}
}
