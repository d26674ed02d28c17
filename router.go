package rove

import (
	"context"
	"fmt"
	"strings"
)

// MethodAny registers a route for every HTTP method. Wildcard routes win
// for any verb and therefore never produce 405s on their own.
const MethodAny = "*"

// Handler is application code invoked for a matched route. It reads from
// req, produces its result by mutating resp, and reports failure through
// the returned error. Returning an *HTTPError sets the response status and
// body verbatim; any other error becomes a generic 500.
type Handler func(ctx context.Context, req *Request, resp *Response, params Params) error

// route is one registered (method, pattern) binding.
type route struct {
	method   string
	pattern  string
	segments []segment
	literals int
	handler  Handler
}

// router owns the registered route table and resolves (method, path)
// pairs against it. Registration happens during application configuration;
// resolution is a pure, lock-free read thereafter.
type router struct {
	routes []*route
}

// add registers a handler under a method and pattern. It fails when the
// pattern does not compile or when the new route is ambiguous with an
// existing one: same method (or a wildcard on either side), shapes that
// can match the same path, and equal specificity. Routes that overlap at
// different specificity are fine; the more literal pattern wins at
// resolution time.
func (r *router) add(method, pattern string, handler Handler) error {
	if handler == nil {
		return fmt.Errorf("nil handler for %s %s", method, pattern)
	}
	method = strings.ToUpper(method)

	segments, err := compilePattern(pattern)
	if err != nil {
		return err
	}

	rt := &route{
		method:   method,
		pattern:  pattern,
		segments: segments,
		literals: literalCount(segments),
		handler:  handler,
	}

	for _, existing := range r.routes {
		if existing.method != method && existing.method != MethodAny && method != MethodAny {
			continue
		}
		if overlaps(existing.segments, rt.segments) && existing.literals == rt.literals {
			return fmt.Errorf("route %s %s is ambiguous with %s %s", method, pattern, existing.method, existing.pattern)
		}
	}

	r.routes = append(r.routes, rt)
	return nil
}

// resolve finds the handler for a (method, path) pair.
//
// Among routes whose pattern matches the path, the one with the most
// literal segments wins; specificity ties fall back to registration order
// (add-time checks make same-method ties impossible). When patterns match
// the path only under other methods, resolve returns a
// *MethodNotAllowedError carrying those methods in registration order.
// When nothing matches at all it returns a *NoRouteError. The function has
// no side effects and is idempotent for an unchanged table.
func (r *router) resolve(method, path string) (Handler, Params, error) {
	method = strings.ToUpper(method)

	var (
		best       *route
		bestParams Params
		allowed    []string
		matched    bool
	)

	for _, rt := range r.routes {
		params, ok := matchPath(rt.segments, path)
		if !ok {
			continue
		}
		matched = true

		if rt.method != MethodAny && !containsMethod(allowed, rt.method) {
			allowed = append(allowed, rt.method)
		}
		if rt.method != MethodAny && rt.method != method {
			continue
		}
		if best == nil || rt.literals > best.literals {
			best, bestParams = rt, params
		}
	}

	switch {
	case best != nil:
		return best.handler, bestParams, nil
	case matched:
		return nil, nil, &MethodNotAllowedError{Method: method, Path: path, Allowed: allowed}
	default:
		return nil, nil, &NoRouteError{Path: path}
	}
}

func containsMethod(methods []string, method string) bool {
	for _, m := range methods {
		if m == method {
			return true
		}
	}
	return false
}
