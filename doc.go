// Package rove is the dispatch kernel of a minimal asynchronous HTTP
// micro-framework: it turns an incoming request into a matched handler
// invocation, runs lifecycle listeners around that invocation, and turns
// the handler's result — or any failure — into a well-formed response,
// exactly once per request.
//
// # Quick Start
//
// Register routes against an App and serve it:
//
//	app := rove.New()
//
//	app.MustAdd(http.MethodGet, "/hello/{name}", func(ctx context.Context, req *rove.Request, resp *rove.Response, params rove.Params) error {
//	    return resp.JSON(map[string]string{"hello": params["name"]})
//	})
//
//	log.Fatal(app.ListenAndServe(":3579"))
//
// # Routing
//
// Patterns are absolute paths whose segments are either literals or
// single-segment captures written {name}:
//
//	app.MustAdd(http.MethodGet, "/users/{id}", showUser)
//	app.MustAdd(http.MethodGet, "/users/me", showSelf)
//
// Literal segments match byte-for-byte and case-sensitively; trailing
// slashes are significant; there are no multi-segment wildcards, which
// keeps matching linear in the number of segments. When several patterns
// match a path, the one with more literal segments wins: /users/me above
// resolves to showSelf, never to showUser. Patterns that could tie are
// rejected at registration time, so resolution is always deterministic.
//
// A path matched only under other methods yields a 405 with an Allow
// header; a path matched by nothing yields a 404. MethodAny ("*")
// registers a handler for every verb.
//
// # Handlers
//
// Handlers receive the request, the mutable response, and the captured
// path parameters, and report failure through their error return:
//
//	func show(ctx context.Context, req *rove.Request, resp *rove.Response, params rove.Params) error {
//	    if params["id"] == "gone" {
//	        return rove.NewHTTPError(http.StatusNotFound, "")
//	    }
//	    return resp.JSON(map[string]string{"id": params["id"]})
//	}
//
// Response.JSON serializes the value, installs the body, and sets
// Content-Type in one assignment. Handlers may suspend on I/O through
// ctx; the pipeline waits for the invocation to finish.
//
// # Events
//
// Listeners observe and extend the pipeline without the kernel knowing
// about them. Built-in events are "request" (before routing), "response"
// (after the request was answered without failure, whether by the
// handler or by a request listener), and "error" (when a failure is
// being mapped); extensions may fire any other name through App.Fire,
// and a name without listeners is a no-op.
//
//	app.Listen(rove.EventResponse, func(ctx context.Context, e *rove.Event) (bool, error) {
//	    e.Response.Header.Set("Server", "rove")
//	    return false, nil
//	})
//
// Listeners for one event run strictly in registration order, each to
// completion before the next. A "request" listener can abort dispatch by
// returning an error or answer the request itself by mutating the
// response and returning true. "error" listeners are best-effort: their
// own failures are swallowed and never change the already-decided
// status and body.
//
// # Error Model
//
// Every failure funnels to one place. An *HTTPError keeps its status and
// message verbatim; route resolution failures map to 404 and 405; any
// other error — including a recovered panic — becomes a generic 500
// whose internal detail reaches "error" listeners but never the client.
// The mapper writes a fresh plain-text body, discarding partial output,
// and runs exactly once per failed request.
//
// # Transports
//
// The kernel performs no socket I/O. App implements http.Handler for the
// standard library, and FastHTTPHandler adapts it to fasthttp; both build
// the kernel Request, call App.Respond, and serialize the finished
// Response. Any other transport can do the same.
//
// # Thread Safety
//
// Configure, then serve: Add and Listen must finish before traffic
// starts. After that the route table and event registry are read-only
// and App is safe for concurrent use without locks. Requests are
// independent; the kernel imposes no timeout of its own.
package rove
