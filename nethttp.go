package rove

import (
	"context"
	"net/http"
	"strconv"
)

// ServeHTTP adapts the kernel to net/http, making App usable anywhere an
// http.Handler is: the standard library server, httptest, or an outer
// mux. The adapter builds the kernel Request from the parsed *http.Request,
// runs the pipeline, and serializes the finished Response. Client
// disconnects surface through the request context.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := a.NewRequest(r.Method, r.URL.Path, r.URL.RawQuery, r.Header, r.Body)
	resp := a.Respond(r.Context(), req)

	header := w.Header()
	for k, vs := range resp.Header {
		header[k] = vs
	}
	if header.Get("Content-Length") == "" {
		header.Set("Content-Length", strconv.Itoa(len(resp.Body)))
	}
	w.WriteHeader(resp.Status)
	_, _ = w.Write(resp.Body)
}

// ListenAndServe serves the app on addr with the standard library server,
// firing "startup" before accepting traffic and "shutdown" on the way
// out. Timeout and TLS policy belong to the caller; build an http.Server
// around the App directly when you need them.
func (a *App) ListenAndServe(addr string) error {
	ctx := context.Background()
	if err := a.Startup(ctx); err != nil {
		return err
	}
	defer func() { _ = a.Shutdown(ctx) }()

	srv := &http.Server{Addr: addr, Handler: a}
	return srv.ListenAndServe()
}
