package rove

import (
	"context"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// App is the application context: it owns the route table, the event
// registry, and the configuration-time strategies (query parsing, payload
// validation) shared by every request.
//
// Usage:
//  1. Create an app with New
//  2. Register routes with Add (or MustAdd) and listeners with Listen
//  3. Hand requests to Respond, directly or through a transport adapter
//
// App is safe for concurrent use once configuration is complete. Do not
// call Add or Listen after serving begins.
type App struct {
	router     *router
	hooks      *hooks
	queryParse QueryParser
	validate   *validator.Validate
}

// Option configures an App at assembly time.
type Option func(*App)

// New creates an App with the given options.
//
// Example:
//
//	app := rove.New(
//	    rove.WithQueryParser(myTypedQueryParser),
//	)
//	app.MustAdd(http.MethodGet, "/hello/{name}", hello)
func New(opts ...Option) *App {
	a := &App{
		router:     &router{},
		hooks:      newHooks(),
		queryParse: defaultQueryParser,
		validate:   validator.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// WithQueryParser replaces the default query-string parser. Use this to
// install a view with derived, typed accessors.
func WithQueryParser(p QueryParser) Option {
	return func(a *App) {
		a.queryParse = p
	}
}

// WithValidator replaces the validator instance used by Bind.
func WithValidator(v *validator.Validate) Option {
	return func(a *App) {
		a.validate = v
	}
}

// Add registers a handler for a method and pattern. Pattern syntax and
// the ambiguity rules are described on compilePattern and router.add.
// Registration errors are configuration bugs and should be treated as
// fatal at startup.
func (a *App) Add(method, pattern string, handler Handler) error {
	return a.router.add(method, pattern, handler)
}

// MustAdd is Add for static route tables; it panics on registration error.
func (a *App) MustAdd(method, pattern string, handler Handler) {
	if err := a.Add(method, pattern, handler); err != nil {
		panic(err)
	}
}

// Listen appends a listener to the chain for a named event. Listeners
// fire in registration order. Registration must finish before serving
// begins; the registry is read-only afterwards.
func (a *App) Listen(name string, l Listener) {
	a.hooks.listen(name, l)
}

// Fire invokes the listeners registered for e.Name in order. It reports
// whether a listener marked the event handled, and surfaces the first
// listener error. Extensions use this for application-defined events;
// firing a name nobody listens to is a no-op.
func (a *App) Fire(ctx context.Context, e *Event) (bool, error) {
	return a.hooks.fire(ctx, e)
}

// Startup fires the "startup" event. Transport adapters call it before
// accepting traffic.
func (a *App) Startup(ctx context.Context) error {
	_, err := a.hooks.fire(ctx, &Event{Name: EventStartup})
	return err
}

// Shutdown fires the "shutdown" event.
func (a *App) Shutdown(ctx context.Context) error {
	_, err := a.hooks.fire(ctx, &Event{Name: EventShutdown})
	return err
}

// NewRequest builds a Request wired to this app's configured query
// parser. Transport adapters use it; tests can too.
func (a *App) NewRequest(method, path, rawQuery string, header http.Header, body io.Reader) *Request {
	req := NewRequest(method, path, rawQuery, header, body)
	req.parseQuery = a.queryParse
	return req
}
