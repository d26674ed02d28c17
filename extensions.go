package rove

import (
	"context"
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"
)

// Options answers OPTIONS requests directly from a "request" listener,
// short-circuiting routing and the handler. Pair it with CORS for
// preflight support.
func Options(app *App) {
	app.Listen(EventRequest, func(ctx context.Context, e *Event) (bool, error) {
		if e.Request.Method != http.MethodOptions {
			return false, nil
		}
		e.Response.Status = http.StatusOK
		return true, nil
	})
}

// CORS adds an Access-Control-Allow-Origin header to every successful
// response. An empty origin means "*".
func CORS(app *App, origin string) {
	if origin == "" {
		origin = "*"
	}
	app.Listen(EventResponse, func(ctx context.Context, e *Event) (bool, error) {
		e.Response.Header.Set("Access-Control-Allow-Origin", origin)
		return false, nil
	})
}

// Logger logs served responses at info and pipeline failures at error.
// A nil logger uses slog.Default.
func Logger(app *App, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	app.Listen(EventResponse, func(ctx context.Context, e *Event) (bool, error) {
		logger.LogAttrs(ctx, slog.LevelInfo, "request served",
			slog.String("method", e.Request.Method),
			slog.String("path", e.Request.Path),
			slog.Int("status", e.Response.Status),
		)
		return false, nil
	})

	app.Listen(EventError, func(ctx context.Context, e *Event) (bool, error) {
		logger.LogAttrs(ctx, slog.LevelError, "request failed",
			slog.String("method", e.Request.Method),
			slog.String("path", e.Request.Path),
			slog.Any("error", e.Err),
		)
		return false, nil
	})
}

// Throttle rejects requests over the limiter's budget with 429 before
// routing happens. One limiter covers the whole app; register multiple
// apps with their own limiters for per-service budgets.
func Throttle(app *App, limiter *rate.Limiter) {
	app.Listen(EventRequest, func(ctx context.Context, e *Event) (bool, error) {
		if !limiter.Allow() {
			return false, NewHTTPError(http.StatusTooManyRequests, "")
		}
		return false, nil
	})
}
