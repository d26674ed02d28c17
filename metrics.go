package rove

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors installed by Instrument.
type Metrics struct {
	// Requests counts every request entering the pipeline.
	Requests prometheus.Counter

	// Responses counts successfully served responses by method and status.
	Responses *prometheus.CounterVec

	// Errors counts requests that went through the error mapper.
	Errors prometheus.Counter
}

// Instrument registers request counters with reg and wires them to the
// app's lifecycle events. It uses only the public hook contract, so it
// doubles as a reference for third-party telemetry extensions.
func Instrument(app *App, reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Requests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rove_requests_total",
			Help: "Requests entering the dispatch pipeline.",
		}),
		Responses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rove_responses_total",
			Help: "Responses served without a pipeline failure.",
		}, []string{"method", "status"}),
		Errors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rove_errors_total",
			Help: "Requests answered through the error mapper.",
		}),
	}

	for _, c := range []prometheus.Collector{m.Requests, m.Responses, m.Errors} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	app.Listen(EventRequest, func(ctx context.Context, e *Event) (bool, error) {
		m.Requests.Inc()
		return false, nil
	})
	app.Listen(EventResponse, func(ctx context.Context, e *Event) (bool, error) {
		m.Responses.WithLabelValues(e.Request.Method, strconv.Itoa(e.Response.Status)).Inc()
		return false, nil
	})
	app.Listen(EventError, func(ctx context.Context, e *Event) (bool, error) {
		m.Errors.Inc()
		return false, nil
	})

	return m, nil
}
