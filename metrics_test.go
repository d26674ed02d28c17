package rove

import (
	"context"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestInstrument(t *testing.T) {
	app := New()
	app.MustAdd(http.MethodGet, "/ok", noopHandler)

	reg := prometheus.NewRegistry()
	m, err := Instrument(app, reg)
	require.NoError(t, err)

	app.Respond(context.Background(), app.NewRequest(http.MethodGet, "/ok", "", nil, nil))
	app.Respond(context.Background(), app.NewRequest(http.MethodGet, "/ok", "", nil, nil))
	app.Respond(context.Background(), app.NewRequest(http.MethodGet, "/missing", "", nil, nil))

	require.Equal(t, 3.0, testutil.ToFloat64(m.Requests))
	require.Equal(t, 2.0, testutil.ToFloat64(m.Responses.WithLabelValues(http.MethodGet, "200")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Errors))
}

func TestInstrument_DuplicateRegistration(t *testing.T) {
	app := New()
	reg := prometheus.NewRegistry()

	_, err := Instrument(app, reg)
	require.NoError(t, err)

	_, err = Instrument(app, reg)
	require.Error(t, err)
}
