package rove

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func newFastHTTPCtx(method, uri, body string) *fasthttp.RequestCtx {
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(uri)
	if body != "" {
		req.SetBodyString(body)
	}

	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	return ctx
}

func TestFastHTTPHandler(t *testing.T) {
	app := New()
	app.MustAdd(http.MethodGet, "/hello/{name}", func(ctx context.Context, req *Request, resp *Response, params Params) error {
		return resp.JSON(map[string]string{"hello": params["name"]})
	})
	app.MustAdd(http.MethodPost, "/echo", func(ctx context.Context, req *Request, resp *Response, params Params) error {
		body, err := req.Body()
		if err != nil {
			return err
		}
		resp.Text(string(body))
		return nil
	})

	handler := FastHTTPHandler(app)

	t.Run("serves a matched route", func(t *testing.T) {
		ctx := newFastHTTPCtx(http.MethodGet, "/hello/world", "")

		handler(ctx)

		require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
		require.Equal(t, ContentTypeJSON, string(ctx.Response.Header.ContentType()))
		require.JSONEq(t, `{"hello":"world"}`, string(ctx.Response.Body()))
	})

	t.Run("passes the body through", func(t *testing.T) {
		ctx := newFastHTTPCtx(http.MethodPost, "/echo", "ping")

		handler(ctx)

		require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
		require.Equal(t, "ping", string(ctx.Response.Body()))
	})

	t.Run("passes the query string through", func(t *testing.T) {
		app := New()
		app.MustAdd(http.MethodGet, "/search", func(ctx context.Context, req *Request, resp *Response, params Params) error {
			q, err := req.Query()
			if err != nil {
				return err
			}
			resp.Text(q.Get("q"))
			return nil
		})

		ctx := newFastHTTPCtx(http.MethodGet, "/search?q=kernels", "")
		FastHTTPHandler(app)(ctx)

		require.Equal(t, "kernels", string(ctx.Response.Body()))
	})

	t.Run("maps routing failures", func(t *testing.T) {
		ctx := newFastHTTPCtx(http.MethodGet, "/echo", "")

		handler(ctx)

		require.Equal(t, http.StatusMethodNotAllowed, ctx.Response.StatusCode())
		require.Equal(t, "POST", string(ctx.Response.Header.Peek("Allow")))
	})
}
