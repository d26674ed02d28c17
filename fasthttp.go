package rove

import (
	"bytes"
	"net/http"

	"github.com/valyala/fasthttp"
)

// FastHTTPHandler adapts the kernel to fasthttp for deployments already
// standardized on it. The adapter copies the parsed request into the
// kernel's model, runs the pipeline, and writes the finished response
// back onto the RequestCtx. The RequestCtx doubles as the pipeline
// context, so fasthttp-level cancellation stops dispatch at the next
// stage boundary.
func FastHTTPHandler(app *App) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		header := http.Header{}
		ctx.Request.Header.VisitAll(func(k, v []byte) {
			header.Add(string(k), string(v))
		})

		req := app.NewRequest(
			string(ctx.Method()),
			string(ctx.Path()),
			string(ctx.URI().QueryString()),
			header,
			bytes.NewReader(ctx.PostBody()),
		)

		resp := app.Respond(ctx, req)

		ctx.SetStatusCode(resp.Status)
		for k, vs := range resp.Header {
			for i, v := range vs {
				if i == 0 {
					ctx.Response.Header.Set(k, v)
				} else {
					ctx.Response.Header.Add(k, v)
				}
			}
		}
		ctx.SetBody(resp.Body)
	}
}
