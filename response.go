package rove

import (
	"encoding/json"
	"net/http"
)

// ContentTypeJSON is the Content-Type set by the JSON shortcut.
const ContentTypeJSON = "application/json; charset=utf-8"

// contentTypeText is the Content-Type used for plain-text and error bodies.
const contentTypeText = "text/plain; charset=utf-8"

// Response is the outbound message built incrementally by listeners and
// handlers and handed back to the transport for serialization. It is
// mutable throughout the pipeline; writes follow ordinary last-write-wins
// semantics with no reconciliation.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// NewResponse returns the default response: status 200, empty headers,
// empty body.
func NewResponse() *Response {
	return &Response{
		Status: http.StatusOK,
		Header: http.Header{},
	}
}

// JSON serializes v and installs it as the response body, setting
// Content-Type to "application/json; charset=utf-8". The serialization,
// body write, and header write happen as one assignment: a later manual
// write to Body or Content-Type simply overwrites the relevant part.
func (r *Response) JSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	r.Body = b
	r.Header.Set("Content-Type", ContentTypeJSON)
	return nil
}

// Text installs s as a plain-text body.
func (r *Response) Text(s string) {
	r.Body = []byte(s)
	r.Header.Set("Content-Type", contentTypeText)
}
