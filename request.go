package rove

import (
	"io"
	"net/http"
)

// Request is the inbound message handed to the kernel by a transport
// adapter. The transport supplies the already-parsed method, path, raw
// query string, headers, and a body reader; the kernel performs no
// transport I/O of its own.
//
// A Request is created once per incoming message and is immutable after
// construction except for its lazily computed views: the body is read
// from the transport reader at most once and cached, and the query view
// is parsed at most once and cached. Header lookups are case-insensitive
// and last-write-wins, per http.Header.
type Request struct {
	Method string
	Path   string
	Header http.Header

	rawQuery   string
	bodyReader io.Reader
	parseQuery QueryParser

	bodyOnce bool
	body     []byte
	bodyErr  error

	queryOnce bool
	query     Query
	queryErr  error
}

// NewRequest constructs a Request from transport-supplied parts. A nil
// header or body reader is replaced with an empty one.
func NewRequest(method, path, rawQuery string, header http.Header, body io.Reader) *Request {
	if header == nil {
		header = http.Header{}
	}
	return &Request{
		Method:     method,
		Path:       path,
		Header:     header,
		rawQuery:   rawQuery,
		bodyReader: body,
		parseQuery: defaultQueryParser,
	}
}

// RawQuery returns the unparsed query string.
func (r *Request) RawQuery() string { return r.rawQuery }

// Body materializes the request body. The transport reader is drained on
// first call; subsequent calls return the cached bytes (or the cached
// read error). A request with no body yields an empty slice.
func (r *Request) Body() ([]byte, error) {
	if !r.bodyOnce {
		r.bodyOnce = true
		if r.bodyReader != nil {
			r.body, r.bodyErr = io.ReadAll(r.bodyReader)
		}
	}
	return r.body, r.bodyErr
}

// Query parses the raw query string on first call and caches the view.
// The view implementation comes from the application's configured
// QueryParser.
func (r *Request) Query() (Query, error) {
	if !r.queryOnce {
		r.queryOnce = true
		parse := r.parseQuery
		if parse == nil {
			parse = defaultQueryParser
		}
		r.query, r.queryErr = parse(r.rawQuery)
	}
	return r.query, r.queryErr
}
