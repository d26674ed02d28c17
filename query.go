package rove

import "net/url"

// Query is a read-only view over a request's query string.
//
// Repeated keys keep multi-value semantics: Get returns the last value
// for a key (matching ordinary last-write-wins expectations) while All
// exposes every value in wire order. Applications that need derived,
// typed accessors (dates, enums) supply their own view through
// WithQueryParser instead of subclassing.
type Query interface {
	// Get returns the last value for key, or "" when absent.
	Get(key string) string

	// All returns every value for key in the order they appeared.
	All(key string) []string

	// Has reports whether key appeared in the query string at all.
	Has(key string) bool
}

// QueryParser turns a raw query string into a Query view. A parser is
// supplied once at application assembly and used for every request.
type QueryParser func(rawQuery string) (Query, error)

// defaultQueryParser parses with net/url semantics.
func defaultQueryParser(rawQuery string) (Query, error) {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return nil, err
	}
	return queryValues(values), nil
}

type queryValues url.Values

func (q queryValues) Get(key string) string {
	vs := q[key]
	if len(vs) == 0 {
		return ""
	}
	return vs[len(vs)-1]
}

func (q queryValues) All(key string) []string { return q[key] }

func (q queryValues) Has(key string) bool {
	_, ok := q[key]
	return ok
}
