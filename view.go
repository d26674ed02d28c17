package rove

import (
	"errors"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned when a request body is not valid JSON.
var ErrInvalidJSON = errors.New("invalid JSON")

// View provides cheap field access over a JSON request body without a
// full unmarshal. Handlers and listeners use it to peek at individual
// fields (content negotiation, type sniffing) before deciding whether to
// bind the whole payload.
type View interface {
	// HasField returns true if the path exists in the body.
	HasField(path string) bool

	// GetString returns the string value at path, or false if not found
	// or not a string.
	GetString(path string) (string, bool)

	// GetBytes returns the raw bytes at path, or false if not found.
	// For strings this includes the surrounding quotes.
	GetBytes(path string) ([]byte, bool)
}

// JSON materializes the request body and returns a View over it. The
// body is validated once; an invalid body yields ErrInvalidJSON.
func (r *Request) JSON() (View, error) {
	raw, err := r.Body()
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(raw) {
		return nil, ErrInvalidJSON
	}
	return jsonView{raw: raw}, nil
}

type jsonView struct {
	raw []byte
}

func (v jsonView) HasField(path string) bool {
	return gjson.GetBytes(v.raw, path).Exists()
}

func (v jsonView) GetString(path string) (string, bool) {
	r := gjson.GetBytes(v.raw, path)
	if !r.Exists() {
		return "", false
	}
	if r.Type != gjson.String {
		return "", false
	}
	return r.String(), true
}

func (v jsonView) GetBytes(path string) ([]byte, bool) {
	r := gjson.GetBytes(v.raw, path)
	if !r.Exists() {
		return nil, false
	}
	return []byte(r.Raw), true
}
