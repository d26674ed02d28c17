package rove

import (
	"fmt"
	"strings"
)

// Params holds path parameters extracted from a matched route pattern,
// keyed by the parameter name declared in the pattern.
type Params map[string]string

// segment is one compiled element of a route pattern: either a literal
// that must match byte-for-byte, or a named single-segment capture.
type segment struct {
	literal string
	param   string
}

func (s segment) isParam() bool { return s.param != "" }

// compilePattern compiles a route pattern into its segment sequence.
//
// Patterns are absolute paths whose segments are separated by "/". A
// segment written as {name} captures exactly one non-empty path segment
// under that name. Everything else is a literal and matches
// case-sensitively. There is no multi-segment capture. Trailing-slash
// presence is part of the pattern: "/users" and "/users/" are distinct.
func compilePattern(pattern string) ([]segment, error) {
	if pattern == "" || pattern[0] != '/' {
		return nil, fmt.Errorf("pattern %q must begin with %q", pattern, "/")
	}

	parts := strings.Split(pattern, "/")
	segments := make([]segment, 0, len(parts))
	seen := make(map[string]struct{})

	for _, part := range parts {
		if strings.HasPrefix(part, "{") || strings.HasSuffix(part, "}") {
			name := strings.TrimSuffix(strings.TrimPrefix(part, "{"), "}")
			if len(part) < 3 || part[0] != '{' || part[len(part)-1] != '}' || strings.ContainsAny(name, "{}/") {
				return nil, fmt.Errorf("malformed parameter segment %q in pattern %q", part, pattern)
			}
			if _, dup := seen[name]; dup {
				return nil, fmt.Errorf("duplicate parameter %q in pattern %q", name, pattern)
			}
			seen[name] = struct{}{}
			segments = append(segments, segment{param: name})
			continue
		}
		if strings.ContainsAny(part, "{}") {
			return nil, fmt.Errorf("malformed segment %q in pattern %q", part, pattern)
		}
		segments = append(segments, segment{literal: part})
	}

	return segments, nil
}

// matchPath reports whether path matches the compiled segments, returning
// the captured parameters on success. Matching is positional and exact:
// the path must have the same number of segments, literals compare
// byte-for-byte, and each parameter consumes exactly one non-empty
// segment. No normalization is applied.
func matchPath(segments []segment, path string) (Params, bool) {
	parts := strings.Split(path, "/")
	if len(parts) != len(segments) {
		return nil, false
	}

	var params Params
	for i, seg := range segments {
		if seg.isParam() {
			if parts[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(Params, len(segments))
			}
			params[seg.param] = parts[i]
			continue
		}
		if parts[i] != seg.literal {
			return nil, false
		}
	}

	return params, true
}

// literalCount is the specificity score of a compiled pattern: the number
// of literal segments. More literals means a more specific route.
func literalCount(segments []segment) int {
	n := 0
	for _, seg := range segments {
		if !seg.isParam() {
			n++
		}
	}
	return n
}

// overlaps reports whether two compiled patterns could both match some
// path. That is the case when they have the same length and every
// position is either a parameter on at least one side or an equal
// literal on both.
func overlaps(a, b []segment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].isParam() || b[i].isParam() {
			continue
		}
		if a[i].literal != b[i].literal {
			return false
		}
	}
	return true
}
