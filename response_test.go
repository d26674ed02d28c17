package rove

import (
	"encoding/json"
	"net/http"
	"reflect"
	"testing"
)

func TestResponse_Defaults(t *testing.T) {
	resp := NewResponse()

	if resp.Status != http.StatusOK {
		t.Errorf("Status = %d, want %d", resp.Status, http.StatusOK)
	}
	if len(resp.Header) != 0 {
		t.Errorf("Header = %v, want empty", resp.Header)
	}
	if len(resp.Body) != 0 {
		t.Errorf("Body = %q, want empty", resp.Body)
	}
}

func TestResponse_JSON(t *testing.T) {
	t.Run("round-trips a mapping", func(t *testing.T) {
		resp := NewResponse()
		if err := resp.JSON(map[string]string{"hello": "world"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := resp.Header.Get("Content-Type"); got != ContentTypeJSON {
			t.Errorf("Content-Type = %q, want %q", got, ContentTypeJSON)
		}

		var decoded map[string]string
		if err := json.Unmarshal(resp.Body, &decoded); err != nil {
			t.Fatalf("body is not valid JSON: %v", err)
		}
		if !reflect.DeepEqual(decoded, map[string]string{"hello": "world"}) {
			t.Errorf("decoded = %v, want map[hello:world]", decoded)
		}
	})

	t.Run("unserializable value leaves response untouched", func(t *testing.T) {
		resp := NewResponse()
		if err := resp.JSON(make(chan int)); err == nil {
			t.Fatal("expected error, got nil")
		}
		if len(resp.Body) != 0 {
			t.Errorf("Body = %q, want empty after failed JSON", resp.Body)
		}
		if resp.Header.Get("Content-Type") != "" {
			t.Error("Content-Type must not be set after failed JSON")
		}
	})

	t.Run("later writes win", func(t *testing.T) {
		resp := NewResponse()
		if err := resp.JSON(map[string]int{"n": 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		resp.Text("plain now")

		if string(resp.Body) != "plain now" {
			t.Errorf("Body = %q, want %q", resp.Body, "plain now")
		}
		if got := resp.Header.Get("Content-Type"); got != contentTypeText {
			t.Errorf("Content-Type = %q, want %q", got, contentTypeText)
		}
	})
}
