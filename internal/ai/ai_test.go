package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRequestValidate(t *testing.T) {
	cases := []struct {
		req Request
		ok  bool
	}{
		{Request{Name: "Acme", Industry: "Logistics"}, true},
		{Request{Name: "Acme"}, false},
		{Request{Industry: "Logistics"}, false},
		{Request{Name: "  ", Industry: "Logistics"}, false},
	}
	for _, tc := range cases {
		err := tc.req.Validate()
		if tc.ok != (err == nil) {
			t.Errorf("%+v: unexpected error %v", tc.req, err)
		}
		if err != nil && !errors.Is(err, ErrMissingInput) {
			t.Errorf("expected ErrMissingInput, got %v", err)
		}
	}
}

func TestProfilePrompt(t *testing.T) {
	p := profilePrompt(Request{Name: "Acme", Industry: "Logistics"})
	if !strings.Contains(p, `"Acme"`) || !strings.Contains(p, `"Logistics"`) {
		t.Errorf("prompt missing inputs: %s", p)
	}
	if strings.Contains(p, "Indonesian") {
		t.Error("English prompt should not ask for another language")
	}
	if p := profilePrompt(Request{Name: "A", Industry: "B", Language: "id-ID"}); !strings.Contains(p, "Indonesian") {
		t.Errorf("expected Indonesian instruction: %s", p)
	}
}

func TestParseContent(t *testing.T) {
	g, err := parseContent(`{"about":"a","vision":"v","mission":"m"}`)
	if err != nil {
		t.Fatal(err)
	}
	if g.About != "a" || g.Vision != "v" || g.Mission != "m" {
		t.Errorf("unexpected content %+v", g)
	}
	if _, err := parseContent(""); !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("expected ErrEmptyResponse, got %v", err)
	}
	if _, err := parseContent(`{"about":"a"}`); !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("partial answers must be rejected, got %v", err)
	}
	if _, err := parseContent("not json"); err == nil {
		t.Error("expected decode error")
	}
}

func TestNewGeminiGenerator_RequiresKey(t *testing.T) {
	if _, err := NewGeminiGenerator(context.Background(), "", ""); !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("expected ErrNoAPIKey, got %v", err)
	}
}
