package jsonx

import (
	"errors"
	"testing"
)

func TestExtractObjectWithPreamble(t *testing.T) {
	payload, err := Extract(`Sure! {"a":1}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload != `{"a":1}` {
		t.Fatalf("unexpected payload: %s", payload)
	}
}

func TestExtractArray(t *testing.T) {
	payload, err := Extract("Here you go:\n```json\n[\"a\", \"b\"]\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload != `["a", "b"]` {
		t.Fatalf("unexpected payload: %s", payload)
	}
}

func TestExtractIgnoresBracesInsideStrings(t *testing.T) {
	payload, err := Extract(`{"text":"closing } inside a string","n":2} trailing`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload != `{"text":"closing } inside a string","n":2}` {
		t.Fatalf("unexpected payload: %s", payload)
	}
}

func TestExtractNoJSON(t *testing.T) {
	_, err := Extract("I cannot answer that in JSON form.")
	var extractErr *ExtractError
	if !errors.As(err, &extractErr) {
		t.Fatalf("expected ExtractError, got %v", err)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	var out struct {
		A int `json:"a"`
	}
	if err := Decode(`Sure! {"a":1}`, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.A != 1 {
		t.Fatalf("expected a=1, got %d", out.A)
	}
}

func TestDecodeRepairsTrailingComma(t *testing.T) {
	var out []string
	if err := Decode(`["ai", "automation",]`, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 || out[0] != "ai" || out[1] != "automation" {
		t.Fatalf("unexpected result: %v", out)
	}
}

func TestDecodeNoJSONIsTyped(t *testing.T) {
	var out map[string]any
	err := Decode("no structured data here", &out)
	var extractErr *ExtractError
	if !errors.As(err, &extractErr) {
		t.Fatalf("expected ExtractError, got %v", err)
	}
}
