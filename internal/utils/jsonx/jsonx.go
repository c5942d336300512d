// Package jsonx extracts JSON payloads from LLM responses. Models routinely
// wrap the requested JSON in prose or code fences, so callers hand the raw
// completion text to Decode and get back the first balanced object or array.
package jsonx

import (
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
)

// ExtractError reports that no parseable JSON payload was present in the input.
type ExtractError struct {
	Reason string
	Err    error
}

func (e *ExtractError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("jsonx: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("jsonx: %s", e.Reason)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

// Extract returns the first balanced {...} or [...] substring of raw.
// Brackets inside JSON strings are ignored.
func Extract(raw string) (string, error) {
	start := -1
	var open, close byte
	for i := 0; i < len(raw); i++ {
		if raw[i] == '{' {
			start, open, close = i, '{', '}'
			break
		}
		if raw[i] == '[' {
			start, open, close = i, '[', ']'
			break
		}
	}
	if start < 0 {
		return "", &ExtractError{Reason: "no JSON object or array found"}
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return raw[start : i+1], nil
			}
		}
	}

	return "", &ExtractError{Reason: "unbalanced JSON payload"}
}

// Decode extracts the first JSON payload from raw and unmarshals it into v.
// Malformed payloads are run through jsonrepair before giving up, which
// recovers the usual LLM mistakes (trailing commas, single quotes, truncated
// closers).
func Decode(raw string, v any) error {
	payload, err := Extract(raw)
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(payload), v); err == nil {
		return nil
	}

	repaired, err := jsonrepair.JSONRepair(payload)
	if err != nil {
		return &ExtractError{Reason: "payload could not be repaired", Err: err}
	}
	if err := json.Unmarshal([]byte(repaired), v); err != nil {
		return &ExtractError{Reason: "repaired payload is not valid JSON", Err: err}
	}
	return nil
}
