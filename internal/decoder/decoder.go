package decoder

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Common payload paths. Backend wraps some payloads into "data" envelope and returns others bare.
const (
	// Root is the whole document.
	Root = "@this"
	// Data is the "data" envelope.
	Data = "data"
)

// Decoder decodes JSON response bodies into typed payloads.
type Decoder struct{}

// Decode decodes value at first existing, non-null path of body into out.
// When none of paths exists, out is left untouched, so missing payloads decode as empty ones.
// Paths use gjson syntax. Without paths whole document is decoded.
func (d Decoder) Decode(endpoint string, body []byte, out any, paths ...string) error {
	if !gjson.ValidBytes(body) {
		return &MalformedResponseError{Endpoint: endpoint, Err: ErrInvalidJSON}
	}

	if len(paths) == 0 {
		paths = []string{Root}
	}

	document := gjson.ParseBytes(body)
	for _, path := range paths {
		value := document.Get(path)
		if !value.Exists() || value.Type == gjson.Null {
			continue
		}

		if err := json.Unmarshal([]byte(value.Raw), out); err != nil {
			return &MalformedResponseError{Endpoint: endpoint, Err: err}
		}

		return nil
	}

	return nil
}

// Elements returns elements of array at first existing, non-null path of body.
// Elements are not decoded, so single malformed records can be handled by caller.
// Missing payload returns no elements.
func (d Decoder) Elements(endpoint string, body []byte, paths ...string) ([]gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return nil, &MalformedResponseError{Endpoint: endpoint, Err: ErrInvalidJSON}
	}

	if len(paths) == 0 {
		paths = []string{Root}
	}

	document := gjson.ParseBytes(body)
	for _, path := range paths {
		value := document.Get(path)
		if !value.Exists() || value.Type == gjson.Null {
			continue
		}

		if !value.IsArray() {
			return nil, &MalformedResponseError{Endpoint: endpoint, Err: ErrNotArray}
		}

		return value.Array(), nil
	}

	return nil, nil
}

// Message returns error message sent by backend in "message" or "error" field, or body itself when it's a JSON string.
func (d Decoder) Message(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}

	document := gjson.ParseBytes(body)
	if document.Type == gjson.String {
		return document.String()
	}

	for _, path := range []string{"message", "error", "error.message"} {
		if value := document.Get(path); value.Type == gjson.String && value.String() != "" {
			return value.String()
		}
	}

	return ""
}
