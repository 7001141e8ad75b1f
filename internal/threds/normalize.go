package threds

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// NormalizeKeys rewrites snake_case object keys to camelCase, recursing into
// nested objects and arrays. Values that are not objects or arrays are
// returned untouched.
func NormalizeKeys(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[camelKey(k)] = NormalizeKeys(inner)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = NormalizeKeys(inner)
		}
		return out
	default:
		return v
	}
}

// camelKey uppercases every lowercase ASCII letter that follows an
// underscore and drops that underscore. Other underscores are kept.
func camelKey(key string) string {
	if !strings.Contains(key, "_") {
		return key
	}
	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c == '_' && i+1 < len(key) && key[i+1] >= 'a' && key[i+1] <= 'z' {
			b.WriteByte(key[i+1] - ('a' - 'A'))
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// decodeNormalized decodes a JSON body, normalizes its keys and decodes the
// result into dest. Numbers stay json.Number so large ids survive.
func decodeNormalized(body []byte, dest any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	normalized, err := json.Marshal(NormalizeKeys(raw))
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if err := json.Unmarshal(normalized, dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
