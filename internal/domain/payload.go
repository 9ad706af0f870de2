package domain

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Payload is a decoded provider object. Its schema belongs to the provider,
// so fields are read by key and missing keys are tolerated.
type Payload map[string]any

// Value returns the value under key when it is present and truthy
func (p Payload) Value(key string) (any, bool) {
	v, ok := p[key]
	if !ok || !Truthy(v) {
		return nil, false
	}
	return v, true
}

// Text renders the value under key, or fallback when it is absent or falsy
func (p Payload) Text(key, fallback string) string {
	v, ok := p.Value(key)
	if !ok {
		return fallback
	}
	return Render(v)
}

// Object returns the nested object under key, or nil
func (p Payload) Object(key string) Payload {
	v, ok := p.Value(key)
	if !ok {
		return nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return Payload(obj)
}

// First returns the first element of the sequence under key when that
// element is an object, or nil.
func (p Payload) First(key string) Payload {
	v, ok := p.Value(key)
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return nil
	}
	obj, ok := items[0].(map[string]any)
	if !ok {
		return nil
	}
	return Payload(obj)
}

// Truthy reports whether v counts as a present value.
// nil, "", false, numeric zero and empty collections do not.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case json.Number:
		f, err := strconv.ParseFloat(t.String(), 64)
		return err != nil || f != 0
	case float64:
		return t != 0
	case float32:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case map[string]any:
		return len(t) > 0
	case []any:
		return len(t) > 0
	default:
		return true
	}
}

// Render formats a decoded JSON value for display
func Render(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case map[string]any, []any:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}
