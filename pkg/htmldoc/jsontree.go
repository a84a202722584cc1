package htmldoc

import "encoding/json"

// Value is a generic view over an arbitrary JSON blob embedded in a page.
// Pages embed state objects of unknown shape, so every accessor is
// fallible instead of assuming structure.
type Value struct {
	data any
}

// DecodeJSON parses an embedded JSON blob into a Value.
func DecodeJSON(raw string) (Value, bool) {
	var data any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return Value{}, false
	}
	return Value{data: data}, true
}

// Lookup walks a chain of object keys and reports whether the full path
// exists.
func (v Value) Lookup(path ...string) (Value, bool) {
	current := v.data
	for _, key := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			return Value{}, false
		}
		current, ok = obj[key]
		if !ok {
			return Value{}, false
		}
	}
	return Value{data: current}, true
}

// AnyChild returns the value of an arbitrary key of an object. Used for
// state blobs keyed by a single unknown identifier.
func (v Value) AnyChild() (Value, bool) {
	obj, ok := v.data.(map[string]any)
	if !ok || len(obj) == 0 {
		return Value{}, false
	}
	for _, child := range obj {
		return Value{data: child}, true
	}
	return Value{}, false
}

// Str returns the value as a non-empty string.
func (v Value) Str(path ...string) (string, bool) {
	child, ok := v.Lookup(path...)
	if !ok {
		return "", false
	}
	s, ok := child.data.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
