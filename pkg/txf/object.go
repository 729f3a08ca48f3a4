package txf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Object is a free-form JSON object inside a token record (state
// predicates, genesis payloads, transfer data, proof components).
// Numbers are held as json.Number so they survive a round trip unchanged.
type Object map[string]any

// UnmarshalJSON decodes a JSON object, keeping numbers as json.Number.
func (o *Object) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		*o = nil
		return nil
	}
	var m map[string]any
	if err := decodeJSON(data, &m); err != nil {
		return err
	}
	*o = m
	return nil
}

// Clone returns a deep copy of the object.
func (o Object) Clone() Object {
	if o == nil {
		return nil
	}
	return cloneValue(map[string]any(o)).(map[string]any)
}

// Object returns the nested object stored under key, or nil.
func (o Object) Object(key string) Object {
	if o == nil {
		return nil
	}
	switch v := o[key].(type) {
	case map[string]any:
		return v
	case Object:
		return v
	}
	return nil
}

// String returns the string stored under key, or "".
func (o Object) String(key string) string {
	if o == nil {
		return ""
	}
	s, _ := o[key].(string)
	return s
}

// Present reports whether key holds a non-null, non-empty value.
func (o Object) Present(key string) bool {
	if o == nil {
		return false
	}
	switch v := o[key].(type) {
	case nil:
		return false
	case string:
		return v != ""
	case map[string]any:
		return v != nil
	}
	return true
}

// cloneValue deep-copies a decoded JSON value.
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case Object:
		return map[string]any(t.Clone())
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	default:
		// string, bool, json.Number, float64, nil are immutable.
		return t
	}
}

// decodeJSON decodes data into v with UseNumber and rejects trailing data.
func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("unexpected data after JSON value")
	}
	return nil
}

// canonicalJSON marshals v with sorted object keys and without HTML
// escaping, matching what other TXF producers hash.
func canonicalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func isNull(data []byte) bool {
	return string(bytes.TrimSpace(data)) == "null"
}
