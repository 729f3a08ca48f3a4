package txf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// rawFields splits a JSON object into its members, undecoded.
func rawFields(data []byte) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		raw = make(map[string]json.RawMessage)
	}
	return raw, nil
}

// take decodes member key into v and removes it from raw.
func take(raw map[string]json.RawMessage, key string, v any) error {
	r, ok := raw[key]
	if !ok {
		return nil
	}
	delete(raw, key)
	if err := decodeJSON(r, v); err != nil {
		return fmt.Errorf("field %q: %w", key, err)
	}
	return nil
}

// leftovers decodes the members nobody took, so unknown fields survive
// re-serialization.
func leftovers(raw map[string]json.RawMessage) (Object, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(Object, len(raw))
	for k, r := range raw {
		var v any
		if err := decodeJSON(r, &v); err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}

// objectWriter emits a JSON object with known members first, in the
// order written, followed by extra members in sorted key order.
type objectWriter struct {
	buf  bytes.Buffer
	n    int
	seen map[string]bool
	err  error
}

func (w *objectWriter) field(key string, v any) {
	if w.err != nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		w.err = fmt.Errorf("field %q: %w", key, err)
		return
	}
	k, _ := json.Marshal(key)
	if w.n > 0 {
		w.buf.WriteByte(',')
	}
	w.buf.Write(k)
	w.buf.WriteByte(':')
	w.buf.Write(b)
	w.n++
	if w.seen == nil {
		w.seen = make(map[string]bool)
	}
	w.seen[key] = true
}

func (w *objectWriter) extra(o Object) {
	keys := make([]string, 0, len(o))
	for k := range o {
		if !w.seen[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		w.field(k, o[k])
	}
}

func (w *objectWriter) bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	out := make([]byte, 0, w.buf.Len()+2)
	out = append(out, '{')
	out = append(out, w.buf.Bytes()...)
	out = append(out, '}')
	return out, nil
}
