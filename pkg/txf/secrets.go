package txf

import (
	"sort"
	"strconv"
	"strings"
)

// Field names stripped on export. Detection is wider: see isSecretKey.
var exportStrippedKeys = map[string]bool{
	"privateKey": true,
	"secret":     true,
	"nonce":      true,
}

// isSecretKey reports whether an object key names private key material.
func isSecretKey(k string) bool {
	return k == "secret" || strings.Contains(strings.ToLower(k), "privatekey")
}

// FindSecrets walks a decoded JSON value and returns the paths of every
// member that carries private key material: keys named "secret", keys
// containing "privateKey" in any case, and string values that mention
// "privateKey" or equal "secret". String values holding a JSON document
// are parsed and walked as well. Paths are sorted.
func FindSecrets(v any) []string {
	var found []string
	walkSecrets(v, "$", &found)
	sort.Strings(found)
	return found
}

func walkSecrets(v any, path string, found *[]string) {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			p := path + "." + k
			if isSecretKey(k) {
				*found = append(*found, p)
				continue
			}
			walkSecrets(e, p, found)
		}
	case Object:
		walkSecrets(map[string]any(t), path, found)
	case []any:
		for i, e := range t {
			walkSecrets(e, path+"["+strconv.Itoa(i)+"]", found)
		}
	case string:
		if doc, ok := embeddedJSON(t); ok {
			walkSecrets(doc, path+"<json>", found)
			return
		}
		if t == "secret" || strings.Contains(t, "privateKey") {
			*found = append(*found, path)
		}
	}
}

// embeddedJSON parses s when it holds a JSON object or array.
func embeddedJSON(s string) (any, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || (s[0] != '{' && s[0] != '[') {
		return nil, false
	}
	var v any
	if err := decodeJSON([]byte(s), &v); err != nil {
		return nil, false
	}
	return v, true
}

// stripSecrets returns a deep copy of v with every secret-shaped or
// export-stripped key removed at any depth.
func stripSecrets(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			if exportStrippedKeys[k] || isSecretKey(k) {
				continue
			}
			out[k] = stripSecrets(e)
		}
		return out
	case Object:
		return stripSecrets(map[string]any(t))
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = stripSecrets(e)
		}
		return out
	case string:
		return stripEmbedded(t)
	default:
		return t
	}
}

func stripObject(o Object) Object {
	if o == nil {
		return nil
	}
	return stripSecrets(map[string]any(o)).(map[string]any)
}

// stripEmbedded strips a JSON document held in a string value. The string
// is rewritten in canonical form only when something was removed, so
// opaque payloads without secrets keep their exact bytes.
func stripEmbedded(s string) string {
	doc, ok := embeddedJSON(s)
	if !ok {
		return s
	}
	before, err := canonicalJSON(doc)
	if err != nil {
		return s
	}
	after, err := canonicalJSON(stripSecrets(doc))
	if err != nil || string(after) == string(before) {
		return s
	}
	return string(after)
}
