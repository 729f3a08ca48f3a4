package types

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestHash_IsZero(t *testing.T) {
	var zero Hash
	if !zero.IsZero() {
		t.Error("zero-value Hash should be zero")
	}
	if (Hash{0x01}).IsZero() {
		t.Error("non-zero Hash should not be zero")
	}
}

func TestHash_StringAndShort(t *testing.T) {
	h := Hash{0xab}
	h[31] = 0xcd

	s := h.String()
	if len(s) != 64 {
		t.Fatalf("String() length = %d, want 64", len(s))
	}
	if !strings.HasPrefix(s, "ab") || !strings.HasSuffix(s, "cd") {
		t.Errorf("String() = %s, want ab...cd", s)
	}
	if got := h.Short(); got != "ab00000000000000" {
		t.Errorf("Short() = %s, want ab00000000000000", got)
	}
}

func TestHash_BytesIsCopy(t *testing.T) {
	h := Hash{0x01, 0x02}
	b := h.Bytes()
	b[0] = 0xFF
	if h[0] == 0xFF {
		t.Error("Bytes() should return a copy, not a reference")
	}
}

func TestHexToHash(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", strings.Repeat("0a", 32), false},
		{"too short", "abcd", true},
		{"too long", strings.Repeat("00", 33), true},
		{"not hex", strings.Repeat("zz", 32), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := HexToHash(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("HexToHash(%q) should fail", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("HexToHash: %v", err)
			}
			if h[0] != 0x0a {
				t.Errorf("h[0] = %x, want 0a", h[0])
			}
		})
	}
}

func TestHash_JSON(t *testing.T) {
	h := Hash{0xde, 0xad}
	data, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.HasPrefix(string(data), `"dead`) {
		t.Errorf("marshal = %s, want hex string", data)
	}

	var got Hash
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != h {
		t.Errorf("unmarshal = %x, want %x", got, h)
	}

	var empty Hash
	if err := json.Unmarshal([]byte(`""`), &empty); err != nil {
		t.Fatalf("unmarshal empty: %v", err)
	}
	if !empty.IsZero() {
		t.Error("empty string should decode to zero hash")
	}
}
