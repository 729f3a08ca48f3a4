package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{
			name:  "empty input",
			input: []byte{},
			want:  "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262",
		},
		{
			name:  "hello",
			input: []byte("hello"),
			want:  "ea8f163db38682925e4491c5e58d4bb3506ef8c14eb78a86e908c5624a67200f",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hash(tt.input)
			if got.String() != tt.want {
				t.Errorf("Hash(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidPubKey(t *testing.T) {
	key, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	compressed := hex.EncodeToString(key.PubKey().SerializeCompressed())
	uncompressed := hex.EncodeToString(key.PubKey().SerializeUncompressed())

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"compressed", compressed, true},
		{"uncompressed", uncompressed, true},
		{"0x prefix", "0x" + compressed, true},
		{"empty", "", false},
		{"not hex", "not-a-key", false},
		{"wrong length", compressed[:40], false},
		{"x beyond field", "02" + "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPubKey(tt.input); got != tt.want {
				t.Errorf("IsValidPubKey(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
