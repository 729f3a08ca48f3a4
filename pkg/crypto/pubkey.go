package crypto

import (
	"encoding/hex"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// IsValidPubKey reports whether s is a hex-encoded secp256k1 public key in
// compressed (33 byte) or uncompressed (65 byte) form that lies on the curve.
func IsValidPubKey(s string) bool {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return false
	}
	if len(b) != secp256k1.PubKeyBytesLenCompressed && len(b) != secp256k1.PubKeyBytesLenUncompressed {
		return false
	}
	_, err = secp256k1.ParsePubKey(b)
	return err == nil
}
