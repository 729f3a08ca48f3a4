package txf

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// sha256Imprint is the algorithm prefix of a SHA-256 data hash imprint.
const sha256Imprint = "0000"

// GenesisDataHash returns the hex SHA-256 of the canonical JSON of
// genesis.data.
func GenesisDataHash(t *Token) (string, bool) {
	data := t.Genesis.Object("data")
	if data == nil {
		return "", false
	}
	b, err := canonicalJSON(map[string]any(data))
	if err != nil {
		return "", false
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), true
}

// VerifyIntegrity checks _integrity.genesisDataJSONHash when present. The
// hash may be bare hex or a SHA-256 imprint. A mismatch is a warning:
// producers may order keys differently before hashing.
func VerifyIntegrity(t *Token) Result {
	var r Result
	if t == nil || t.Integrity == nil || t.Integrity.GenesisDataJSONHash == "" {
		return r
	}

	want := strings.ToLower(t.Integrity.GenesisDataJSONHash)
	if len(want) == 2*(sha256.Size+2) && strings.HasPrefix(want, sha256Imprint) {
		want = want[len(sha256Imprint):]
	}
	if b, err := hex.DecodeString(want); err != nil || len(b) != sha256.Size {
		r.Errorf("_integrity.genesisDataJSONHash is not a SHA-256 hash")
		return r
	}

	got, ok := GenesisDataHash(t)
	if !ok {
		r.Errorf("_integrity.genesisDataJSONHash present but genesis.data is missing")
		return r
	}
	if got != want {
		r.Warnf("genesis data hash mismatch: recorded %s, computed %s", want, got)
	}
	return r
}
