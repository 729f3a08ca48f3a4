package origin

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/unicitynetwork/cli-sub013/pkg/txf"
)

// EmbedInTokenData returns the opaque token payload carrying p.
func EmbedInTokenData(p Proof) []byte {
	return Serialize(p)
}

// ExtractFromTokenData reads a proof from an opaque token payload. The
// payload may legitimately hold other application data, so every failure
// wraps ErrNoProof. A payload that looks like a proof but is malformed
// also wraps the *DecodeError.
func ExtractFromTokenData(data []byte) (Proof, error) {
	if len(data) == 0 {
		return Proof{}, ErrNoProof
	}
	p, err := Deserialize(data)
	if err != nil {
		return Proof{}, fmt.Errorf("%w: %w", ErrNoProof, err)
	}
	return p, nil
}

// ExtractFromToken reads a proof from genesis.data.tokenData, which holds
// the payload as hex.
func ExtractFromToken(t *txf.Token) (Proof, error) {
	if t == nil {
		return Proof{}, ErrNoProof
	}
	s := t.Genesis.Object("data").String("tokenData")
	if s == "" {
		return Proof{}, ErrNoProof
	}
	data, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return Proof{}, fmt.Errorf("%w: tokenData is not hex: %v", ErrNoProof, err)
	}
	return ExtractFromTokenData(data)
}

// TokenDataHex returns p as the hex string stored in genesis.data.tokenData.
func TokenDataHex(p Proof) string {
	return hex.EncodeToString(EmbedInTokenData(p))
}
