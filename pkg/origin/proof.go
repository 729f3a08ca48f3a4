// Package origin encodes the CoinOriginProof that links a coin token to the
// proof-of-work block it was minted against.
//
// The proof is deliberately minimal: a version and a block height. The
// merkle root, target and timestamp are read back from the ledger at that
// height rather than stored in the token.
package origin

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Version is the only proof version that ValidateProofStructure accepts.
const Version = "1.0"

// ErrNoProof is returned when a token payload does not hold a proof.
var ErrNoProof = errors.New("no coin origin proof found")

// Proof is a CoinOriginProof.
type Proof struct {
	Version     string `json:"version"`
	BlockHeight int64  `json:"blockHeight"`
}

// New returns a current-version proof for the given block height.
func New(height int64) Proof {
	return Proof{Version: Version, BlockHeight: height}
}

// DecodeError describes why a payload is not a well-formed proof.
type DecodeError struct {
	Field  string // empty when the payload as a whole is unparseable
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return "decode coin origin proof: " + e.Reason
	}
	return fmt.Sprintf("decode coin origin proof: %s: %s", e.Field, e.Reason)
}

// Serialize encodes p as compact UTF-8 JSON with exactly two members.
func Serialize(p Proof) []byte {
	// A struct of a string and an int64 always marshals.
	b, _ := json.Marshal(p)
	return b
}

// Deserialize parses a proof. It is lenient about the version value so
// that proofs from newer producers can be inspected; use
// ValidateProofStructure before acting on the result.
func Deserialize(data []byte) (Proof, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return Proof{}, &DecodeError{Reason: "payload is not a JSON object"}
	}

	var p Proof
	v, ok := raw["version"]
	if !ok {
		return Proof{}, &DecodeError{Field: "version", Reason: "missing"}
	}
	if err := json.Unmarshal(v, &p.Version); err != nil || p.Version == "" {
		return Proof{}, &DecodeError{Field: "version", Reason: "must be a non-empty string"}
	}

	h, ok := raw["blockHeight"]
	if !ok {
		return Proof{}, &DecodeError{Field: "blockHeight", Reason: "missing"}
	}
	height, err := parseHeight(h)
	if err != nil {
		return Proof{}, &DecodeError{Field: "blockHeight", Reason: err.Error()}
	}
	p.BlockHeight = height
	return p, nil
}

// parseHeight accepts only a JSON integer in [0, MaxInt64].
func parseHeight(data json.RawMessage) (int64, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, errors.New("must be a number")
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, errors.New("must be a number")
	}
	if _, err := dec.Token(); err != io.EOF {
		return 0, errors.New("must be a number")
	}
	h, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil {
		return 0, errors.New("must be an integer")
	}
	if h < 0 {
		return 0, errors.New("must not be negative")
	}
	return h, nil
}

// ValidateProofStructure reports whether p is a current-version proof
// with a non-negative height, safe to use for ledger lookups.
func ValidateProofStructure(p Proof) bool {
	return p.Version == Version && p.BlockHeight >= 0
}
