package txf

import (
	"encoding/json"
	"strings"
	"testing"
)

// confirmedToken is a fully proven single-transfer token.
const confirmedToken = `{
  "version": "2.0",
  "state": {"data": null, "predicate": {"type": "masked", "publicKey": "02ab", "nonce": "n-1"}},
  "genesis": {
    "data": {"tokenId": "aa01", "tokenType": "bb02", "recipient": "DIRECT://alice", "sourceState": {"hash": "00"}, "tokenData": ""},
    "inclusionProof": {"authenticator": {"signature": "g-sig"}, "transactionHash": "g-hash", "merkleTreePath": {"root": "g-root", "steps": []}}
  },
  "transactions": [
    {
      "data": {"recipient": "DIRECT://bob", "sourceState": {"hash": "01"}, "salt": "s-1"},
      "inclusionProof": {"authenticator": {"signature": "sig-1"}, "transactionHash": "th-1", "merkleTreePath": {"root": "r-1", "steps": []}}
    }
  ],
  "nametags": [],
  "status": "CONFIRMED"
}`

func mustDecode(t *testing.T, s string) *Token {
	t.Helper()
	tok, err := Decode([]byte(s))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return tok
}

func mustMarshal(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	return string(b)
}

// committed returns a transfer record with a complete proof.
func committed(recipient string) Transaction {
	proof := &InclusionProof{
		Authenticator:   Object{"signature": "sig"},
		TransactionHash: "hash",
		MerkleTreePath:  Object{"root": "root"},
	}
	return Transaction{
		Data:           Object{"recipient": recipient, "sourceState": map[string]any{"hash": "x"}},
		InclusionProof: proof,
	}
}

// uncommitted returns a transfer record with no proof.
func uncommitted(recipient string) Transaction {
	return Transaction{
		Data: Object{"recipient": recipient, "sourceState": map[string]any{"hash": "y"}},
	}
}

func newToken(txs ...Transaction) *Token {
	return &Token{
		Version:      TokenVersion,
		State:        Object{"predicate": map[string]any{"type": "masked"}},
		Genesis:      Object{"data": map[string]any{"recipient": "DIRECT://alice", "sourceState": map[string]any{"hash": "0"}}},
		Transactions: txs,
	}
}

func hasMessage(msgs []string, substr string) bool {
	for _, m := range msgs {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}
