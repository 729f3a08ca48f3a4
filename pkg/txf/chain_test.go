package txf

import "testing"

func TestValidateChain_Committed(t *testing.T) {
	r := ValidateChain(newToken(committed("a"), committed("b")), ChainOptions{})
	if !r.IsValid() || len(r.Warnings) != 0 {
		t.Errorf("result = %+v, want clean", r)
	}
}

func TestValidateChain_EmptyChain(t *testing.T) {
	r := ValidateChain(newToken(), ChainOptions{})
	if !r.IsValid() {
		t.Errorf("freshly minted token should pass: %v", r.Errors)
	}
}

func TestValidateChain_UncommittedTolerance(t *testing.T) {
	tok := newToken(committed("a"), uncommitted("b"))

	strict := ValidateChain(tok, ChainOptions{AllowUncommitted: false})
	if strict.IsValid() {
		t.Error("uncommitted last transfer should fail without AllowUncommitted")
	}

	lenient := ValidateChain(tok, ChainOptions{AllowUncommitted: true})
	if !lenient.IsValid() {
		t.Errorf("uncommitted last transfer should pass with AllowUncommitted: %v", lenient.Errors)
	}
	if !hasMessage(lenient.Warnings, "uncommitted") {
		t.Errorf("warnings = %v, want uncommitted warning", lenient.Warnings)
	}
}

func TestValidateChain_HistoricalMustBeCommitted(t *testing.T) {
	tok := newToken(uncommitted("a"), committed("b"))
	r := ValidateChain(tok, ChainOptions{AllowUncommitted: true})
	if !hasMessage(r.Errors, "transaction 0: historical transfer has no inclusion proof") {
		t.Errorf("errors = %v", r.Errors)
	}
}

func TestValidateChain_PartialProof(t *testing.T) {
	noAuth := committed("b")
	noAuth.InclusionProof.Authenticator = nil
	noHash := committed("b")
	noHash.InclusionProof.TransactionHash = ""

	tests := []struct {
		name string
		tx   Transaction
		want string
	}{
		{"missing authenticator", noAuth, "missing authenticator"},
		{"missing transaction hash", noHash, "missing transactionHash"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Partial proofs are never downgraded.
			r := ValidateChain(newToken(committed("a"), tt.tx), ChainOptions{AllowUncommitted: true})
			if !hasMessage(r.Errors, tt.want) {
				t.Errorf("errors = %v, want %q", r.Errors, tt.want)
			}
		})
	}
}

func TestValidateChain_MissingRecipient(t *testing.T) {
	tx := committed("a")
	delete(tx.Data, "recipient")
	empty := committed("a")
	empty.Data["recipient"] = ""

	for name, tx := range map[string]Transaction{"absent": tx, "empty": empty} {
		t.Run(name, func(t *testing.T) {
			r := ValidateChain(newToken(tx), ChainOptions{})
			if !hasMessage(r.Errors, "data missing recipient") {
				t.Errorf("errors = %v", r.Errors)
			}
		})
	}
}

func TestValidateChain_MissingData(t *testing.T) {
	tx := committed("a")
	tx.Data = nil
	r := ValidateChain(newToken(tx), ChainOptions{})
	if !hasMessage(r.Errors, "transaction 0: missing data") {
		t.Errorf("errors = %v", r.Errors)
	}
}

func TestValidateChain_LeakDetection(t *testing.T) {
	tests := []struct {
		name string
		data Object
	}{
		{"top-level privateKey", Object{"privateKey": "deadbeef"}},
		{"bare secret", Object{"secret": "hunter2"}},
		{"nested privateKey", Object{"meta": map[string]any{"signer": map[string]any{"privateKey": "k"}}}},
		{"in array", Object{"keys": []any{map[string]any{"privateKey": "k"}}}},
		{"renamed key", Object{"senderPrivateKey": "k"}},
		{"embedded json", Object{"payload": `{"wallet":{"privateKey":"k"}}`}},
		{"value mentions privateKey", Object{"note": "privateKey=abc"}},
		{"secret as value", Object{"kind": "secret"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := committed("a")
			for k, v := range tt.data {
				tx.Data[k] = v
			}
			for _, allow := range []bool{false, true} {
				r := ValidateChain(newToken(tx), ChainOptions{AllowUncommitted: allow})
				if !hasMessage(r.Errors, "security violation") {
					t.Errorf("allowUncommitted=%v: errors = %v, want security violation", allow, r.Errors)
				}
				if hasMessage(r.Warnings, "security") {
					t.Errorf("leak must never be a warning: %v", r.Warnings)
				}
			}
		})
	}
}

func TestFindSecrets_Paths(t *testing.T) {
	got := FindSecrets(map[string]any{
		"b":        map[string]any{"secret": 1},
		"a":        []any{map[string]any{"privateKey": "x"}},
		"nonce":    "not a secret",
		"harmless": "public",
	})
	want := []string{"$.a[0].privateKey", "$.b.secret"}
	if len(got) != len(want) {
		t.Fatalf("FindSecrets = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FindSecrets[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
