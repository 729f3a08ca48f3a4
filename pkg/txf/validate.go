package txf

// Options controls full token validation.
type Options struct {
	Chain ChainOptions
}

// Validate runs every check in order: structure, chain, status
// consistency, the attached legacy package (if any), and genesis
// integrity. The chain checks are skipped when the structure is invalid.
func Validate(t *Token, opts Options) Result {
	r := ValidateStructure(t)
	if !r.IsValid() {
		return r
	}
	r.Merge(ValidateChain(t, opts.Chain))
	r.Merge(CheckStatusConsistency(t))
	if t.OfflineTransfer != nil {
		r.Merge(ValidateOfflineTransfer(t.OfflineTransfer))
	}
	r.Merge(VerifyIntegrity(t))
	return r
}

// Load parses and structurally validates a token file. The token is
// returned only when the result is valid, so downstream code never works
// on a record of unchecked shape. Parse failures are reported in the
// result rather than as an error.
func Load(data []byte) (*Token, Result) {
	t, err := Decode(data)
	if err != nil {
		var r Result
		r.Errorf("malformed token JSON: %v", err)
		return nil, r
	}
	r := ValidateStructure(t)
	if !r.IsValid() {
		return nil, r
	}
	return t, r
}
