package txf

// ChainOptions controls chain validation.
type ChainOptions struct {
	// AllowUncommitted downgrades a last transfer without any inclusion
	// proof from an error to a warning, for offline transfers and
	// submission retries.
	AllowUncommitted bool
}

// ValidateChain walks the transfer records oldest first.
//
// Historical records must be committed. Only the last record may lack a
// proof, and only with AllowUncommitted. A partial proof is always an
// error. Private key material in transfer data is a security violation
// that no option can downgrade.
func ValidateChain(t *Token, opts ChainOptions) Result {
	var r Result
	if t == nil {
		r.Errorf("missing token record")
		return r
	}

	last := len(t.Transactions) - 1
	for i := range t.Transactions {
		tx := &t.Transactions[i]

		switch {
		case tx.InclusionProof == nil && i < last:
			r.Errorf("transaction %d: historical transfer has no inclusion proof", i)
		case tx.InclusionProof == nil && opts.AllowUncommitted:
			r.Warnf("transaction %d: uncommitted, submit with offline flag to continue", i)
		case tx.InclusionProof == nil:
			r.Errorf("transaction %d: uncommitted (no inclusion proof)", i)
		default:
			if m := tx.InclusionProof.missing(); m != "" {
				r.Errorf("transaction %d: incomplete inclusion proof (missing %s)", i, m)
			}
		}

		for _, p := range FindSecrets(map[string]any(tx.Extra)) {
			r.Errorf("security violation: transaction %d record contains private key material at %s", i, p)
		}

		if tx.Data == nil {
			r.Errorf("transaction %d: missing data", i)
			continue
		}
		if !tx.Data.Present("recipient") {
			r.Errorf("transaction %d: data missing recipient", i)
		}
		for _, p := range FindSecrets(map[string]any(tx.Data)) {
			r.Errorf("security violation: transaction %d data contains private key material at %s", i, p)
		}
	}
	return r
}
