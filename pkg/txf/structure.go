package txf

// ValidateStructure checks the version tag and the mandatory sub-objects.
// A null state is accepted only when it can be rebuilt from the latest
// transition; nothing is repaired here.
func ValidateStructure(t *Token) Result {
	var r Result
	if t == nil {
		r.Errorf("missing token record")
		return r
	}

	switch t.Version {
	case TokenVersion:
	case "":
		r.Errorf("missing version (expected %q)", TokenVersion)
	default:
		r.Errorf("unsupported version %q (expected %q)", t.Version, TokenVersion)
	}

	if t.State != nil {
		if t.Genesis == nil {
			r.Errorf("state is present but genesis is missing")
		}
	} else {
		if t.Genesis == nil {
			r.Errorf("missing genesis")
		}
		if !HasReconstructableState(t) {
			r.Errorf("null state without reconstructable sourceState")
		}
	}

	return r
}

// HasReconstructableState reports whether a missing state can be derived:
// the latest transition (the last transfer, or genesis when there are
// none) must carry a sourceState object in its data.
func HasReconstructableState(t *Token) bool {
	if t == nil {
		return false
	}
	var data Object
	if last := t.LastTransaction(); last != nil {
		data = last.Data
	} else {
		data = t.Genesis.Object("data")
	}
	return data.Object("sourceState") != nil
}
