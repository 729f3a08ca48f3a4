package txf

// UpgradeToExtended lifts a legacy token record into the extended format.
// Records already in extended form are returned as an unchanged copy.
// Legacy records predate status tracking and were only kept once settled,
// so they are marked CONFIRMED. No field is dropped.
func UpgradeToExtended(t *Token) *Token {
	if t == nil {
		return nil
	}
	out := t.Clone()
	if t.Format() == FormatExtended {
		return out
	}
	out.Status = StatusConfirmed
	return out
}
