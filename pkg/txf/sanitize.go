package txf

import "encoding/json"

// SanitizeForExport returns a deep copy of t with private key material
// stripped from transfer records (data, proofs and unknown members), state,
// unknown top-level members, and any attached legacy package. JSON held
// in string values is stripped too. It never fails and is idempotent.
// Call it before a
// token leaves the process: file writes, network submission, log output.
func SanitizeForExport(t *Token) *Token {
	if t == nil {
		return nil
	}
	out := t.Clone()
	out.State = stripObject(out.State)
	out.Extra = stripObject(out.Extra)
	for i := range out.Transactions {
		tx := &out.Transactions[i]
		tx.Data = stripObject(tx.Data)
		tx.Extra = stripObject(tx.Extra)
		if p := tx.InclusionProof; p != nil {
			p.Authenticator = stripObject(p.Authenticator)
			p.MerkleTreePath = stripObject(p.MerkleTreePath)
			p.Extra = stripObject(p.Extra)
		}
	}
	out.OfflineTransfer = SanitizeOfflineTransfer(out.OfflineTransfer)
	return out
}

// SanitizeOfflineTransfer returns a deep copy of a legacy package with
// private key material stripped from sender and from the parsed form of
// commitmentData, which is re-serialized. A commitmentData that is not
// JSON is kept as is.
func SanitizeOfflineTransfer(o *OfflineTransfer) *OfflineTransfer {
	if o == nil {
		return nil
	}
	out := o.Clone()
	out.Sender = stripObject(out.Sender)

	if doc, ok := embeddedJSON(out.CommitmentData); ok {
		if b, err := canonicalJSON(stripSecrets(doc)); err == nil {
			out.CommitmentData = string(b)
		}
	}
	return out
}

// MarshalForExport sanitizes t and encodes it as indented JSON. This is
// the only encoder used for token data leaving the process.
func MarshalForExport(t *Token) ([]byte, error) {
	return json.MarshalIndent(SanitizeForExport(t), "", "  ")
}

// MarshalOfflineTransferForExport sanitizes o and encodes it as indented JSON.
func MarshalOfflineTransferForExport(o *OfflineTransfer) ([]byte, error) {
	return json.MarshalIndent(SanitizeOfflineTransfer(o), "", "  ")
}
