// Package txf implements local validation of TXF token files: the extended
// token record carrying a mint record plus an ordered chain of transfer
// records, and the legacy single-shot offline-transfer package.
//
// Everything here is a pure function over an in-memory record. Signatures
// and inclusion proofs are consumed as opaque, already-verified objects;
// only their presence and shape are checked.
package txf

import "encoding/json"

// TokenVersion is the only token record version accepted.
const TokenVersion = "2.0"

// Format distinguishes pre-status token records from the current shape.
type Format int

const (
	// FormatLegacy records predate status tracking.
	FormatLegacy Format = iota + 1
	// FormatExtended records carry a status, an uncommitted transfer, or
	// an attached offline package.
	FormatExtended
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatLegacy:
		return "legacy"
	case FormatExtended:
		return "extended"
	default:
		return "unknown"
	}
}

// Token is a TXF token record, the unit of ownership.
type Token struct {
	Version         string
	State           Object // nil when absent or null
	Genesis         Object
	Transactions    []Transaction // oldest first
	Nametags        []any
	Status          Status // empty when absent
	Integrity       *Integrity
	OfflineTransfer *OfflineTransfer // legacy package carried by the token

	// Extra holds unrecognized top-level members.
	Extra Object
}

// Transaction is a transfer record: one state transition.
type Transaction struct {
	Data           Object
	InclusionProof *InclusionProof // nil until the transfer is confirmed
	Extra          Object
}

// InclusionProof is the network's evidence that a transition was accepted.
type InclusionProof struct {
	Authenticator   Object
	TransactionHash string
	MerkleTreePath  Object
	Extra           Object // unicity certificate and other members
}

// Integrity holds optional tamper-evidence over the genesis payload.
type Integrity struct {
	GenesisDataJSONHash string
	Extra               Object
}

// Format reports whether the record is already in extended form: it has a
// status, its last transfer is uncommitted (a chain-style offline
// transfer), or it carries an offline package awaiting submission.
func (t *Token) Format() Format {
	if t.Status != "" || t.OfflineTransfer != nil {
		return FormatExtended
	}
	if last := t.LastTransaction(); last != nil && last.InclusionProof == nil {
		return FormatExtended
	}
	return FormatLegacy
}

// LastTransaction returns the most recent transfer record, or nil.
func (t *Token) LastTransaction() *Transaction {
	if len(t.Transactions) == 0 {
		return nil
	}
	return &t.Transactions[len(t.Transactions)-1]
}

// HasCompleteProofs reports whether every transfer record carries both a
// transaction hash and a merkle tree path. True for an empty chain.
func (t *Token) HasCompleteProofs() bool {
	for i := range t.Transactions {
		p := t.Transactions[i].InclusionProof
		if p == nil || p.TransactionHash == "" || p.MerkleTreePath == nil {
			return false
		}
	}
	return true
}

// IsCommitted reports whether the transfer has an inclusion proof with
// both an authenticator and a transaction hash.
func (tx *Transaction) IsCommitted() bool {
	return tx.InclusionProof != nil && tx.InclusionProof.missing() == ""
}

// missing names the first absent mandatory proof component, or "".
func (p *InclusionProof) missing() string {
	if p.Authenticator == nil {
		return "authenticator"
	}
	if p.TransactionHash == "" {
		return "transactionHash"
	}
	return ""
}

// Clone returns a deep copy of the token.
func (t *Token) Clone() *Token {
	if t == nil {
		return nil
	}
	out := &Token{
		Version:         t.Version,
		State:           t.State.Clone(),
		Genesis:         t.Genesis.Clone(),
		Status:          t.Status,
		Integrity:       t.Integrity.clone(),
		OfflineTransfer: t.OfflineTransfer.Clone(),
		Extra:           t.Extra.Clone(),
	}
	if t.Transactions != nil {
		out.Transactions = make([]Transaction, len(t.Transactions))
		for i := range t.Transactions {
			out.Transactions[i] = t.Transactions[i].clone()
		}
	}
	if t.Nametags != nil {
		out.Nametags = cloneValue(t.Nametags).([]any)
	}
	return out
}

func (tx Transaction) clone() Transaction {
	return Transaction{
		Data:           tx.Data.Clone(),
		InclusionProof: tx.InclusionProof.clone(),
		Extra:          tx.Extra.Clone(),
	}
}

func (p *InclusionProof) clone() *InclusionProof {
	if p == nil {
		return nil
	}
	return &InclusionProof{
		Authenticator:   p.Authenticator.Clone(),
		TransactionHash: p.TransactionHash,
		MerkleTreePath:  p.MerkleTreePath.Clone(),
		Extra:           p.Extra.Clone(),
	}
}

func (i *Integrity) clone() *Integrity {
	if i == nil {
		return nil
	}
	return &Integrity{GenesisDataJSONHash: i.GenesisDataJSONHash, Extra: i.Extra.Clone()}
}

// Decode parses a token record from JSON.
func Decode(data []byte) (*Token, error) {
	var t Token
	if err := decodeJSON(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// MarshalJSON encodes the token. State and transactions are always
// emitted; other optional members only when set.
func (t Token) MarshalJSON() ([]byte, error) {
	var w objectWriter
	if t.Version != "" {
		w.field("version", t.Version)
	}
	w.field("state", t.State)
	if t.Genesis != nil {
		w.field("genesis", t.Genesis)
	}
	txs := t.Transactions
	if txs == nil {
		txs = []Transaction{}
	}
	w.field("transactions", txs)
	if t.Nametags != nil {
		w.field("nametags", t.Nametags)
	}
	if t.Status != "" {
		w.field("status", t.Status)
	}
	if t.OfflineTransfer != nil {
		w.field("offlineTransfer", t.OfflineTransfer)
	}
	if t.Integrity != nil {
		w.field("_integrity", t.Integrity)
	}
	w.extra(t.Extra)
	return w.bytes()
}

// UnmarshalJSON decodes a token, keeping unknown members in Extra.
func (t *Token) UnmarshalJSON(data []byte) error {
	raw, err := rawFields(data)
	if err != nil {
		return err
	}
	var out Token
	var status string
	for _, f := range []struct {
		key string
		v   any
	}{
		{"version", &out.Version},
		{"state", &out.State},
		{"genesis", &out.Genesis},
		{"transactions", &out.Transactions},
		{"nametags", &out.Nametags},
		{"status", &status},
		{"offlineTransfer", &out.OfflineTransfer},
		{"_integrity", &out.Integrity},
	} {
		if err := take(raw, f.key, f.v); err != nil {
			return err
		}
	}
	out.Status = Status(status)
	if out.Extra, err = leftovers(raw); err != nil {
		return err
	}
	*t = out
	return nil
}

// MarshalJSON encodes the transfer record. A missing proof is written
// as null.
func (tx Transaction) MarshalJSON() ([]byte, error) {
	var w objectWriter
	w.field("data", tx.Data)
	w.field("inclusionProof", tx.InclusionProof)
	w.extra(tx.Extra)
	return w.bytes()
}

// UnmarshalJSON decodes a transfer record.
func (tx *Transaction) UnmarshalJSON(data []byte) error {
	raw, err := rawFields(data)
	if err != nil {
		return err
	}
	var out Transaction
	if err := take(raw, "data", &out.Data); err != nil {
		return err
	}
	if err := take(raw, "inclusionProof", &out.InclusionProof); err != nil {
		return err
	}
	if out.Extra, err = leftovers(raw); err != nil {
		return err
	}
	*tx = out
	return nil
}

// MarshalJSON encodes the proof, omitting absent components.
func (p InclusionProof) MarshalJSON() ([]byte, error) {
	var w objectWriter
	if p.Authenticator != nil {
		w.field("authenticator", p.Authenticator)
	}
	if p.MerkleTreePath != nil {
		w.field("merkleTreePath", p.MerkleTreePath)
	}
	if p.TransactionHash != "" {
		w.field("transactionHash", p.TransactionHash)
	}
	w.extra(p.Extra)
	return w.bytes()
}

// UnmarshalJSON decodes an inclusion proof.
func (p *InclusionProof) UnmarshalJSON(data []byte) error {
	raw, err := rawFields(data)
	if err != nil {
		return err
	}
	var out InclusionProof
	if err := take(raw, "authenticator", &out.Authenticator); err != nil {
		return err
	}
	if err := take(raw, "transactionHash", &out.TransactionHash); err != nil {
		return err
	}
	if err := take(raw, "merkleTreePath", &out.MerkleTreePath); err != nil {
		return err
	}
	if out.Extra, err = leftovers(raw); err != nil {
		return err
	}
	*p = out
	return nil
}

// MarshalJSON encodes the integrity block.
func (i Integrity) MarshalJSON() ([]byte, error) {
	var w objectWriter
	if i.GenesisDataJSONHash != "" {
		w.field("genesisDataJSONHash", i.GenesisDataJSONHash)
	}
	w.extra(i.Extra)
	return w.bytes()
}

// UnmarshalJSON decodes the integrity block.
func (i *Integrity) UnmarshalJSON(data []byte) error {
	raw, err := rawFields(data)
	if err != nil {
		return err
	}
	var out Integrity
	if err := take(raw, "genesisDataJSONHash", &out.GenesisDataJSONHash); err != nil {
		return err
	}
	if out.Extra, err = leftovers(raw); err != nil {
		return err
	}
	*i = out
	return nil
}

var (
	_ json.Marshaler   = Token{}
	_ json.Unmarshaler = (*Token)(nil)
)
