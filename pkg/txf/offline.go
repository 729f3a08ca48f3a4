package txf

import "github.com/unicitynetwork/cli-sub013/pkg/crypto"

// OfflineTransferType is the type tag of a legacy offline-transfer package.
const OfflineTransferType = "unicity_offline_transfer"

// Recognized network environments for legacy packages.
const (
	NetworkTest       = "test"
	NetworkProduction = "production"
)

// OfflineTransfer is the superseded single-shot transfer package. It is
// still accepted, either standalone or embedded in a token under
// "offlineTransfer".
type OfflineTransfer struct {
	Version        string
	Type           string
	Sender         Object // address, publicKey
	Recipient      string
	Commitment     Object // salt, timestamp, amount
	Network        string
	CommitmentData string // JSON document with requestId and transactionData
	Message        string
	Extra          Object
}

// Clone returns a deep copy of the package.
func (o *OfflineTransfer) Clone() *OfflineTransfer {
	if o == nil {
		return nil
	}
	out := *o
	out.Sender = o.Sender.Clone()
	out.Commitment = o.Commitment.Clone()
	out.Extra = o.Extra.Clone()
	return &out
}

// DecodeOfflineTransfer parses a standalone legacy package.
func DecodeOfflineTransfer(data []byte) (*OfflineTransfer, error) {
	var o OfflineTransfer
	if err := decodeJSON(data, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// ValidateOfflineTransfer checks a legacy package. Each missing field is
// reported as its own error. Private key material in commitmentData or
// sender is always an error.
func ValidateOfflineTransfer(o *OfflineTransfer) Result {
	var r Result
	if o == nil {
		r.Errorf("offline transfer: missing package")
		return r
	}

	if o.Version == "" {
		r.Errorf("offline transfer: missing version")
	}
	if o.Type != OfflineTransferType {
		r.Errorf("offline transfer: type %q, expected %q", o.Type, OfflineTransferType)
	}
	if !o.Sender.Present("address") {
		r.Errorf("offline transfer: missing sender.address")
	}
	if !o.Sender.Present("publicKey") {
		r.Errorf("offline transfer: missing sender.publicKey")
	} else if !crypto.IsValidPubKey(o.Sender.String("publicKey")) {
		r.Warnf("offline transfer: sender.publicKey is not a valid secp256k1 public key")
	}
	if o.Recipient == "" {
		r.Errorf("offline transfer: missing recipient")
	}
	if !o.Commitment.Present("salt") {
		r.Errorf("offline transfer: missing commitment.salt")
	}

	switch o.Network {
	case NetworkTest, NetworkProduction:
	case "":
		r.Warnf("offline transfer: missing network")
	default:
		r.Warnf("offline transfer: unrecognized network %q", o.Network)
	}

	if o.CommitmentData == "" {
		r.Errorf("offline transfer: missing commitmentData")
	} else {
		var cd Object
		if err := decodeJSON([]byte(o.CommitmentData), &cd); err != nil {
			r.Errorf("offline transfer: commitmentData is not valid JSON: %v", err)
		} else {
			if !cd.Present("requestId") {
				r.Errorf("offline transfer: commitmentData missing requestId")
			}
			if !cd.Present("transactionData") {
				r.Errorf("offline transfer: commitmentData missing transactionData")
			}
		}
		for _, p := range FindSecrets(o.CommitmentData) {
			r.Errorf("security violation: commitmentData contains private key material at %s", p)
		}
	}
	for _, p := range FindSecrets(map[string]any(o.Sender)) {
		r.Errorf("security violation: sender contains private key material at %s", p)
	}

	return r
}

// MarshalJSON encodes the package.
func (o OfflineTransfer) MarshalJSON() ([]byte, error) {
	var w objectWriter
	if o.Version != "" {
		w.field("version", o.Version)
	}
	if o.Type != "" {
		w.field("type", o.Type)
	}
	if o.Sender != nil {
		w.field("sender", o.Sender)
	}
	if o.Recipient != "" {
		w.field("recipient", o.Recipient)
	}
	if o.Commitment != nil {
		w.field("commitment", o.Commitment)
	}
	if o.Network != "" {
		w.field("network", o.Network)
	}
	if o.CommitmentData != "" {
		w.field("commitmentData", o.CommitmentData)
	}
	if o.Message != "" {
		w.field("message", o.Message)
	}
	w.extra(o.Extra)
	return w.bytes()
}

// UnmarshalJSON decodes the package, keeping unknown members in Extra.
func (o *OfflineTransfer) UnmarshalJSON(data []byte) error {
	raw, err := rawFields(data)
	if err != nil {
		return err
	}
	var out OfflineTransfer
	for _, f := range []struct {
		key string
		v   any
	}{
		{"version", &out.Version},
		{"type", &out.Type},
		{"sender", &out.Sender},
		{"recipient", &out.Recipient},
		{"commitment", &out.Commitment},
		{"network", &out.Network},
		{"commitmentData", &out.CommitmentData},
		{"message", &out.Message},
	} {
		if err := take(raw, f.key, f.v); err != nil {
			return err
		}
	}
	if out.Extra, err = leftovers(raw); err != nil {
		return err
	}
	*o = out
	return nil
}
