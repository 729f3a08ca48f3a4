package txf

import "testing"

// generatorPubKey is the compressed secp256k1 generator point.
const generatorPubKey = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"

func validPackage() *OfflineTransfer {
	return &OfflineTransfer{
		Version:        "1.0",
		Type:           OfflineTransferType,
		Sender:         Object{"address": "DIRECT://alice", "publicKey": generatorPubKey},
		Recipient:      "DIRECT://bob",
		Commitment:     Object{"salt": "c2FsdA==", "timestamp": 1700000000},
		Network:        NetworkTest,
		CommitmentData: `{"requestId":"0000ab","transactionData":{"recipient":"DIRECT://bob"},"authenticator":{}}`,
	}
}

func TestValidateOfflineTransfer_Valid(t *testing.T) {
	r := ValidateOfflineTransfer(validPackage())
	if !r.IsValid() || len(r.Warnings) != 0 {
		t.Errorf("result = %+v, want clean", r)
	}
}

func TestValidateOfflineTransfer_EachMissingFieldReported(t *testing.T) {
	pkg := &OfflineTransfer{Version: "1.0", Type: OfflineTransferType, Network: NetworkProduction}
	r := ValidateOfflineTransfer(pkg)

	for _, want := range []string{
		"missing sender.address",
		"missing sender.publicKey",
		"missing recipient",
		"missing commitment.salt",
		"missing commitmentData",
	} {
		if !hasMessage(r.Errors, want) {
			t.Errorf("errors %v missing %q", r.Errors, want)
		}
	}
	if len(r.Errors) != 5 {
		t.Errorf("got %d errors, want 5 distinct: %v", len(r.Errors), r.Errors)
	}
}

func TestValidateOfflineTransfer_Fields(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*OfflineTransfer)
		wantErr  string
		wantWarn string
	}{
		{"wrong type", func(o *OfflineTransfer) { o.Type = "transfer" }, "type", ""},
		{"missing version", func(o *OfflineTransfer) { o.Version = "" }, "missing version", ""},
		{"commitmentData not json", func(o *OfflineTransfer) { o.CommitmentData = "{oops" }, "not valid JSON", ""},
		{"no requestId", func(o *OfflineTransfer) { o.CommitmentData = `{"transactionData":{}}` }, "missing requestId", ""},
		{"no transactionData", func(o *OfflineTransfer) { o.CommitmentData = `{"requestId":"1"}` }, "missing transactionData", ""},
		{"unknown network", func(o *OfflineTransfer) { o.Network = "devnet" }, "", "unrecognized network"},
		{"missing network", func(o *OfflineTransfer) { o.Network = "" }, "", "missing network"},
		{"bad public key", func(o *OfflineTransfer) { o.Sender["publicKey"] = "zz" }, "", "not a valid secp256k1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := validPackage()
			tt.mutate(pkg)
			r := ValidateOfflineTransfer(pkg)
			if tt.wantErr != "" && !hasMessage(r.Errors, tt.wantErr) {
				t.Errorf("errors = %v, want %q", r.Errors, tt.wantErr)
			}
			if tt.wantErr == "" && !r.IsValid() {
				t.Errorf("unexpected errors: %v", r.Errors)
			}
			if tt.wantWarn != "" && !hasMessage(r.Warnings, tt.wantWarn) {
				t.Errorf("warnings = %v, want %q", r.Warnings, tt.wantWarn)
			}
		})
	}
}

func TestValidateOfflineTransfer_SecurityViolation(t *testing.T) {
	tests := []struct {
		name string
		pkg  *OfflineTransfer
	}{
		{
			"nested in otherwise valid package",
			func() *OfflineTransfer {
				o := validPackage()
				o.CommitmentData = `{"requestId":"1","transactionData":{"signer":{"privateKey":"deadbeef"}}}`
				return o
			}(),
		},
		{
			"everything else invalid",
			&OfflineTransfer{CommitmentData: `{"privateKey":"deadbeef"}`},
		},
		{
			"commitmentData not json",
			&OfflineTransfer{CommitmentData: `privateKey: deadbeef`},
		},
		{
			"sender carries key",
			func() *OfflineTransfer {
				o := validPackage()
				o.Sender["privateKey"] = "deadbeef"
				return o
			}(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ValidateOfflineTransfer(tt.pkg)
			if !hasMessage(r.Errors, "security violation") {
				t.Errorf("errors = %v, want security violation", r.Errors)
			}
		})
	}
}

func TestDecodeOfflineTransfer(t *testing.T) {
	pkg, err := DecodeOfflineTransfer([]byte(`{
		"version": "1.0",
		"type": "unicity_offline_transfer",
		"sender": {"address": "a", "publicKey": "` + generatorPubKey + `"},
		"recipient": "b",
		"commitment": {"salt": "s", "timestamp": 1, "amount": "100"},
		"network": "test",
		"commitmentData": "{\"requestId\":\"1\",\"transactionData\":{}}",
		"message": "hi",
		"x-extension": true
	}`))
	if err != nil {
		t.Fatalf("DecodeOfflineTransfer: %v", err)
	}
	if pkg.Sender.String("address") != "a" || pkg.Message != "hi" {
		t.Errorf("decoded = %+v", pkg)
	}
	if pkg.Extra["x-extension"] != true {
		t.Error("unknown field dropped")
	}
	if r := ValidateOfflineTransfer(pkg); !r.IsValid() {
		t.Errorf("errors = %v", r.Errors)
	}
	if r := ValidateOfflineTransfer(nil); r.IsValid() {
		t.Error("nil package should be invalid")
	}
}
