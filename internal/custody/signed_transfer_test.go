package custody

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/information-sharing-networks/custody-demo/internal/crypto"
)

func TestSignTransfer(t *testing.T) {
	a, b := testKeypairs(t)
	rec := mustBuildRecord(t, a.PublicKeyHex, b.PublicKeyHex, scenarioDescription)

	st, err := SignTransfer(a.PrivateKeyHex, rec)
	if err != nil {
		t.Fatalf("SignTransfer() returned error: %v", err)
	}
	if st.SignerPublicKey != a.PublicKeyHex {
		t.Error("SignerPublicKey is not the signer's public key")
	}
	if st.Record != rec {
		t.Error("SignedTransfer does not carry the record")
	}
	if err := VerifySignedTransfer(st); err != nil {
		t.Errorf("VerifySignedTransfer() returned error: %v", err)
	}
}

func TestVerifySignedTransferErrors(t *testing.T) {
	a, b := testKeypairs(t)
	rec := mustBuildRecord(t, a.PublicKeyHex, b.PublicKeyHex, scenarioDescription)

	valid, err := SignTransfer(a.PrivateKeyHex, rec)
	if err != nil {
		t.Fatalf("SignTransfer() returned error: %v", err)
	}

	// B signs a record that names A as the current custodian
	forged, err := SignTransfer(b.PrivateKeyHex, rec)
	if err != nil {
		t.Fatalf("SignTransfer() returned error: %v", err)
	}

	tests := []struct {
		name     string
		st       SignedTransfer
		wantCode crypto.ErrorCode
	}{
		{"signer is not the current custodian", forged, crypto.ErrCodeSignatureMismatch},
		{"signer claims to be the current custodian", SignedTransfer{Record: rec, Signature: forged.Signature, SignerPublicKey: a.PublicKeyHex}, crypto.ErrCodeSignatureMismatch},
		{"malformed signer key", SignedTransfer{Record: rec, Signature: valid.Signature, SignerPublicKey: "abcd"}, crypto.ErrCodeKeyFormat},
		{"signature not hex", SignedTransfer{Record: rec, Signature: "xyz", SignerPublicKey: a.PublicKeyHex}, crypto.ErrCodeEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifySignedTransfer(tt.st)
			if crypto.CodeOf(err) != tt.wantCode {
				t.Errorf("VerifySignedTransfer() error = %v, want code %q", err, tt.wantCode)
			}
		})
	}
}

func TestSignedTransferCanonicalJSON(t *testing.T) {
	a, b := testKeypairs(t)
	rec := mustBuildRecord(t, a.PublicKeyHex, b.PublicKeyHex, "drive <sealed> & bagged")

	st, err := SignTransfer(a.PrivateKeyHex, rec)
	if err != nil {
		t.Fatalf("SignTransfer() returned error: %v", err)
	}

	canonical, err := st.CanonicalJSON()
	if err != nil {
		t.Fatalf("CanonicalJSON() returned error: %v", err)
	}

	// keys are sorted and HTML characters are not escaped
	if !strings.HasPrefix(string(canonical), `{"record":{"current_custodian_key":`) {
		t.Errorf("CanonicalJSON() has unexpected key order: %.60s", canonical)
	}
	if !strings.Contains(string(canonical), "drive <sealed> & bagged") {
		t.Error("CanonicalJSON() escaped the description")
	}

	// a ledger reading the JSON back gets a verifiable transfer with the same checksum
	var decoded SignedTransfer
	if err := json.Unmarshal(canonical, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() returned error: %v", err)
	}
	if err := VerifySignedTransfer(decoded); err != nil {
		t.Errorf("VerifySignedTransfer(decoded) returned error: %v", err)
	}

	checksum, err := st.Checksum()
	if err != nil {
		t.Fatalf("Checksum() returned error: %v", err)
	}
	decodedChecksum, err := decoded.Checksum()
	if err != nil {
		t.Fatalf("Checksum() returned error: %v", err)
	}
	if checksum != decodedChecksum || len(checksum) != 64 {
		t.Errorf("checksums differ or have the wrong length: %s vs %s", checksum, decodedChecksum)
	}
	if !crypto.VerifyHash(canonical, checksum) {
		t.Error("checksum is not the SHA-256 of the canonical JSON")
	}

	if _, err := (SignedTransfer{}).CanonicalJSON(); crypto.CodeOf(err) != crypto.ErrCodeEncoding {
		t.Errorf("CanonicalJSON(empty) error = %v, want code %q", err, crypto.ErrCodeEncoding)
	}
}
