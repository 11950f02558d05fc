package custody

import (
	"encoding/json"

	"github.com/information-sharing-networks/custody-demo/internal/crypto"
)

// SignedTransfer is a transfer record together with its signature and the signer's public key.
// This is the unit handed to a ledger.
type SignedTransfer struct {
	Record          TransferRecord `json:"record"`
	Signature       string         `json:"signature"`
	SignerPublicKey string         `json:"signer_public_key"`
}

// VerifySignedTransfer checks the signature and that the signer is the record's current custodian.
//
// Only the current custodian can hand over custody, so a valid signature by any other key is rejected with a
// signature_mismatch error.
func VerifySignedTransfer(st SignedTransfer) error {
	if st.SignerPublicKey != st.Record.CurrentCustodianKey() {
		if _, err := crypto.PublicKeyFromHex(st.SignerPublicKey); err != nil {
			return err
		}
		return crypto.NewSignatureMismatchError("signer is not the current custodian")
	}
	return CheckSignature(st.SignerPublicKey, st.Record, st.Signature)
}

// CanonicalJSON returns the RFC 8785 canonical JSON of the signed transfer.
// Every party serializing the same transfer gets identical bytes.
func (st SignedTransfer) CanonicalJSON() ([]byte, error) {
	if st.Record.IsZero() {
		return nil, crypto.NewEncodingError("signed transfer has no record")
	}

	jsonBytes, err := json.Marshal(st)
	if err != nil {
		return nil, crypto.WrapInternalError(err, "failed to marshal signed transfer")
	}

	return crypto.CanonicalizeJSON(jsonBytes)
}

// Checksum returns the SHA-256 hex checksum of the canonical JSON
func (st SignedTransfer) Checksum() (string, error) {
	canonical, err := st.CanonicalJSON()
	if err != nil {
		return "", err
	}

	checksum, err := crypto.Hash(canonical)
	if err != nil {
		return "", crypto.WrapInternalError(err, "failed to hash signed transfer")
	}
	return checksum, nil
}
