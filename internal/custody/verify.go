package custody

import (
	"encoding/hex"

	"github.com/information-sharing-networks/custody-demo/internal/crypto"
)

// Verify reports whether signatureHex is a valid signature of rec by the holder of publicKeyHex.
//
// A signature that does not match (wrong key, altered record, altered signature) returns (false, nil).
// Inputs that cannot be checked at all return false with an error:
//   - key_format if the public key is malformed or smaller than 2048 bits
//   - encoding if the record is invalid or the signature is not hex
func Verify(publicKeyHex string, rec TransferRecord, signatureHex string) (bool, error) {
	publicKey, err := crypto.PublicKeyFromHex(publicKeyHex)
	if err != nil {
		return false, err
	}

	encoded, err := Encode(rec)
	if err != nil {
		return false, err
	}

	if signatureHex == "" {
		return false, crypto.NewEncodingError("signature is empty")
	}
	signature, err := hex.DecodeString(signatureHex)
	if err != nil {
		return false, crypto.WrapEncodingError(err, "signature is not valid hex")
	}

	return crypto.VerifyDigest(publicKey, crypto.Digest(encoded), signature), nil
}

// CheckSignature is Verify in error form: it returns nil for a valid signature and a signature_mismatch error
// when the signature does not match.
func CheckSignature(publicKeyHex string, rec TransferRecord, signatureHex string) error {
	valid, err := Verify(publicKeyHex, rec, signatureHex)
	if err != nil {
		return err
	}
	if !valid {
		return crypto.NewSignatureMismatchError("signature does not match transfer record")
	}
	return nil
}
