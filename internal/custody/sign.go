package custody

import (
	"crypto/rsa"
	"encoding/hex"

	"github.com/information-sharing-networks/custody-demo/internal/crypto"
)

// Sign returns the lowercase hex RSASSA-PKCS1-v1_5 signature of the SHA-256 digest of Encode(rec).
//
// privateKeyHex is PKCS#8 DER hex (PKCS#1 is also accepted). A malformed or undersized key returns a key_format
// error and an invalid record returns an encoding error. Signing is deterministic.
func Sign(privateKeyHex string, rec TransferRecord) (string, error) {
	privateKey, err := crypto.PrivateKeyFromHex(privateKeyHex)
	if err != nil {
		return "", err
	}
	return signRecord(privateKey, rec)
}

// SignTransfer signs rec and returns the record, signature and the signer's public key as a SignedTransfer.
func SignTransfer(privateKeyHex string, rec TransferRecord) (SignedTransfer, error) {
	privateKey, err := crypto.PrivateKeyFromHex(privateKeyHex)
	if err != nil {
		return SignedTransfer{}, err
	}

	signature, err := signRecord(privateKey, rec)
	if err != nil {
		return SignedTransfer{}, err
	}

	signerPublicKey, err := crypto.PublicKeyToHex(&privateKey.PublicKey)
	if err != nil {
		return SignedTransfer{}, err
	}

	return SignedTransfer{
		Record:          rec,
		Signature:       signature,
		SignerPublicKey: signerPublicKey,
	}, nil
}

func signRecord(privateKey *rsa.PrivateKey, rec TransferRecord) (string, error) {
	encoded, err := Encode(rec)
	if err != nil {
		return "", err
	}

	signature, err := crypto.SignDigest(privateKey, crypto.Digest(encoded))
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(signature), nil
}
