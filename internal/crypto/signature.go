// signature.go signs and verifies SHA-256 digests with RSASSA-PKCS1-v1_5.
//
// PKCS#1 v1.5 signature padding is deterministic: the same key and digest always produce the same signature.
package crypto

import (
	"crypto/rsa"
	"crypto/sha256"
	"fmt"
)

// SignDigest signs a SHA-256 digest with the private key
func SignDigest(privateKey *rsa.PrivateKey, digest []byte) ([]byte, error) {
	if privateKey == nil {
		return nil, NewKeyFormatError("private key is nil")
	}
	if len(digest) != sha256.Size {
		return nil, NewInternalError(fmt.Sprintf("digest must be %d bytes, got %d", sha256.Size, len(digest)))
	}

	// the random parameter is ignored by crypto/rsa for PKCS#1 v1.5 signatures
	signature, err := rsa.SignPKCS1v15(nil, privateKey, DigestHash, digest)
	if err != nil {
		return nil, WrapInternalError(err, "failed to sign digest")
	}

	return signature, nil
}

// VerifyDigest reports whether signature is a valid signature of digest under publicKey.
//
// A wrong key, altered digest or malformed signature all return false.
func VerifyDigest(publicKey *rsa.PublicKey, digest, signature []byte) bool {
	if publicKey == nil || len(digest) != sha256.Size || len(signature) == 0 {
		return false
	}
	return rsa.VerifyPKCS1v15(publicKey, DigestHash, digest, signature) == nil
}
