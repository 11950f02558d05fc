// JWK (JSON Web Key) export of custodian public keys
//
// custodian identities travel as hex DER, but auditors and other services often consume JWK.
// these functions convert RSA public keys to JWK format and derive stable key IDs from the RFC 7638 thumbprint.
// Reference: https://datatracker.ietf.org/doc/html/rfc7517 (JSON Web Key standard)

package crypto

import (
	"crypto"
	"crypto/rsa"
	"fmt"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
)

// keyIDLength is the number of hex characters of the thumbprint kept in a key ID
const keyIDLength = 16

// PublicKeyToJWK converts a RSA public key to JWK format
//
// if keyID is empty the thumbprint key ID is used
func PublicKeyToJWK(publicKey *rsa.PublicKey, keyID string) (jwk.Key, error) {
	if publicKey == nil {
		return nil, NewKeyFormatError("public key is nil")
	}

	if keyID == "" {
		var err error
		keyID, err = KeyIDFromPublicKey(publicKey)
		if err != nil {
			return nil, err
		}
	}

	// create the jwk key
	key, err := jwk.Import(publicKey)
	if err != nil {
		return nil, WrapKeyFormatError(err, "failed to create JWK from RSA public key")
	}

	// Set key ID
	if err := key.Set(jwk.KeyIDKey, keyID); err != nil {
		return nil, WrapInternalError(err, "failed to set key ID")
	}

	// Set algorithm
	if err := key.Set(jwk.AlgorithmKey, jwa.RS256()); err != nil {
		return nil, WrapInternalError(err, "failed to set algorithm")
	}

	// Set key usage
	if err := key.Set(jwk.KeyUsageKey, jwk.ForSignature); err != nil {
		return nil, WrapInternalError(err, "failed to set key usage")
	}

	return key, nil
}

// PublicKeyHexToJWKSet converts a hex public key to a JWK set containing one key
func PublicKeyHexToJWKSet(publicKeyHex, keyID string) (jwk.Set, error) {
	publicKey, err := PublicKeyFromHex(publicKeyHex)
	if err != nil {
		return nil, err
	}

	key, err := PublicKeyToJWK(publicKey, keyID)
	if err != nil {
		return nil, err
	}

	set := jwk.NewSet()
	if err := set.AddKey(key); err != nil {
		return nil, WrapInternalError(err, "failed to add key to JWK set")
	}

	return set, nil
}

// KeyIDFromPublicKey generates a key ID from an RSA public key using SHA-256 thumbprint.
// Returns the first 16 characters of the hex-encoded thumbprint (RFC 7638)
func KeyIDFromPublicKey(publicKey *rsa.PublicKey) (string, error) {
	if publicKey == nil {
		return "", NewKeyFormatError("public key is nil")
	}

	// Import to JWK to calculate thumbprint
	jwkKey, err := jwk.Import(publicKey)
	if err != nil {
		return "", WrapKeyFormatError(err, "failed to import key")
	}

	thumbprint, err := jwkKey.Thumbprint(crypto.SHA256)
	if err != nil {
		return "", WrapInternalError(err, "failed to generate thumbprint")
	}

	return fmt.Sprintf("%x", thumbprint)[:keyIDLength], nil
}

// KeyIDFromPublicKeyHex generates the thumbprint key ID for a hex public key
func KeyIDFromPublicKeyHex(publicKeyHex string) (string, error) {
	publicKey, err := PublicKeyFromHex(publicKeyHex)
	if err != nil {
		return "", err
	}
	return KeyIDFromPublicKey(publicKey)
}
