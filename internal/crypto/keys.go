// this file contains functions to generate RSA key pairs and convert them to and from the hex transport format.
//
// Keys travel as lowercase hex:
//   - private keys are PKCS#8 DER (https://datatracker.ietf.org/doc/html/rfc5208)
//   - public keys are PKIX SubjectPublicKeyInfo DER
//
// For compatibility with older custody clients, PKCS#1 DER is also accepted when parsing.
// Keys with a modulus below MinRSAKeyBits are rejected.

package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/hex"
	"fmt"
	"io"
)

// entropyProbeSize is the number of bytes read from the random source before key generation starts
const entropyProbeSize = 32

// GenerateRSAKeyPair generates a new RSAKeyBits RSA key using random as the entropy source.
// Pass nil to use crypto/rand.
//
// A failing random source is reported as an entropy error; there is no fallback source.
func GenerateRSAKeyPair(random io.Reader) (*rsa.PrivateKey, error) {
	if random == nil {
		random = rand.Reader
	}

	probe := make([]byte, entropyProbeSize)
	defer Wipe(probe)
	if _, err := io.ReadFull(random, probe); err != nil {
		return nil, WrapEntropyUnavailableError(err, "secure random source unavailable")
	}

	privateKey, err := rsa.GenerateKey(random, RSAKeyBits)
	if err != nil {
		return nil, WrapEntropyUnavailableError(err, "failed to generate key pair")
	}

	return privateKey, nil
}

// PrivateKeyToHex encodes an RSA private key as hex PKCS#8 DER
func PrivateKeyToHex(privateKey *rsa.PrivateKey) (string, error) {
	if privateKey == nil {
		return "", NewKeyFormatError("private key is nil")
	}

	der, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return "", WrapInternalError(err, "failed to marshal private key")
	}
	defer Wipe(der)

	return hex.EncodeToString(der), nil
}

// PublicKeyToHex encodes an RSA public key as hex PKIX DER
func PublicKeyToHex(publicKey *rsa.PublicKey) (string, error) {
	if publicKey == nil {
		return "", NewKeyFormatError("public key is nil")
	}

	der, err := x509.MarshalPKIXPublicKey(publicKey)
	if err != nil {
		return "", WrapInternalError(err, "failed to marshal public key")
	}

	return hex.EncodeToString(der), nil
}

// PrivateKeyFromHex decodes a hex PKCS#8 (or PKCS#1) RSA private key.
//
// The error never includes the key text.
func PrivateKeyFromHex(privateKeyHex string) (*rsa.PrivateKey, error) {
	if privateKeyHex == "" {
		return nil, NewKeyFormatError("private key is empty")
	}

	der, err := hex.DecodeString(privateKeyHex)
	if err != nil {
		return nil, NewKeyFormatError("private key is not valid hex")
	}
	defer Wipe(der)

	var privateKey *rsa.PrivateKey

	key, err := x509.ParsePKCS8PrivateKey(der)
	switch {
	case err == nil:
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, NewKeyFormatError(fmt.Sprintf("private key is not an RSA key (type: %T)", key))
		}
		privateKey = rsaKey
	default:
		rsaKey, pkcs1Err := x509.ParsePKCS1PrivateKey(der)
		if pkcs1Err != nil {
			return nil, NewKeyFormatError("private key is not a PKCS#8 or PKCS#1 RSA key")
		}
		privateKey = rsaKey
	}

	if err := checkKeySize(privateKey.N.BitLen()); err != nil {
		return nil, err
	}

	if err := privateKey.Validate(); err != nil {
		return nil, NewKeyFormatError("private key failed validation")
	}

	return privateKey, nil
}

// PublicKeyFromHex decodes a hex PKIX (or PKCS#1) RSA public key
func PublicKeyFromHex(publicKeyHex string) (*rsa.PublicKey, error) {
	if publicKeyHex == "" {
		return nil, NewKeyFormatError("public key is empty")
	}

	der, err := hex.DecodeString(publicKeyHex)
	if err != nil {
		return nil, WrapKeyFormatError(err, "public key is not valid hex")
	}

	var publicKey *rsa.PublicKey

	key, err := x509.ParsePKIXPublicKey(der)
	switch {
	case err == nil:
		rsaKey, ok := key.(*rsa.PublicKey)
		if !ok {
			return nil, NewKeyFormatError(fmt.Sprintf("public key is not an RSA key (type: %T)", key))
		}
		publicKey = rsaKey
	default:
		rsaKey, pkcs1Err := x509.ParsePKCS1PublicKey(der)
		if pkcs1Err != nil {
			return nil, WrapKeyFormatError(err, "public key is not a PKIX or PKCS#1 RSA key")
		}
		publicKey = rsaKey
	}

	if err := checkKeySize(publicKey.N.BitLen()); err != nil {
		return nil, err
	}

	return publicKey, nil
}

// PublicKeyHexFromPrivate derives the hex public key for a hex private key
func PublicKeyHexFromPrivate(privateKeyHex string) (string, error) {
	privateKey, err := PrivateKeyFromHex(privateKeyHex)
	if err != nil {
		return "", err
	}
	return PublicKeyToHex(&privateKey.PublicKey)
}

func checkKeySize(bits int) error {
	if bits < MinRSAKeyBits {
		return NewKeyFormatError(fmt.Sprintf("RSA key size %d bits is below the minimum of %d bits", bits, MinRSAKeyBits))
	}
	return nil
}
