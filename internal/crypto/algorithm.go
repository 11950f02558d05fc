// algorithm.go fixes the single signature scheme supported by the custody service.
//
// Legacy custody clients used RSA-1024 keys with SHA-1. Both are superseded: every key is RSA with a modulus of at
// least 2048 bits, every digest is SHA-256 and signatures use RSASSA-PKCS1-v1_5 (deterministic padding).
// There is deliberately no algorithm negotiation.
package crypto

import "crypto"

// Algorithm identifies a signing scheme
type Algorithm string

const (
	// AlgorithmRSAPKCS1v15SHA256 is RSASSA-PKCS1-v1_5 over a SHA-256 digest (the JOSE name is RS256)
	AlgorithmRSAPKCS1v15SHA256 Algorithm = "RS256"
)

const (
	// RSAKeyBits is the modulus size used for newly generated keys
	RSAKeyBits = 2048

	// MinRSAKeyBits is the smallest modulus accepted when parsing keys
	MinRSAKeyBits = 2048

	// DigestHash is the hash applied to canonical bytes before signing
	DigestHash = crypto.SHA256
)
