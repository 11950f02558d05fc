// this file provides the SHA-256 functions used by the custody service.
//
// SHA-256 is used for:
//   1. The digest that is signed (computed over the canonical record bytes)
//   2. Checksums of canonical signed-transfer JSON handed to a ledger
//   3. Short public key fingerprints for logs and display

package crypto

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
)

// fingerprintBytes is the number of digest bytes kept in a fingerprint (20 hex chars)
const fingerprintBytes = 10

// Digest returns the SHA-256 digest of data. This is the value that is signed.
func Digest(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// Hash calculates SHA-256 checksum (hash) and returns hex string.
//
// Use this for canonical JSON and any other data already in memory.
func Hash(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("data is empty")
	}
	hasher := sha256.New()

	if _, err := io.Copy(hasher, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("failed to hash data: %w", err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// VerifyHash verifies that data matches the expected SHA-256 checksum.
func VerifyHash(data []byte, expectedChecksum string) bool {
	checksum, _ := Hash(data)
	return checksum == expectedChecksum
}

// Fingerprint returns a short hex fingerprint of a hex public key.
//
// It hashes the key text with SHA-256 and truncates to 10 bytes (20 hex chars).
// Fingerprints are safe to log; full keys are not logged.
func Fingerprint(publicKeyHex string) string {
	sum := sha256.Sum256([]byte(publicKeyHex))
	return hex.EncodeToString(sum[:fingerprintBytes])
}
