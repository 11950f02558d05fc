package custody

import (
	"strings"
	"sync"
	"testing"
)

var (
	testKeysOnce sync.Once
	testKeyA     Keypair
	testKeyB     Keypair
	testKeysErr  error
)

// testKeypairs returns two keypairs shared by the tests in this package (RSA generation is slow)
func testKeypairs(t *testing.T) (Keypair, Keypair) {
	t.Helper()
	testKeysOnce.Do(func() {
		testKeyA, testKeysErr = GenerateKeypair()
		if testKeysErr != nil {
			return
		}
		testKeyB, testKeysErr = GenerateKeypair()
	})
	if testKeysErr != nil {
		t.Fatalf("failed to generate test keypairs: %v", testKeysErr)
	}
	return testKeyA, testKeyB
}

// mustBuildRecord builds a record or fails the test
func mustBuildRecord(t *testing.T, current, next, description string) TransferRecord {
	t.Helper()
	rec, err := BuildRecord(current, next, description)
	if err != nil {
		t.Fatalf("BuildRecord() returned error: %v", err)
	}
	return rec
}

// flipHexChar changes one character of a hex string while keeping it valid hex
func flipHexChar(s string, i int) string {
	b := []byte(s)
	if b[i] == '0' {
		b[i] = '1'
	} else {
		b[i] = '0'
	}
	return string(b)
}

func errContains(err error, substr string) bool {
	return err != nil && strings.Contains(err.Error(), substr)
}
