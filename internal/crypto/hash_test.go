package crypto

import (
	"testing"
)

func TestHash(t *testing.T) {

	// check that empty input returns an error
	input := []byte("")
	_, err := Hash(input)
	if err == nil {
		t.Fatalf("Hash() expected error, got nil")
	}

	// check the function returns lowercase hex, 64 characters
	input = []byte("hello world")
	result, err := Hash(input)
	if err != nil {
		t.Fatalf("Hash() returned error: %v", err)
	}

	// known SHA-256 of "hello world"
	want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	if result != want {
		t.Errorf("Hash() = %s, want %s", result, want)
	}

	if !VerifyHash(input, want) {
		t.Error("VerifyHash() = false for matching checksum")
	}
	if VerifyHash([]byte("hello world!"), want) {
		t.Error("VerifyHash() = true for different data")
	}
}

func TestDigest(t *testing.T) {
	if got := len(Digest([]byte("abc"))); got != 32 {
		t.Errorf("Digest() length = %d, want 32", got)
	}
}

func TestFingerprint(t *testing.T) {
	fp := Fingerprint("30820122")

	if len(fp) != 20 {
		t.Errorf("Fingerprint() returned %d characters, expected 20", len(fp))
	}
	for _, c := range fp {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			t.Errorf("Fingerprint() returned non-hex character: %c", c)
		}
	}
	if Fingerprint("30820122") != fp {
		t.Error("Fingerprint() is not deterministic")
	}
	if Fingerprint("30820123") == fp {
		t.Error("different keys produced the same fingerprint")
	}
}
