package crypto

import (
	"bytes"
	"testing"
)

func TestSignAndVerifyDigest(t *testing.T) {
	privateKey := testPrivateKey(t)

	otherKey, err := GenerateRSAKeyPair(nil)
	if err != nil {
		t.Fatalf("failed to generate key pair: %v", err)
	}

	digest := Digest([]byte("CASE123-DRIVE01"))
	otherDigest := Digest([]byte("CASE123-DRIVE02"))

	signature, err := SignDigest(privateKey, digest)
	if err != nil {
		t.Fatalf("SignDigest() returned error: %v", err)
	}
	if len(signature) != RSAKeyBits/8 {
		t.Errorf("signature length = %d, want %d", len(signature), RSAKeyBits/8)
	}

	// PKCS#1 v1.5 is deterministic
	again, err := SignDigest(privateKey, digest)
	if err != nil {
		t.Fatalf("SignDigest() returned error: %v", err)
	}
	if !bytes.Equal(signature, again) {
		t.Error("signing the same digest twice produced different signatures")
	}

	tampered := bytes.Clone(signature)
	tampered[0] ^= 0x01

	tests := []struct {
		name      string
		digest    []byte
		signature []byte
		owner     bool
		want      bool
	}{
		{"valid signature", digest, signature, true, true},
		{"wrong key", digest, signature, false, false},
		{"different digest", otherDigest, signature, true, false},
		{"tampered signature", digest, tampered, true, false},
		{"truncated signature", digest, signature[:10], true, false},
		{"empty signature", digest, nil, true, false},
		{"short digest", digest[:5], signature, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publicKey := &privateKey.PublicKey
			if !tt.owner {
				publicKey = &otherKey.PublicKey
			}
			if got := VerifyDigest(publicKey, tt.digest, tt.signature); got != tt.want {
				t.Errorf("VerifyDigest() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSignDigestRejectsBadInput(t *testing.T) {
	if _, err := SignDigest(nil, Digest([]byte("x"))); CodeOf(err) != ErrCodeKeyFormat {
		t.Errorf("SignDigest(nil key) error = %v, want code %q", err, ErrCodeKeyFormat)
	}
	if _, err := SignDigest(testPrivateKey(t), []byte("short")); err == nil {
		t.Error("SignDigest(short digest) expected error, got nil")
	}
}
