package crypto

import (
	"testing"

	"github.com/lestrrat-go/jwx/v3/jwa"
)

func TestPublicKeyToJWK(t *testing.T) {

	// nil public key
	if _, err := PublicKeyToJWK(nil, ""); err == nil {
		t.Fatalf("expected an error when passing nil public key, but got no error")
	}

	privateKey := testPrivateKey(t)

	key, err := PublicKeyToJWK(&privateKey.PublicKey, "")
	if err != nil {
		t.Fatalf("error converting RSA public key to JWK: %v", err)
	}

	// Test meta data is set correctly (keyID auto-generated, alg, usage)
	gotKeyID, ok := key.KeyID()
	if !ok {
		t.Fatalf("KeyID not set in JWK")
	}
	wantKeyID, err := KeyIDFromPublicKey(&privateKey.PublicKey)
	if err != nil {
		t.Fatalf("KeyIDFromPublicKey() returned error: %v", err)
	}
	if gotKeyID != wantKeyID {
		t.Errorf("KeyID = %q, want thumbprint key ID %q", gotKeyID, wantKeyID)
	}
	if len(gotKeyID) != 16 {
		t.Errorf("KeyID length = %d, want 16", len(gotKeyID))
	}

	alg, ok := key.Algorithm()
	if !ok {
		t.Fatalf("Algorithm not set in JWK")
	}
	if alg.String() != jwa.RS256().String() {
		t.Errorf("Algorithm mismatch: got %q, want %q", alg.String(), jwa.RS256().String())
	}

	usage, ok := key.KeyUsage()
	if !ok {
		t.Fatalf("KeyUsage not set in JWK")
	}
	if usage != "sig" {
		t.Errorf("KeyUsage mismatch: got %q, want %q", usage, "sig")
	}

	// explicit key IDs are kept
	named, err := PublicKeyToJWK(&privateKey.PublicKey, "custodian-a")
	if err != nil {
		t.Fatalf("error converting RSA public key to JWK: %v", err)
	}
	if kid, _ := named.KeyID(); kid != "custodian-a" {
		t.Errorf("KeyID = %q, want %q", kid, "custodian-a")
	}
}

func TestPublicKeyHexToJWKSet(t *testing.T) {
	privateKey := testPrivateKey(t)

	publicHex, err := PublicKeyToHex(&privateKey.PublicKey)
	if err != nil {
		t.Fatalf("PublicKeyToHex() returned error: %v", err)
	}

	set, err := PublicKeyHexToJWKSet(publicHex, "")
	if err != nil {
		t.Fatalf("PublicKeyHexToJWKSet() returned error: %v", err)
	}
	if set.Len() != 1 {
		t.Errorf("set length = %d, want 1", set.Len())
	}

	if _, err := PublicKeyHexToJWKSet("not-a-key", ""); CodeOf(err) != ErrCodeKeyFormat {
		t.Errorf("PublicKeyHexToJWKSet(bad key) error = %v, want code %q", err, ErrCodeKeyFormat)
	}
}
