package custody

import (
	"io"
	"log/slog"

	"github.com/information-sharing-networks/custody-demo/internal/crypto"
)

// Keypair is a custodian identity.
//
// PrivateKeyHex is PKCS#8 DER and PublicKeyHex is PKIX DER, both lowercase hex. The public key doubles as the
// custodian's identifier in transfer records.
type Keypair struct {
	PrivateKeyHex string `json:"private_key"`
	PublicKeyHex  string `json:"public_key"`
}

// String omits the private key
func (k Keypair) String() string {
	return "Keypair{fingerprint: " + crypto.Fingerprint(k.PublicKeyHex) + "}"
}

// LogValue omits the private key when a keypair is passed to slog
func (k Keypair) LogValue() slog.Value {
	return slog.GroupValue(slog.String("fingerprint", crypto.Fingerprint(k.PublicKeyHex)))
}

// KeyGenerator creates keypairs from an entropy source.
// The zero value uses crypto/rand.
type KeyGenerator struct {
	// Rand is the entropy source. Nil means crypto/rand.Reader.
	Rand io.Reader
}

// Generate returns a new RSA-2048 keypair.
//
// If the entropy source fails an entropy_unavailable error is returned; there is no fallback source.
func (g KeyGenerator) Generate() (Keypair, error) {
	privateKey, err := crypto.GenerateRSAKeyPair(g.Rand)
	if err != nil {
		return Keypair{}, err
	}

	privateKeyHex, err := crypto.PrivateKeyToHex(privateKey)
	if err != nil {
		return Keypair{}, err
	}

	publicKeyHex, err := crypto.PublicKeyToHex(&privateKey.PublicKey)
	if err != nil {
		return Keypair{}, err
	}

	return Keypair{PrivateKeyHex: privateKeyHex, PublicKeyHex: publicKeyHex}, nil
}

// GenerateKeypair returns a new RSA-2048 keypair using crypto/rand
func GenerateKeypair() (Keypair, error) {
	return KeyGenerator{}.Generate()
}
