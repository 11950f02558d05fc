package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/information-sharing-networks/custody-demo/internal/crypto"
)

// identityOutput is written by keygen
type identityOutput struct {
	PrivateKey string `json:"private_key"`
	PublicKey  string `json:"public_key"`
	KeyID      string `json:"key_id"`
	JWK        any    `json:"jwk,omitempty"`
}

func newKeygenCmd(a *app) *cobra.Command {
	var (
		withJWK bool
		keyID   string
	)

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a custodian identity",
		Long: `Generate a new RSA-2048 keypair and print it as JSON.

private_key is PKCS#8 DER and public_key is PKIX DER, both lowercase hex. The public key is the
custodian identifier used in transfer records. Store the private key yourself: it is printed once
and not saved.

Example:
  custody keygen > custodian-a.json
  custody keygen --jwk --key-id evidence-room`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := a.generator.Generate()
			if err != nil {
				return fmt.Errorf("failed to generate keypair: %w", err)
			}

			thumbprintID, err := crypto.KeyIDFromPublicKeyHex(kp.PublicKeyHex)
			if err != nil {
				return err
			}

			out := identityOutput{
				PrivateKey: kp.PrivateKeyHex,
				PublicKey:  kp.PublicKeyHex,
				KeyID:      thumbprintID,
			}

			if withJWK {
				set, err := crypto.PublicKeyHexToJWKSet(kp.PublicKeyHex, keyID)
				if err != nil {
					return err
				}
				out.JWK = set
			}

			a.appLogger.Debug("identity generated", slog.Any("keypair", kp), slog.String("key_id", thumbprintID))

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(out)
		},
	}

	cmd.Flags().BoolVar(&withJWK, "jwk", false, "Also print the public key as a JWK set")
	cmd.Flags().StringVar(&keyID, "key-id", "", "Key ID for the JWK (default: thumbprint key ID)")

	return cmd
}
