package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/information-sharing-networks/custody-demo/internal/crypto"
	"github.com/information-sharing-networks/custody-demo/internal/custody"
)

func newVerifyCmd(a *app) *cobra.Command {
	var transferFile string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signed transfer",
		Long: `Verify a signed transfer written by "custody sign".

The signature must be valid for the record and the signer must be the record's current custodian.
Prints "valid" and exits 0, otherwise prints the reason and exits 1.

Example:
  custody verify --transfer transfer.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// #nosec G304 -- the path is supplied by the user running the tool
			data, err := os.ReadFile(transferFile)
			if err != nil {
				return fmt.Errorf("failed to read transfer file: %w", err)
			}

			var st custody.SignedTransfer
			if err := json.Unmarshal(data, &st); err != nil {
				return crypto.WrapEncodingError(err, "failed to decode signed transfer")
			}

			// apply the configured limits to the decoded record
			if _, err := a.limits().BuildRecord(st.Record.CurrentCustodianKey(), st.Record.NewCustodianKey(), st.Record.ItemDescription()); err != nil {
				return err
			}

			if err := custody.VerifySignedTransfer(st); err != nil {
				a.appLogger.Debug("verification failed",
					slog.String("signer", crypto.Fingerprint(st.SignerPublicKey)),
					slog.String("code", string(crypto.CodeOf(err))),
				)
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return err
		},
	}

	cmd.Flags().StringVarP(&transferFile, "transfer", "t", "", "Signed transfer JSON file [required]")
	_ = cmd.MarkFlagRequired("transfer")

	return cmd
}

func newFingerprintCmd(a *app) *cobra.Command {
	var (
		publicKey     string
		publicKeyFile string
	)

	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the fingerprint and key ID of a public key",
		Long: `Print the short fingerprint (first 10 bytes of the SHA-256 of the key text) used in logs
and the RFC 7638 thumbprint key ID of a public key.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			publicKeyHex, err := keyInput("public-key", publicKey, publicKeyFile)
			if err != nil {
				return err
			}

			keyID, err := crypto.KeyIDFromPublicKeyHex(publicKeyHex)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "fingerprint: %s\nkey_id:      %s\n", crypto.Fingerprint(publicKeyHex), keyID)
			return err
		},
	}

	cmd.Flags().StringVar(&publicKey, "public-key", "", "Public key (hex)")
	cmd.Flags().StringVar(&publicKeyFile, "public-key-file", "", "File containing the public key (hex)")

	return cmd
}
