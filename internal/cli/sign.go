package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/information-sharing-networks/custody-demo/internal/crypto"
	"github.com/information-sharing-networks/custody-demo/internal/custody"
)

// signedTransferOutput is written by sign
type signedTransferOutput struct {
	custody.SignedTransfer
	RecordID string `json:"record_id"`
	Checksum string `json:"checksum"`
}

func newSignCmd(a *app) *cobra.Command {
	var (
		privateKey     string
		privateKeyFile string
		to             string
		toFile         string
		description    string
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a transfer record",
		Long: `Build a transfer record from your private key, the new custodian's public key and an item
description, sign it and print the signed transfer as JSON.

The current custodian is the public key of --private-key.

Example:
  custody sign --private-key-file a.key --to-file b.pub \
    --description "CASE123-DRIVE01, seized from suspect PC, sent to forensic lab"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			privateKeyHex, err := keyInput("private-key", privateKey, privateKeyFile)
			if err != nil {
				return err
			}
			recipient, err := keyInput("to", to, toFile)
			if err != nil {
				return err
			}

			sender, err := crypto.PublicKeyHexFromPrivate(privateKeyHex)
			if err != nil {
				return err
			}

			rec, err := a.limits().BuildRecord(sender, recipient, description)
			if err != nil {
				return err
			}

			st, err := custody.SignTransfer(privateKeyHex, rec)
			if err != nil {
				return err
			}

			recordID, err := custody.RecordID(rec)
			if err != nil {
				return err
			}
			checksum, err := st.Checksum()
			if err != nil {
				return err
			}

			a.appLogger.Debug("transfer signed",
				slog.String("sender", crypto.Fingerprint(sender)),
				slog.String("recipient", crypto.Fingerprint(recipient)),
				slog.String("record_id", recordID.String()),
			)

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(signedTransferOutput{
				SignedTransfer: st,
				RecordID:       recordID.String(),
				Checksum:       checksum,
			})
		},
	}

	cmd.Flags().StringVar(&privateKey, "private-key", "", "Current custodian private key (hex)")
	cmd.Flags().StringVar(&privateKeyFile, "private-key-file", "", "File containing the current custodian private key (hex)")
	cmd.Flags().StringVar(&to, "to", "", "New custodian public key (hex)")
	cmd.Flags().StringVar(&toFile, "to-file", "", "File containing the new custodian public key (hex)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Item description and reason for the transfer [required]")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

func newRecordIDCmd(a *app) *cobra.Command {
	var (
		from        string
		fromFile    string
		to          string
		toFile      string
		description string
	)

	cmd := &cobra.Command{
		Use:   "record-id",
		Short: "Print the content identifier of a transfer record",
		Long: `Print the CIDv1 (raw, sha2-256) of the canonical encoding of a transfer record.

The ID depends only on the record, not on the signature, so every party computes the same value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := keyInput("from", from, fromFile)
			if err != nil {
				return err
			}
			recipient, err := keyInput("to", to, toFile)
			if err != nil {
				return err
			}

			rec, err := a.limits().BuildRecord(current, recipient, description)
			if err != nil {
				return err
			}

			id, err := custody.RecordID(rec)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), id.String())
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Current custodian public key (hex)")
	cmd.Flags().StringVar(&fromFile, "from-file", "", "File containing the current custodian public key (hex)")
	cmd.Flags().StringVar(&to, "to", "", "New custodian public key (hex)")
	cmd.Flags().StringVar(&toFile, "to-file", "", "File containing the new custodian public key (hex)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Item description [required]")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}
