// Package cli implements the custody command line tool.
//
// The commands wrap the custody package: generate identities, compute record IDs, sign and verify transfer
// records. Keys are read from flags or from files supplied by the user and results are written to stdout.
// The tool never writes key files itself.
package cli

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/information-sharing-networks/custody-demo/internal/config"
	"github.com/information-sharing-networks/custody-demo/internal/custody"
	"github.com/information-sharing-networks/custody-demo/internal/logger"
	"github.com/information-sharing-networks/custody-demo/internal/version"
)

// app holds the state shared by the commands of one invocation
type app struct {
	cfg       *config.ServerEnvironment
	appLogger *slog.Logger
	generator custody.KeyGenerator
}

func (a *app) limits() custody.Limits {
	return custody.Limits{
		MaxDescriptionLength: a.cfg.MaxDescriptionLength,
		MaxKeyLength:         a.cfg.MaxKeyLength,
	}
}

// NewRootCommand returns the custody root command with all subcommands attached
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:               "custody",
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		Short:             "Chain-of-custody transfer records",
		Long: `custody creates and checks signed chain-of-custody transfer records.

A transfer record names the current custodian, the new custodian and the item being handed over.
The current custodian signs it with their private key; anyone with the public key can verify it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a.cfg, err = config.NewCLIConfig()
			if err != nil {
				log.Printf("failed to load configuration: %v", err.Error())
				return err
			}

			a.appLogger = logger.InitLogger(logger.ParseLogLevel(a.cfg.LogLevel), a.cfg.Environment)
			return nil
		},
	}

	v := version.Get()
	rootCmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	rootCmd.AddCommand(newKeygenCmd(a))
	rootCmd.AddCommand(newRecordIDCmd(a))
	rootCmd.AddCommand(newSignCmd(a))
	rootCmd.AddCommand(newVerifyCmd(a))
	rootCmd.AddCommand(newFingerprintCmd(a))

	return rootCmd
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
