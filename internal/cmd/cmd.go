package cmd

import (
	"os"

	"github.com/b2network/b2-hdkey/internal/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func Execute() {
	err := rootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var cfg config.Config
	rootCmd := &cobra.Command{
		Use:           "b2-hdkey",
		Short:         "b2 hd keys",
		Long:          "b2-hdkey derives BIP32 hierarchical deterministic keys and addresses from a seed",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.LoadConfig()
			if err != nil {
				return err
			}
			level, err := log.ParseLevel(loaded.LogLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			log.SetOutput(cmd.ErrOrStderr())
			cfg = *loaded
			return nil
		},
	}

	rootCmd.AddCommand(mnemonicCmd())
	rootCmd.AddCommand(masterCmd(&cfg))
	rootCmd.AddCommand(deriveCmd(&cfg))
	rootCmd.AddCommand(neuterCmd())
	rootCmd.AddCommand(inspectCmd())
	rootCmd.AddCommand(addressCmd(&cfg))
	rootCmd.AddCommand(genMultiScript(&cfg))

	return rootCmd
}
