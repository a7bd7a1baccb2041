package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/b2network/b2-hdkey/internal/btc"
	"github.com/b2network/b2-hdkey/internal/config"
	"github.com/b2network/b2-hdkey/internal/crypto/bip32"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func genMultiScript(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "multi",
		Short: "gen btc multisig address & script",
		Long:  "gen btc multisig address & script, eg: multi -n 2 -x \"xpub1,xpub2,xpub3\" -d m/0/0",
		RunE: func(cmd *cobra.Command, _ []string) error {
			signNum, err := cmd.Flags().GetInt("signum")
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("signum") {
				signNum = cfg.MultisigRequired
			}
			xpubStr, err := cmd.Flags().GetString("xpubs")
			if err != nil {
				return err
			}
			derive, err := cmd.Flags().GetString("derive")
			if err != nil {
				return err
			}
			path, err := bip32.ParsePath(derive)
			if err != nil {
				return err
			}
			var xkeys []*bip32.ExtendedKey
			for _, xpub := range strings.Split(xpubStr, ",") {
				xpub = strings.TrimSpace(xpub)
				if xpub == "" {
					continue
				}
				xkey, err := bip32.ParseKey(xpub)
				if err != nil {
					return fmt.Errorf("parse %q err: %w", xpub, err)
				}
				xkeys = append(xkeys, xkey)
			}
			address, script, err := btc.GenerateMultiSigScript(xkeys, path, signNum)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{"signum": signNum, "keys": len(xkeys), "path": path}).Info("multisig generated")
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "multisig address:", address)
			fmt.Fprintln(out, "multisig script:", hex.EncodeToString(script))
			return nil
		},
	}
	cmd.Flags().IntP("signum", "n", 1, "min sig num (default $HDKEY_MULTISIG_REQUIRED)")
	cmd.Flags().StringP("xpubs", "x", "", "sign xpub eg: \"xpub1, xpub2, xpub3\"")
	cmd.Flags().StringP("derive", "d", "m", "path derived under every xpub")
	return cmd
}
