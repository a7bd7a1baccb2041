package cmd

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/b2network/b2-hdkey/internal/config"
	"github.com/b2network/b2-hdkey/internal/crypto/bip32"
	"github.com/b2network/b2-hdkey/internal/logic"
	"github.com/b2network/b2-hdkey/internal/seed"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func mnemonicCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mnemonic",
		Short: "generate a new bip39 mnemonic",
		RunE: func(cmd *cobra.Command, _ []string) error {
			bits, err := cmd.Flags().GetInt("bits")
			if err != nil {
				return err
			}
			mnemonic, err := seed.NewMnemonic(bits)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), mnemonic)
			return nil
		},
	}
	cmd.Flags().IntP("bits", "b", 256, "entropy bits (128-256, multiple of 32)")
	return cmd
}

func masterCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "master",
		Short: "print the master extended keys of a seed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := readSeed(cmd)
			if err != nil {
				return err
			}
			svc, err := logic.NewKeygenService(cfg, s)
			if err != nil {
				return err
			}
			printKey(cmd.OutOrStdout(), svc.Root())
			return nil
		},
	}
	addSeedFlags(cmd)
	return cmd
}

func deriveCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "derive an extended key along a path",
		Long:  "derive an extended key along a path, eg: derive -k xprv... -d \"m/44'/0'/0'\"",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := keygenService(cmd, cfg)
			if err != nil {
				return err
			}
			derive, err := cmd.Flags().GetString("derive")
			if err != nil {
				return err
			}
			account, err := svc.Account(derive)
			if err != nil {
				return err
			}
			log.WithField("path", account.Path).Info("derived key")
			out := cmd.OutOrStdout()
			printKey(out, account.Key)
			printAccount(out, account)
			return nil
		},
	}
	addSeedFlags(cmd)
	cmd.Flags().StringP("key", "k", "", "extended key to derive from instead of a seed")
	cmd.Flags().StringP("derive", "d", "", "derive path (default $HDKEY_DERIVE_PATH)")
	return cmd
}

func neuterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "neuter <xprv>",
		Short: "convert an extended private key to its extended public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := bip32.ParseKey(strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), key.Public())
			return nil
		},
	}
}

func inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <xkey>",
		Short: "decode an extended key and print its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := bip32.ParseKey(strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			version := key.Version()
			parentFP := key.ParentFingerprint()
			fp := key.Fingerprint()
			chainCode := key.ChainCode()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "network:            %s\n", key.Network())
			fmt.Fprintf(out, "version:            %s\n", hex.EncodeToString(version[:]))
			fmt.Fprintf(out, "private:            %t\n", key.IsPrivate())
			fmt.Fprintf(out, "depth:              %d\n", key.Depth())
			fmt.Fprintf(out, "parent fingerprint: %s\n", hex.EncodeToString(parentFP[:]))
			fmt.Fprintf(out, "child index:        %d\n", key.ChildIndex())
			fmt.Fprintf(out, "hardened:           %t\n", key.IsHardened())
			fmt.Fprintf(out, "fingerprint:        %s\n", hex.EncodeToString(fp[:]))
			fmt.Fprintf(out, "chain code:         %s\n", hex.EncodeToString(chainCode[:]))
			fmt.Fprintf(out, "public key:         %s\n", hex.EncodeToString(key.PublicKeyBytes()))

			parentStr, err := cmd.Flags().GetString("parent")
			if err != nil {
				return err
			}
			if parentStr != "" {
				parent, err := bip32.ParseKey(strings.TrimSpace(parentStr))
				if err != nil {
					return fmt.Errorf("parse parent err: %w", err)
				}
				fmt.Fprintf(out, "child of parent:    %t\n", key.IsChildOf(parent))
			}
			return nil
		},
	}
	cmd.Flags().StringP("parent", "p", "", "extended key to check as the direct parent")
	return cmd
}

func addressCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "derive a range of addresses below a base path",
		Long:  "derive a range of addresses below a base path, eg: address -k xpub... -d m/0 -s 0 -n 20",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := keygenService(cmd, cfg)
			if err != nil {
				return err
			}
			base, err := cmd.Flags().GetString("derive")
			if err != nil {
				return err
			}
			start, err := cmd.Flags().GetUint32("start")
			if err != nil {
				return err
			}
			count, err := cmd.Flags().GetInt("count")
			if err != nil {
				return err
			}
			accounts, err := svc.Accounts(cmd.Context(), base, start, count)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, account := range accounts {
				fmt.Fprintf(out, "%s %s %s %s %s\n", account.Path, account.P2PKH, account.P2WPKH, account.Eth, account.Bech32)
			}
			return nil
		},
	}
	addSeedFlags(cmd)
	cmd.Flags().StringP("key", "k", "", "extended key to derive from instead of a seed")
	cmd.Flags().StringP("derive", "d", "m/44'/0'/0'/0", "base path")
	cmd.Flags().Uint32P("start", "s", 0, "first child index")
	cmd.Flags().IntP("count", "n", 10, "number of addresses")
	return cmd
}

func addSeedFlags(cmd *cobra.Command) {
	cmd.Flags().String("seed", "", "hex seed instead of a mnemonic")
	cmd.Flags().String("passphrase", "", "mnemonic passphrase when reading the mnemonic from stdin")
}

// keygenService roots the service at --key when given, else at the seed.
func keygenService(cmd *cobra.Command, cfg *config.Config) (*logic.KeygenService, error) {
	xkey, err := cmd.Flags().GetString("key")
	if err != nil {
		return nil, err
	}
	if xkey != "" {
		root, err := bip32.ParseKey(strings.TrimSpace(xkey))
		if err != nil {
			return nil, err
		}
		return logic.NewKeygenServiceFromKey(cfg, root), nil
	}
	s, err := readSeed(cmd)
	if err != nil {
		return nil, err
	}
	return logic.NewKeygenService(cfg, s)
}

// readSeed takes --seed, or prompts for a mnemonic on a terminal, or reads
// one line from stdin.
func readSeed(cmd *cobra.Command) ([]byte, error) {
	seedHex, err := cmd.Flags().GetString("seed")
	if err != nil {
		return nil, err
	}
	if seedHex != "" {
		return seed.FromHex(seedHex)
	}

	var mnemonic, mnemonicPass string
	if cmd.InOrStdin() == os.Stdin && term.IsTerminal(int(syscall.Stdin)) {
		fmt.Fprint(cmd.ErrOrStderr(), "Enter mnemonic: ")
		mnemonicStdin, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(cmd.ErrOrStderr())
		mnemonic = string(mnemonicStdin)
		fmt.Fprint(cmd.ErrOrStderr(), "Enter mnemonic password: ")
		password, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(cmd.ErrOrStderr())
		mnemonicPass = string(password)
	} else {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		mnemonic = line
		mnemonicPass, err = cmd.Flags().GetString("passphrase")
		if err != nil {
			return nil, err
		}
	}
	return seed.FromMnemonic(mnemonic, mnemonicPass)
}

func printKey(out io.Writer, key *bip32.ExtendedKey) {
	if key.IsPrivate() {
		fmt.Fprintf(out, "xprv: %s\n", key)
	}
	fmt.Fprintf(out, "xpub: %s\n", key.Public())
}

func printAccount(out io.Writer, account *logic.Account) {
	fmt.Fprintf(out, "path: %s\n", account.Path)
	fmt.Fprintf(out, "p2pkh: %s\n", account.P2PKH)
	fmt.Fprintf(out, "p2wpkh: %s\n", account.P2WPKH)
	fmt.Fprintf(out, "eth: %s\n", account.Eth)
	fmt.Fprintf(out, "bech32: %s\n", account.Bech32)
}
