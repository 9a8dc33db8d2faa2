package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/opaquekit/shortcrypt"
	"github.com/spf13/cobra"
)

var rotateNewKey string
var rotateNewKeyFile string

var rotateCmd = &cobra.Command{
	Use:   "rotate <token>",
	Short: "Re-encode a token issued under an old key to the new key",
	Long: `rotate decrypts token under the key given by --key/--key-file (the old
key) and re-encrypts the recovered plaintext under --new-key/--new-key-file,
without the plaintext ever appearing in the command's output.`,
	Args: cobra.ExactArgs(1),
	RunE: runRotate,
}

func init() {
	rotateCmd.Flags().StringVar(&rotateNewKey, "new-key", "", "raw obfuscation key to rotate to")
	rotateCmd.Flags().StringVar(&rotateNewKeyFile, "new-key-file", "", "path to a file holding the new obfuscation key")
}

func runRotate(cmd *cobra.Command, args []string) error {
	oldKey, err := cfg.ResolveKey()
	if err != nil {
		return err
	}
	newKey, err := resolveNewKey()
	if err != nil {
		return err
	}

	rot := shortcrypt.NewRotator(shortcrypt.New(oldKey), shortcrypt.New(newKey))

	token := args[0]
	var rotated string
	switch cfg.Transport {
	case "qr":
		rotated, err = rot.RotateQR(token)
	case "url":
		rotated, err = rot.RotateURL(token)
	default:
		return fmt.Errorf("shortcrypt: unknown transport %q, want url or qr", cfg.Transport)
	}
	if err != nil {
		log.Error("rotate failed", "request_id", cliRequestID(), "transport", cfg.Transport, "error", err)
		return err
	}

	log.Info("rotated", "request_id", cliRequestID(), "transport", cfg.Transport)
	fmt.Fprintln(cmd.OutOrStdout(), rotated)
	return nil
}

func resolveNewKey() ([]byte, error) {
	if rotateNewKey != "" && rotateNewKeyFile != "" {
		return nil, fmt.Errorf("shortcrypt: --new-key and --new-key-file are mutually exclusive")
	}
	if rotateNewKey != "" {
		return []byte(rotateNewKey), nil
	}
	if rotateNewKeyFile != "" {
		data, err := os.ReadFile(rotateNewKeyFile)
		if err != nil {
			return nil, fmt.Errorf("shortcrypt: read new key file: %w", err)
		}
		return []byte(strings.TrimSuffix(string(data), "\n")), nil
	}
	return nil, fmt.Errorf("shortcrypt: one of --new-key or --new-key-file is required")
}
