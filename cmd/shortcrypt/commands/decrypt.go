package commands

import (
	"fmt"

	"github.com/opaquekit/shortcrypt"
	"github.com/spf13/cobra"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt <token>",
	Short: "Recover the plaintext behind a transport token",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecrypt,
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	keyBytes, err := cfg.ResolveKey()
	if err != nil {
		return err
	}
	sc := shortcrypt.New(keyBytes)

	token := args[0]
	var plaintext []byte
	switch cfg.Transport {
	case "qr":
		plaintext, err = sc.DecryptQR(token)
	case "url":
		plaintext, err = sc.DecryptURL(token)
	default:
		return fmt.Errorf("shortcrypt: unknown transport %q, want url or qr", cfg.Transport)
	}
	if err != nil {
		log.Error("decrypt failed", "request_id", cliRequestID(), "transport", cfg.Transport, "error", err)
		return err
	}

	log.Info("decrypted", "request_id", cliRequestID(), "transport", cfg.Transport, "output_len", len(plaintext))
	fmt.Fprintln(cmd.OutOrStdout(), string(plaintext))
	return nil
}
