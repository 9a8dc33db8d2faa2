package commands

import (
	"fmt"

	"github.com/opaquekit/shortcrypt"
	"github.com/spf13/cobra"
)

var encryptAppendPrefix string

var encryptCmd = &cobra.Command{
	Use:   "encrypt <plaintext>",
	Short: "Obfuscate a plaintext into a transport token",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncrypt,
}

func init() {
	encryptCmd.Flags().StringVar(&encryptAppendPrefix, "append-to", "", "prefix to append the token to, e.g. a base URL")
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	keyBytes, err := cfg.ResolveKey()
	if err != nil {
		return err
	}
	sc := shortcrypt.New(keyBytes)

	plaintext := args[0]
	var token string
	switch cfg.Transport {
	case "qr":
		if encryptAppendPrefix != "" {
			token = sc.EncryptToQRAppend([]byte(plaintext), encryptAppendPrefix)
		} else {
			token = sc.EncryptToQR([]byte(plaintext))
		}
	case "url":
		if encryptAppendPrefix != "" {
			token = sc.EncryptToURLAppend([]byte(plaintext), encryptAppendPrefix)
		} else {
			token = sc.EncryptToURL([]byte(plaintext))
		}
	default:
		return fmt.Errorf("shortcrypt: unknown transport %q, want url or qr", cfg.Transport)
	}

	log.Info("encrypted", "request_id", cliRequestID(), "transport", cfg.Transport, "input_len", len(plaintext), "output_len", len(token))
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
