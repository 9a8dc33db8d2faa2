// Package commands implements the shortcrypt CLI's subcommands.
package commands

import (
	"log/slog"

	"github.com/opaquekit/shortcrypt/internal/cliutil"
	"github.com/opaquekit/shortcrypt/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	key       string
	keyFile   string
	transport string
	workers   int
	logLevel  string
	logFormat string

	cfg *config.Config
	log *slog.Logger
)

// rootCmd is the base command when shortcrypt is called without a
// subcommand.
var rootCmd = &cobra.Command{
	Use:   "shortcrypt",
	Short: "Obfuscate and recover short identifiers for URLs and QR codes",
	Long: `shortcrypt turns short plaintexts (numeric ids, slugs, serial numbers)
into same-length-class obfuscated tokens suitable for embedding in a URL path
or a QR code, and back again under the same key.

It is not a cryptographically secure cipher: it is meant to discourage casual
tampering and hide structure, not to protect data an attacker must not recover.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := viper.New()
		if err := v.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
			return err
		}

		loaded, err := config.Load(v, cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
		log = cliutil.NewLogger(cfg.LogLevel, cfg.LogFormat)
		return nil
	},
}

// Execute runs the root command. It is called once from main.main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&key, "key", "", "raw obfuscation key")
	rootCmd.PersistentFlags().StringVar(&keyFile, "key-file", "", "path to a file holding the raw obfuscation key")
	rootCmd.PersistentFlags().StringVar(&transport, "transport", "url", "transport encoding: url or qr")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "batch worker count (0 = NumCPU)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "INFO", "log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(rotateCmd)
	rootCmd.AddCommand(batchCmd)
}
