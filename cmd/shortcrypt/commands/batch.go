package commands

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/absfs/absfs"
	"github.com/opaquekit/shortcrypt"
	"github.com/spf13/cobra"
)

var (
	batchOutFile string
	batchInFile  string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Encrypt or decrypt many lines at once, in parallel",
}

var batchEncryptCmd = &cobra.Command{
	Use:   "encrypt <input-file>",
	Short: "Encrypt each line of input-file and write a batch container file",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatchEncrypt,
}

var batchDecryptCmd = &cobra.Command{
	Use:   "decrypt <batch-file>",
	Short: "Decrypt every record in a batch container file, one line per record",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatchDecrypt,
}

func init() {
	batchEncryptCmd.Flags().StringVar(&batchOutFile, "out", "", "output batch container file (required)")
	batchDecryptCmd.Flags().StringVar(&batchInFile, "out", "", "output text file for decrypted lines (default: stdout)")

	batchCmd.AddCommand(batchEncryptCmd)
	batchCmd.AddCommand(batchDecryptCmd)
}

func runBatchEncrypt(cmd *cobra.Command, args []string) error {
	if batchOutFile == "" {
		return fmt.Errorf("shortcrypt: --out is required")
	}
	keyBytes, err := cfg.ResolveKey()
	if err != nil {
		return err
	}
	sc := shortcrypt.New(keyBytes)

	lines, err := readLines(args[0])
	if err != nil {
		return err
	}

	plaintexts := make([][]byte, len(lines))
	for i, line := range lines {
		plaintexts[i] = []byte(line)
	}

	var (
		texts []string
		errs  []error
		kind  shortcrypt.TransportKind
	)
	switch cfg.Transport {
	case "qr":
		texts, errs = sc.BatchEncryptToQR(plaintexts, cfg.Workers)
		kind = shortcrypt.TransportQR
	case "url":
		texts, errs = sc.BatchEncryptToURL(plaintexts, cfg.Workers)
		kind = shortcrypt.TransportURL
	default:
		return fmt.Errorf("shortcrypt: unknown transport %q, want url or qr", cfg.Transport)
	}
	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("shortcrypt: line %d: %w", i+1, err)
		}
	}

	osfs := &realFS{}
	if err := shortcrypt.WriteBatchFile(osfs, batchOutFile, kind, texts); err != nil {
		return err
	}

	log.Info("batch encrypted", "request_id", cliRequestID(), "transport", cfg.Transport, "count", len(texts), "out", batchOutFile)
	return nil
}

func runBatchDecrypt(cmd *cobra.Command, args []string) error {
	keyBytes, err := cfg.ResolveKey()
	if err != nil {
		return err
	}
	sc := shortcrypt.New(keyBytes)

	osfs := &realFS{}
	kind, texts, err := shortcrypt.ReadBatchFile(osfs, args[0])
	if err != nil {
		return err
	}

	var (
		plaintexts [][]byte
		errs       []error
	)
	switch kind {
	case shortcrypt.TransportQR:
		plaintexts, errs = sc.BatchDecryptQR(texts, cfg.Workers)
	case shortcrypt.TransportURL:
		plaintexts, errs = sc.BatchDecryptURL(texts, cfg.Workers)
	default:
		return fmt.Errorf("shortcrypt: unrecognized transport kind %d in batch file", kind)
	}

	out := cmd.OutOrStdout()
	if batchInFile != "" {
		f, err := os.Create(batchInFile)
		if err != nil {
			return fmt.Errorf("shortcrypt: create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	failed := 0
	w := bufio.NewWriter(out)
	for i, plain := range plaintexts {
		if errs[i] != nil {
			log.Error("batch decrypt record failed", "request_id", cliRequestID(), "index", i, "error", errs[i])
			failed++
			continue
		}
		fmt.Fprintln(w, string(plain))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	log.Info("batch decrypted", "request_id", cliRequestID(), "count", len(texts), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("shortcrypt: %d of %d records failed to decrypt", failed, len(texts))
	}
	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("shortcrypt: open input file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("shortcrypt: read input file: %w", err)
	}
	return lines, nil
}

// realFS adapts the real OS filesystem to absfs.FileSystem, the same shim
// the teacher's own benchmark suite (osBenchFS) uses to run file-format code
// against a real filesystem instead of absfs/memfs.
type realFS struct{}

func (realFS) OpenFile(name string, flag int, perm os.FileMode) (absfs.File, error) {
	return os.OpenFile(name, flag, perm)
}

func (realFS) Mkdir(name string, perm os.FileMode) error    { return os.Mkdir(name, perm) }
func (realFS) MkdirAll(name string, perm os.FileMode) error { return os.MkdirAll(name, perm) }
func (realFS) Remove(name string) error                     { return os.Remove(name) }
func (realFS) RemoveAll(path string) error                  { return os.RemoveAll(path) }
func (realFS) Rename(oldpath, newpath string) error          { return os.Rename(oldpath, newpath) }
func (realFS) Stat(name string) (os.FileInfo, error)         { return os.Stat(name) }
func (realFS) Chmod(name string, mode os.FileMode) error     { return os.Chmod(name, mode) }
func (realFS) Chtimes(name string, atime, mtime time.Time) error {
	return os.Chtimes(name, atime, mtime)
}
func (realFS) Chown(name string, uid, gid int) error { return os.Chown(name, uid, gid) }
func (realFS) Separator() uint8                      { return os.PathSeparator }
func (realFS) ListSeparator() uint8                  { return os.PathListSeparator }
func (realFS) Chdir(dir string) error                { return nil }
func (realFS) Getwd() (string, error)                { return "/", nil }
func (realFS) TempDir() string                       { return os.TempDir() }

func (fs realFS) Open(name string) (absfs.File, error) {
	return fs.OpenFile(name, os.O_RDONLY, 0)
}

func (fs realFS) Create(name string) (absfs.File, error) {
	return fs.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0666)
}

func (realFS) Truncate(name string, size int64) error { return os.Truncate(name, size) }
