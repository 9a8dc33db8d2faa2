package shortcrypt

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/absfs/absfs"
)

// TransportKind selects which transport a batch file's records were encoded
// with.
type TransportKind uint8

const (
	// TransportURL records were produced by EncryptToURL.
	TransportURL TransportKind = iota
	// TransportQR records were produced by EncryptToQR.
	TransportQR
)

const (
	// batchMagic identifies shortcrypt batch files (ASCII "SCBF").
	batchMagic = uint32(0x53434246)

	// batchHeaderSize is the fixed header size: 4 bytes magic + 1 byte
	// version + 1 byte transport kind + 4 bytes record count.
	batchHeaderSize = 10

	batchVersion = uint8(1)
)

// batchHeader is the fixed-size header at the start of a batch file,
// grounded in the teacher's file_format.go FileHeader.
type batchHeader struct {
	Magic     uint32
	Version   uint8
	Transport TransportKind
	Count     uint32
}

func (h *batchHeader) writeTo(w io.Writer) error {
	var buf [batchHeaderSize]byte
	binary.BigEndian.PutUint32(buf[0:4], h.Magic)
	buf[4] = h.Version
	buf[5] = byte(h.Transport)
	binary.BigEndian.PutUint32(buf[6:10], h.Count)
	_, err := w.Write(buf[:])
	return err
}

func readBatchHeader(r io.Reader) (*batchHeader, error) {
	var buf [batchHeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, fmt.Errorf("shortcrypt: read batch header: %w", err)
	}
	h := &batchHeader{
		Magic:     binary.BigEndian.Uint32(buf[0:4]),
		Version:   buf[4],
		Transport: TransportKind(buf[5]),
		Count:     binary.BigEndian.Uint32(buf[6:10]),
	}
	if h.Magic != batchMagic {
		return nil, fmt.Errorf("shortcrypt: not a batch file (bad magic)")
	}
	if h.Version != batchVersion {
		return nil, fmt.Errorf("shortcrypt: unsupported batch file version %d", h.Version)
	}
	return h, nil
}

// WriteBatchFile writes texts (already-encoded transport strings) to path
// on fs as a length-prefixed binary container: a fixed header followed by
// one 4-byte big-endian length plus UTF-8 bytes per record. It operates
// over an absfs.FileSystem so it runs unmodified against the real OS
// filesystem or an in-memory one in tests, exactly as the teacher's own
// suite swaps absfs/memfs in for absfs/absfs.
func WriteBatchFile(fs absfs.FileSystem, path string, kind TransportKind, texts []string) error {
	f, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("shortcrypt: open batch file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	header := &batchHeader{Magic: batchMagic, Version: batchVersion, Transport: kind, Count: uint32(len(texts))}
	if err := header.writeTo(w); err != nil {
		return fmt.Errorf("shortcrypt: write batch header: %w", err)
	}

	var lenBuf [4]byte
	for _, text := range texts {
		binary.BigEndian.PutUint32(lenBuf[:], uint32(len(text)))
		if _, err := w.Write(lenBuf[:]); err != nil {
			return fmt.Errorf("shortcrypt: write record length: %w", err)
		}
		if _, err := w.WriteString(text); err != nil {
			return fmt.Errorf("shortcrypt: write record: %w", err)
		}
	}

	return w.Flush()
}

// ReadBatchFile reads a batch file written by WriteBatchFile, returning its
// transport kind and the encoded texts it holds.
func ReadBatchFile(fs absfs.FileSystem, path string) (TransportKind, []string, error) {
	f, err := fs.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return 0, nil, fmt.Errorf("shortcrypt: open batch file: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	header, err := readBatchHeader(r)
	if err != nil {
		return 0, nil, err
	}

	texts := make([]string, 0, header.Count)
	var lenBuf [4]byte
	for i := uint32(0); i < header.Count; i++ {
		if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
			return 0, nil, fmt.Errorf("shortcrypt: read record length: %w", err)
		}
		n := binary.BigEndian.Uint32(lenBuf[:])
		record := make([]byte, n)
		if _, err := io.ReadFull(r, record); err != nil {
			return 0, nil, fmt.Errorf("shortcrypt: read record: %w", err)
		}
		texts = append(texts, string(record))
	}

	return header.Transport, texts, nil
}
