package shortcrypt

import (
	"testing"

	"github.com/absfs/memfs"
)

func TestWriteReadBatchFileRoundTrip(t *testing.T) {
	fs, err := memfs.NewFS()
	if err != nil {
		t.Fatalf("memfs.NewFS failed: %v", err)
	}

	sc := New([]byte("magickey"))
	texts := []string{
		sc.EncryptToURL([]byte("articles")),
		sc.EncryptToURL([]byte("widgets")),
		sc.EncryptToURL([]byte("")),
	}

	if err := WriteBatchFile(fs, "/batch.scb", TransportURL, texts); err != nil {
		t.Fatalf("WriteBatchFile failed: %v", err)
	}

	kind, got, err := ReadBatchFile(fs, "/batch.scb")
	if err != nil {
		t.Fatalf("ReadBatchFile failed: %v", err)
	}
	if kind != TransportURL {
		t.Errorf("kind = %v, want TransportURL", kind)
	}
	if len(got) != len(texts) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(texts))
	}
	for i := range texts {
		if got[i] != texts[i] {
			t.Errorf("record %d = %q, want %q", i, got[i], texts[i])
		}
	}
}

func TestWriteReadBatchFileEmpty(t *testing.T) {
	fs, err := memfs.NewFS()
	if err != nil {
		t.Fatalf("memfs.NewFS failed: %v", err)
	}

	if err := WriteBatchFile(fs, "/empty.scb", TransportQR, nil); err != nil {
		t.Fatalf("WriteBatchFile failed: %v", err)
	}

	kind, got, err := ReadBatchFile(fs, "/empty.scb")
	if err != nil {
		t.Fatalf("ReadBatchFile failed: %v", err)
	}
	if kind != TransportQR {
		t.Errorf("kind = %v, want TransportQR", kind)
	}
	if len(got) != 0 {
		t.Errorf("len(got) = %d, want 0", len(got))
	}
}

func TestReadBatchFileRejectsBadMagic(t *testing.T) {
	fs, err := memfs.NewFS()
	if err != nil {
		t.Fatalf("memfs.NewFS failed: %v", err)
	}

	f, err := fs.Create("/bad.scb")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := f.Write([]byte("not a batch file at all")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	f.Close()

	if _, _, err := ReadBatchFile(fs, "/bad.scb"); err == nil {
		t.Error("expected an error for a file with a bad magic header")
	}
}

func TestReadBatchFileMissing(t *testing.T) {
	fs, err := memfs.NewFS()
	if err != nil {
		t.Fatalf("memfs.NewFS failed: %v", err)
	}
	if _, _, err := ReadBatchFile(fs, "/does-not-exist.scb"); err == nil {
		t.Error("expected an error opening a missing file")
	}
}
