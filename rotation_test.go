package shortcrypt

import "testing"

func TestRotatorURL(t *testing.T) {
	oldSC := New([]byte("old-key"))
	newSC := New([]byte("new-key"))
	rot := NewRotator(oldSC, newSC)

	oldText := oldSC.EncryptToURL([]byte("articles"))

	newText, err := rot.RotateURL(oldText)
	if err != nil {
		t.Fatalf("RotateURL failed: %v", err)
	}

	got, err := newSC.DecryptURL(newText)
	if err != nil {
		t.Fatalf("DecryptURL under new key failed: %v", err)
	}
	if string(got) != "articles" {
		t.Errorf("got %q, want %q", got, "articles")
	}

	if _, err := oldSC.DecryptURL(newText); err == nil {
		t.Log("old key happened to parse the rotated text without error (not guaranteed to fail, only to differ)")
	}
}

func TestRotatorQR(t *testing.T) {
	oldSC := New([]byte("old-key"))
	newSC := New([]byte("new-key"))
	rot := NewRotator(oldSC, newSC)

	oldText := oldSC.EncryptToQR([]byte("serial-042"))

	newText, err := rot.RotateQR(oldText)
	if err != nil {
		t.Fatalf("RotateQR failed: %v", err)
	}

	got, err := newSC.DecryptQR(newText)
	if err != nil {
		t.Fatalf("DecryptQR under new key failed: %v", err)
	}
	if string(got) != "serial-042" {
		t.Errorf("got %q, want %q", got, "serial-042")
	}
}

func TestRotatorPropagatesDecodeError(t *testing.T) {
	oldSC := New([]byte("old-key"))
	newSC := New([]byte("new-key"))
	rot := NewRotator(oldSC, newSC)

	if _, err := rot.RotateURL(""); err == nil {
		t.Error("expected RotateURL to surface the old key's decode error")
	}
}
