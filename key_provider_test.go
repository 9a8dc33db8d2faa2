package shortcrypt

import (
	"bytes"
	"testing"
)

func TestRawKeySource(t *testing.T) {
	src := RawKeySource("magickey")
	key, err := src.DeriveKey()
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	if !bytes.Equal(key, []byte("magickey")) {
		t.Errorf("DeriveKey() = %q, want %q", key, "magickey")
	}
}

func TestPasswordKeySourceArgon2idDeterministic(t *testing.T) {
	salt := []byte("fixed-salt-value")
	src := NewPasswordKeySource([]byte("hunter2"), salt, Argon2idParams{})

	k1, err := src.DeriveKey()
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	k2, err := src.DeriveKey()
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	if !bytes.Equal(k1, k2) {
		t.Error("DeriveKey is not deterministic for a fixed password and salt")
	}
	if len(k1) != 32 {
		t.Errorf("len(key) = %d, want default 32", len(k1))
	}
}

func TestPasswordKeySourcePBKDF2Deterministic(t *testing.T) {
	salt := []byte("fixed-salt-value")
	src := NewPasswordKeySourcePBKDF2([]byte("hunter2"), salt, PBKDF2Params{})

	k1, err := src.DeriveKey()
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	k2, err := src.DeriveKey()
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	if !bytes.Equal(k1, k2) {
		t.Error("DeriveKey is not deterministic for a fixed password and salt")
	}
}

func TestPasswordKeySourceDifferentSaltsDifferentKeys(t *testing.T) {
	a := NewPasswordKeySource([]byte("hunter2"), []byte("salt-a"), Argon2idParams{})
	b := NewPasswordKeySource([]byte("hunter2"), []byte("salt-b"), Argon2idParams{})

	ka, err := a.DeriveKey()
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	kb, err := b.DeriveKey()
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	if bytes.Equal(ka, kb) {
		t.Error("different salts produced the same derived key")
	}
}

func TestPasswordKeySourceRejectsEmptyInputs(t *testing.T) {
	if _, err := NewPasswordKeySource(nil, []byte("salt"), Argon2idParams{}).DeriveKey(); err == nil {
		t.Error("expected an error for an empty password")
	}
	if _, err := NewPasswordKeySource([]byte("pw"), nil, Argon2idParams{}).DeriveKey(); err == nil {
		t.Error("expected an error for an empty salt")
	}
}

func TestNewFromSource(t *testing.T) {
	sc, err := NewFromSource(RawKeySource("magickey"))
	if err != nil {
		t.Fatalf("NewFromSource failed: %v", err)
	}
	got := sc.EncryptToURL([]byte("articles"))
	if got != "2E87Wx52-Tvo" {
		t.Errorf("EncryptToURL = %q, want %q", got, "2E87Wx52-Tvo")
	}
}
