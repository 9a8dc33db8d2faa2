package shortcrypt

import (
	"encoding/hex"
	"testing"
)

func TestNewKeySchedule(t *testing.T) {
	ks := NewKeySchedule([]byte("magickey"))

	wantHashedKey := "b1e7322f91b2aac5"
	if got := hex.EncodeToString(ks.hashedKey[:]); got != wantHashedKey {
		t.Errorf("hashedKey = %s, want %s", got, wantHashedKey)
	}

	const wantKeySumRev uint64 = 5962765906638536704
	if ks.keySumRev != wantKeySumRev {
		t.Errorf("keySumRev = %d, want %d", ks.keySumRev, wantKeySumRev)
	}
}

func TestNewKeyScheduleEmptyKey(t *testing.T) {
	// Must not panic and must be deterministic.
	a := NewKeySchedule(nil)
	b := NewKeySchedule([]byte{})
	if a.hashedKey != b.hashedKey || a.keySumRev != b.keySumRev {
		t.Error("NewKeySchedule(nil) and NewKeySchedule([]byte{}) must derive identically")
	}
}

func TestBitReverse64(t *testing.T) {
	cases := []struct {
		in, want uint64
	}{
		{0, 0},
		{1, 1 << 63},
		{1 << 63, 1},
		{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF},
	}
	for _, c := range cases {
		if got := bitReverse64(c.in); got != c.want {
			t.Errorf("bitReverse64(%#x) = %#x, want %#x", c.in, got, c.want)
		}
	}
}
