package shortcrypt

import "encoding/binary"

// KeySchedule holds the values derived once from a caller-supplied key and
// reused by every encrypt/decrypt/transport call (spec §4.1). It is
// immutable after construction and holds no interior mutable state, so a
// single instance may be shared by any number of goroutines calling
// read-only methods concurrently (spec §5).
type KeySchedule struct {
	hashedKey [8]byte // big-endian CRC-64/WE of the key
	keySumRev uint64  // bit-reversed wrapping sum of the key's bytes
}

// NewKeySchedule derives a KeySchedule from raw key bytes. The key may be of
// any length, including empty.
func NewKeySchedule(key []byte) *KeySchedule {
	ks := &KeySchedule{}

	h := crc64WE(key)
	binary.BigEndian.PutUint64(ks.hashedKey[:], h)

	var sum uint64
	for _, b := range key {
		sum += uint64(b)
	}
	ks.keySumRev = bitReverse64(sum)

	return ks
}

// bitReverse64 reverses the bit ordering of v (bit i swaps with bit 63-i).
func bitReverse64(v uint64) uint64 {
	var out uint64
	for i := 0; i < 64; i++ {
		out <<= 1
		out |= v & 1
		v >>= 1
	}
	return out
}
