package shortcrypt

import "encoding/binary"

// Encrypt implements the core keyed XOR-plus-permutation transform (spec
// §4.2). It returns a base nibble in [0, 31] and a body the same length as
// plaintext. Encrypt never fails.
func (ks *KeySchedule) Encrypt(plaintext []byte) (base byte, body []byte) {
	n := len(plaintext)

	base = crc8CDMA2000(plaintext) % 32

	body = make([]byte, n)
	m := base
	sum := uint64(base)
	for i := 0; i < n; i++ {
		offset := ks.hashedKey[i%8] ^ base
		body[i] = plaintext[i] ^ offset
		m ^= body[i]
		sum += uint64(body[i])
	}

	path := ks.computePath(m, sum, n)
	for i := 0; i < n; i++ {
		if i != path[i] {
			body[i], body[path[i]] = body[path[i]], body[i]
		}
	}

	return base, body
}

// Decrypt inverts Encrypt (spec §4.3). It returns ErrInvalidBase (wrapped as
// *InvalidBaseError) when base exceeds 31; otherwise it always succeeds,
// producing garbage plaintext of the original length if the key or body do
// not match what Encrypt produced. There is no integrity check.
func (ks *KeySchedule) Decrypt(base byte, body []byte) ([]byte, error) {
	if base > 31 {
		return nil, &InvalidBaseError{Base: base}
	}

	n := len(body)
	m := base
	sum := uint64(base)
	for i := 0; i < n; i++ {
		m ^= body[i]
		sum += uint64(body[i])
	}

	path := ks.computePath(m, sum, n)

	w := make([]byte, n)
	copy(w, body)
	for i := n - 1; i >= 0; i-- {
		if i != path[i] {
			w[i], w[path[i]] = w[path[i]], w[i]
		}
	}

	plaintext := make([]byte, n)
	for i := 0; i < n; i++ {
		plaintext[i] = w[i] ^ (ks.hashedKey[i%8] ^ base)
	}

	return plaintext, nil
}

// computePath builds the length-n swap path used by both Encrypt and
// Decrypt (spec §4.2 step 5). It returns nil for n == 0: the permutation is
// a guarded no-op on empty input.
func (ks *KeySchedule) computePath(m byte, sum uint64, n int) []int {
	if n == 0 {
		return nil
	}

	var sumBE [8]byte
	binary.BigEndian.PutUint64(sumBE[:], sum)

	hInput := make([]byte, 0, 9)
	hInput = append(hInput, m)
	hInput = append(hInput, sumBE[:]...)
	h := crc64WE(hInput)

	var hBE [8]byte
	binary.BigEndian.PutUint64(hBE[:], h)

	path := make([]int, n)
	for i := 0; i < n; i++ {
		path[i] = int(hBE[i%8]^ks.hashedKey[i%8]) % n
	}
	return path
}
