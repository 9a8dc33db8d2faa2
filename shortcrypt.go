package shortcrypt

// ShortCrypt is the library's handle: a key schedule derived once from a
// caller-supplied key, exposing the core transform (Encrypt/Decrypt) and
// the two transport encodings (spec §3's "Key handle"). It is immutable
// after construction and safe for concurrent use (spec §5).
type ShortCrypt struct {
	ks *KeySchedule
}

// New builds a ShortCrypt from a raw key byte string. The key may be of any
// length, including empty. This is the direct realization of spec §6's
// new(key_bytes).
func New(key []byte) *ShortCrypt {
	return &ShortCrypt{ks: NewKeySchedule(key)}
}

// NewFromSource builds a ShortCrypt from a KeySource, deriving the raw key
// bytes however src sees fit (see KeySource, RawKeySource, PasswordKeySource).
func NewFromSource(src KeySource) (*ShortCrypt, error) {
	key, err := src.DeriveKey()
	if err != nil {
		return nil, err
	}
	return New(key), nil
}

// Encrypt runs the core keyed transform and returns the base nibble and
// body (spec §4.2). Encrypt never fails.
func (sc *ShortCrypt) Encrypt(plaintext []byte) (base byte, body []byte) {
	return sc.ks.Encrypt(plaintext)
}

// Decrypt inverts Encrypt (spec §4.3). It returns ErrInvalidBase, wrapped as
// *InvalidBaseError, when base exceeds 31.
func (sc *ShortCrypt) Decrypt(base byte, body []byte) ([]byte, error) {
	return sc.ks.Decrypt(base, body)
}
