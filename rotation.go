package shortcrypt

// Rotator re-encodes transport text produced under an old key so it can be
// read back under a new one, without ever materializing the plaintext in
// the caller's code path. Grounded in the teacher's key_rotation.go, adapted
// from rotating an at-rest file encryption key to rotating an obfuscation
// key across previously issued URL/QR tokens.
type Rotator struct {
	old *ShortCrypt
	new *ShortCrypt
}

// NewRotator builds a Rotator that decrypts under oldKey and re-encrypts
// under newKey.
func NewRotator(oldKey, newKey *ShortCrypt) *Rotator {
	return &Rotator{old: oldKey, new: newKey}
}

// RotateURL decrypts text under the old key and re-encrypts the recovered
// plaintext under the new key, returning the new transport text. Errors
// from DecryptURL are returned unchanged.
func (r *Rotator) RotateURL(text string) (string, error) {
	plaintext, err := r.old.DecryptURL(text)
	if err != nil {
		return "", err
	}
	return r.new.EncryptToURL(plaintext), nil
}

// RotateQR is RotateURL for the QR-alphanumeric transport.
func (r *Rotator) RotateQR(text string) (string, error) {
	plaintext, err := r.old.DecryptQR(text)
	if err != nil {
		return "", err
	}
	return r.new.EncryptToQR(plaintext), nil
}
