// Package shortcrypt implements a short-length, length-preserving data
// obfuscator for embedding small payloads — identifiers, article slugs,
// serial numbers — inside URL path components or QR-code alphanumeric-mode
// strings.
//
// Given a caller-supplied key and a plaintext of arbitrary length, it
// produces a ciphertext body the same length as the plaintext plus one
// "base" nibble of overhead, and a short alphanumeric or URL-safe transport
// string carrying both. Visually similar plaintexts produce visually
// dissimilar ciphertexts.
//
// # Not a secure cipher
//
// This is an obfuscator, not cryptography. It offers no confidentiality
// against a determined attacker and no authentication or tamper detection:
// Decrypt under a wrong key silently produces length-preserving garbage
// instead of an error. The transport decoders under a wrong key either do
// the same or return ErrMalformed, when the character at the recovered
// position is not a valid base character. It is intended to frustrate casual inspection of serial-number-
// scale data, nothing more.
//
// # Basic usage
//
//	sc := shortcrypt.New([]byte("magickey"))
//
//	text := sc.EncryptToURL([]byte("articles"))
//	plain, err := sc.DecryptURL(text)
//
// The QR-alphanumeric transport works the same way via EncryptToQR /
// DecryptQR, producing output restricted to the QR alphanumeric-mode
// character set.
//
// # Concurrency
//
// A *ShortCrypt is immutable after construction and holds no interior
// mutable state; any number of goroutines may call its methods concurrently
// without synchronization.
package shortcrypt
