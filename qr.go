package shortcrypt

import "encoding/base32"

var qrEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

var qrCodec = &transportCodec{
	encodeBody: qrEncoding.EncodeToString,
	decodeBody: qrEncoding.DecodeString,
	baseAlpha:  qrBaseAlphabet,
	baseRev:    &qrBaseReverse,
}

// EncryptToQR encrypts plaintext and encodes the result as a single
// QR-alphanumeric-mode-compatible text carrying both the base nibble and
// the body, using RFC 4648 base-32 with no padding for the body (spec
// §4.5).
func (sc *ShortCrypt) EncryptToQR(plaintext []byte) string {
	return sc.encryptTransport(qrCodec, plaintext)
}

// EncryptToQRAppend is EncryptToQR, but appends the encoded text to buf in
// a single allocation instead of two. It is byte-identical to
// buf + EncryptToQR(plaintext).
func (sc *ShortCrypt) EncryptToQRAppend(plaintext []byte, buf string) string {
	return sc.encryptTransportAppend(qrCodec, plaintext, buf)
}

// DecryptQR inverts EncryptToQR. It returns ErrMalformed, wrapped as
// *MalformedError, if text is empty, contains a non-ASCII byte, its base
// character is out of range, or the remaining body fails base-32 decoding.
func (sc *ShortCrypt) DecryptQR(text string) ([]byte, error) {
	for i := 0; i < len(text); i++ {
		if text[i] > 0x7F {
			return nil, newMalformedError("non-ASCII byte in QR text", nil)
		}
	}
	return sc.decryptTransport(qrCodec, text)
}

// DecryptQRAppend is DecryptQR, but appends the recovered plaintext to buf.
// It is byte-identical to append(buf, DecryptQR(text)...).
func (sc *ShortCrypt) DecryptQRAppend(text string, buf []byte) ([]byte, error) {
	plaintext, err := sc.DecryptQR(text)
	if err != nil {
		return nil, err
	}
	return append(buf, plaintext...), nil
}
