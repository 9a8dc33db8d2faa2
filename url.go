package shortcrypt

import "encoding/base64"

var urlEncoding = base64.URLEncoding.WithPadding(base64.NoPadding)

var urlCodec = &transportCodec{
	encodeBody: urlEncoding.EncodeToString,
	decodeBody: urlEncoding.DecodeString,
	baseAlpha:  urlBaseAlphabet,
	baseRev:    &urlBaseReverse,
}

// EncryptToURL encrypts plaintext and encodes the result as a single
// URL-safe, unpadded base-64 text carrying both the base nibble and the
// body (spec §4.4).
func (sc *ShortCrypt) EncryptToURL(plaintext []byte) string {
	return sc.encryptTransport(urlCodec, plaintext)
}

// EncryptToURLAppend is EncryptToURL, but appends the encoded text to buf in
// a single allocation instead of two. It is byte-identical to
// buf + EncryptToURL(plaintext).
func (sc *ShortCrypt) EncryptToURLAppend(plaintext []byte, buf string) string {
	return sc.encryptTransportAppend(urlCodec, plaintext, buf)
}

// DecryptURL inverts EncryptToURL. It returns ErrMalformed, wrapped as
// *MalformedError, if text is empty, its base character is out of range,
// or the remaining body fails base-64 decoding.
func (sc *ShortCrypt) DecryptURL(text string) ([]byte, error) {
	return sc.decryptTransport(urlCodec, text)
}

// DecryptURLAppend is DecryptURL, but appends the recovered plaintext to
// buf. It is byte-identical to append(buf, DecryptURL(text)...).
func (sc *ShortCrypt) DecryptURLAppend(text string, buf []byte) ([]byte, error) {
	return sc.decryptTransportAppend(urlCodec, text, buf)
}
