package shortcrypt

import "strings"

// transportCodec abstracts the one difference between the URL-safe and
// QR-alphanumeric transports (spec §4.4/§4.5): the body codec and the
// alphabet used for the embedded base character. Everything else — the
// base-embedding scheme and its position math — is shared.
type transportCodec struct {
	encodeBody func([]byte) string
	decodeBody func(string) ([]byte, error)
	baseAlpha  string
	baseRev    *[256]byte
}

// encryptTransport implements spec §4.4 steps 1-6 / §4.5 for either
// transport, given the codec that distinguishes them.
func (sc *ShortCrypt) encryptTransport(c *transportCodec, plaintext []byte) string {
	base, body := sc.ks.Encrypt(plaintext)
	bc := c.baseAlpha[base]
	b := c.encodeBody(body)

	// sum2 is the byte-sum of the final text (body plus the embedded base
	// character) computed before the character is placed: since a byte-sum
	// does not depend on order, this equals decryptTransport's sumT once bc
	// is inserted, which is what keeps the two position formulas landing on
	// the same index (spec §4.4's last paragraph).
	sum2 := uint64(bc)
	for i := 0; i < len(b); i++ {
		sum2 += uint64(b[i])
	}
	pos := int((sc.ks.keySumRev ^ sum2) % uint64(len(b)+1))

	var sb strings.Builder
	sb.Grow(len(b) + 1)
	sb.WriteString(b[:pos])
	sb.WriteByte(bc)
	sb.WriteString(b[pos:])
	return sb.String()
}

// encryptTransportAppend is byte-identical to appending the result of
// encryptTransport to buf; it only differs in how the final string is
// assembled, growing a single builder sized for both pieces up front.
func (sc *ShortCrypt) encryptTransportAppend(c *transportCodec, plaintext []byte, buf string) string {
	base, body := sc.ks.Encrypt(plaintext)
	bc := c.baseAlpha[base]
	b := c.encodeBody(body)

	sum2 := uint64(bc)
	for i := 0; i < len(b); i++ {
		sum2 += uint64(b[i])
	}
	pos := int((sc.ks.keySumRev ^ sum2) % uint64(len(b)+1))

	var sb strings.Builder
	sb.Grow(len(buf) + len(b) + 1)
	sb.WriteString(buf)
	sb.WriteString(b[:pos])
	sb.WriteByte(bc)
	sb.WriteString(b[pos:])
	return sb.String()
}

// decryptTransport implements spec §4.4's decrypt_url / §4.5's decrypt_qr.
func (sc *ShortCrypt) decryptTransport(c *transportCodec, text string) ([]byte, error) {
	l := len(text)
	if l == 0 {
		return nil, newMalformedError("empty transport text", nil)
	}

	var sumT uint64
	for i := 0; i < l; i++ {
		sumT += uint64(text[i])
	}
	pos := int((sc.ks.keySumRev ^ sumT) % uint64(l))

	bc := text[pos]
	base := c.baseRev[bc]
	if base > 31 {
		return nil, newMalformedError("base character out of range", nil)
	}

	b := text[:pos] + text[pos+1:]
	body, err := c.decodeBody(b)
	if err != nil {
		return nil, newMalformedError("body codec decode failed", err)
	}

	return sc.ks.Decrypt(base, body)
}

// decryptTransportAppend decodes text and appends the recovered plaintext
// to buf, byte-identical to append(buf, decryptTransport(c, text)...).
func (sc *ShortCrypt) decryptTransportAppend(c *transportCodec, text string, buf []byte) ([]byte, error) {
	plaintext, err := sc.decryptTransport(c, text)
	if err != nil {
		return nil, err
	}
	return append(buf, plaintext...), nil
}
