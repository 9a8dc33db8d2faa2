package shortcrypt

// urlBaseAlphabet maps a base nibble (0..63) to the character embedded in a
// URL-safe base-64 transport text (spec §4.4 step 2). It is distinct from
// the standard base-64 alphabet used to encode the body itself.
const urlBaseAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-_"

// qrBaseAlphabet maps a base nibble (0..31) to the character embedded in a
// QR-alphanumeric transport text (spec §4.5). It is distinct from the
// RFC 4648 base-32 alphabet used to encode the body itself.
const qrBaseAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUV"

var urlBaseReverse [256]byte
var qrBaseReverse [256]byte

func init() {
	for i := range urlBaseReverse {
		urlBaseReverse[i] = 0xFF
	}
	for i := 0; i < len(urlBaseAlphabet); i++ {
		urlBaseReverse[urlBaseAlphabet[i]] = byte(i)
	}

	for i := range qrBaseReverse {
		qrBaseReverse[i] = 0xFF
	}
	for i := 0; i < len(qrBaseAlphabet); i++ {
		qrBaseReverse[qrBaseAlphabet[i]] = byte(i)
	}
}
