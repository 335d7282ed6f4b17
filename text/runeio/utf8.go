package runeio

import "unicode/utf8"

// leadByteLength is indexed by the first byte of a UTF-8 sequence and gives
// the total length, in bytes, of the sequence that lead byte introduces. A
// value of 0 means the byte can never validly begin a sequence: continuation
// bytes (0x80-0xBF), the two always-overlong two-byte leads 0xC0 and 0xC1,
// and 0xF5-0xFF (which would only ever encode a codepoint beyond 0x10FFFF).
var leadByteLength = func() [256]int {
    var t [256]int
    for i := 0x00; i < 0x80; i++ { t[i] = 1 }
    for i := 0xC2; i <= 0xDF; i++ { t[i] = 2 }
    for i := 0xE0; i <= 0xEF; i++ { t[i] = 3 }
    for i := 0xF0; i <= 0xF4; i++ { t[i] = 4 }
    return t
}()

// CodepointValid reports whether cp is a scalar value that may legally
// appear as a decoded UTF-8 codepoint: not a surrogate, and not greater than
// the largest assignable codepoint, 0x10FFFF.
func CodepointValid(cp rune) bool {
    if cp < 0 || cp > 0x10FFFF { return false }
    if cp >= 0xD800 && cp <= 0xDFFF { return false }
    return true
}

// Iterate reads a single codepoint from the front of b. If maxLen is
// negative, up to 4 bytes may be considered; otherwise at most maxLen bytes
// of b are considered.
//
// On success, it returns the decoded codepoint and the number of bytes it
// occupied. On any malformed input -- an invalid lead byte, a missing or
// malformed continuation byte, an over-long encoding, a surrogate, or a
// scalar value beyond 0x10FFFF -- it returns (-1, 1): the codepoint is
// reported invalid and the caller should skip exactly one byte before
// resuming, which guarantees a scan always makes progress over malformed
// input.
func Iterate(b []byte, maxLen int) (rune, int) {
    if len(b) == 0 { return -1, 0 }
    if maxLen >= 0 && maxLen < len(b) {
        b = b[:maxLen]
    }

    length := leadByteLength[b[0]]
    if length == 0 || length > len(b) {
        return -1, 1
    }

    r, size := utf8.DecodeRune(b[:length])
    if r == utf8.RuneError && size <= 1 {
        return -1, 1
    }
    if size != length || !CodepointValid(r) {
        return -1, 1
    }
    return r, size
}

// Encode returns the UTF-8 encoding of cp. Codepoints outside [0, 0x10FFFF]
// produce a zero-length result, except for the internal grapheme-boundary
// marker codepoint 0xFFFF, which is emitted as the single byte 0xFF so it
// can pass through a byte stream without being mistaken for a valid
// codepoint.
func Encode(cp rune) []byte {
    if cp == 0xFFFF {
        return []byte{0xFF}
    }
    if cp < 0 || cp > 0x10FFFF {
        return nil
    }
    buf := make([]byte, utf8.UTFMax)
    n := utf8.EncodeRune(buf, cp)
    return buf[:n]
}
