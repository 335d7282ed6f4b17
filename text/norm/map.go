package norm

import (
    "strings"

    "github.com/tawesoft/utext/internal/ucd"
    "github.com/tawesoft/utext/numbers"
    "github.com/tawesoft/utext/text/grapheme"
    "github.com/tawesoft/utext/text/runeio"
)

// Reencode runs the post-processing and composition stages over an
// already-decomposed and reordered rune sequence, then re-encodes it as
// UTF-8.
func Reencode(cps []rune, opts Options) (string, error) {
    processed := postProcess(cps, opts)

    if opts&COMPOSE != 0 {
        var err error
        processed, err = compose(processed, opts)
        if err != nil {
            return "", err
        }
    }

    var sb strings.Builder
    var nbytes int32
    for _, r := range processed {
        enc := runeio.Encode(r)
        next, ok := numbers.Int32.CheckedAdd(nbytes, int32(len(enc)))
        if !ok {
            return "", ErrOverflow
        }
        nbytes = next
        sb.Write(enc)
    }
    return sb.String(), nil
}

// Map normalizes s under opts: it decomposes, reorders, post-processes and,
// if COMPOSE is set, recomposes, returning the resulting string.
func Map(s string, opts Options) (string, error) {
    buf, err := Decompose(s, opts)
    if err != nil {
        return "", err
    }
    return Reencode(buf, opts)
}

// NFD returns s in Normalization Form D (canonical decomposition).
func NFD(s string) (string, error) { return Map(s, formNFD) }

// NFC returns s in Normalization Form C (canonical decomposition followed by
// canonical composition).
func NFC(s string) (string, error) { return Map(s, formNFC) }

// NFKD returns s in Normalization Form KD (compatibility decomposition).
func NFKD(s string) (string, error) { return Map(s, formNFKD) }

// NFKC returns s in Normalization Form KC (compatibility decomposition
// followed by canonical composition).
func NFKC(s string) (string, error) { return Map(s, formNFKC) }

// IsNormalized reports whether s is already in the normal form implied by
// opts, by normalizing a copy and comparing. This is the straightforward
// definition of normalization stability, not the optimized incremental
// quick-check used by some normalizers; see SPEC_FULL.md.
func IsNormalized(s string, opts Options) (bool, error) {
    normalized, err := Map(s, opts)
    if err != nil {
        return false, err
    }
    return normalized == s, nil
}

// Charwidth returns the display width, in terminal columns, that cp
// occupies: 0, 1 or 2.
func Charwidth(cp rune) int {
    return int(ucd.Get(cp).CharWidth)
}

// GraphemeBreak reports whether a grapheme-cluster boundary is permitted
// between cp1 and cp2.
func GraphemeBreak(cp1, cp2 rune) bool {
    return grapheme.GraphemeBreak(cp1, cp2)
}
