package norm

import (
    "github.com/tawesoft/utext/internal/ucd"
    "github.com/tawesoft/utext/numbers"
    "github.com/tawesoft/utext/text/ccc"
    "github.com/tawesoft/utext/text/grapheme"
    "github.com/tawesoft/utext/text/runeio"
)

// expand recursively maps a single codepoint to the sequence of codepoints
// it decomposes into under opts: casefolding, Hangul decomposition,
// canonical/compatibility decomposition and lumping are all applied here, in
// that order, each recursing over its own output so that a mapping target
// which itself has a further mapping (e.g. a compatibility ligature whose
// components are later case-folded) is fully resolved.
//
// The steps form a single if/else chain: the first one that applies consumes
// the codepoint. Only a codepoint that reaches the end of the chain unmapped
// is a boundary candidate for CHARBOUND; lastBC carries the boundary class
// of the previous such codepoint across calls, so markers fall between the
// codepoints that actually survive into the buffer, not between the input
// codepoints they came from.
func expand(cp rune, opts Options, lastBC *grapheme.BoundClass, out []rune) ([]rune, error) {
    rec := ucd.Get(cp)

    if opts&REJECTNA != 0 && rec.Category == ucd.CN {
        return out, ErrNotAssigned
    }
    if opts&IGNORE != 0 && (rec.Ignorable || cp == 0x00AD) {
        return out, nil
    }
    if opts&STRIPMARK != 0 && (rec.Category == ucd.MN || rec.Category == ucd.MC || rec.Category == ucd.ME) {
        return out, nil
    }
    if opts&CASEFOLD != 0 {
        // Full folds (ss, fi, ...) live in the casefold pool; everything
        // else folds through its simple lowercase mapping, as in
        // [text/fold.CaseFold].
        if rec.CasefoldMapping != nil {
            return expandAll(rec.CasefoldMapping, opts, lastBC, out)
        }
        if rec.Lowercase != ucd.NoMapping && rec.Lowercase != cp {
            return expandAll([]rune{rec.Lowercase}, opts, lastBC, out)
        }
    }
    if ucd.IsHangulSyllable(cp) && opts&(COMPOSE|DECOMPOSE) != 0 {
        l, v, t, hasT := ucd.DecomposeHangul(cp)
        if hasT {
            return expandAll([]rune{l, v, t}, opts, lastBC, out)
        }
        return expandAll([]rune{l, v}, opts, lastBC, out)
    }
    if rec.DecompType != ucd.DTNone && (opts&COMPAT != 0 || rec.DecompType == ucd.DTCanonical) {
        return expandAll(rec.DecompMapping, opts, lastBC, out)
    }
    if opts&LUMP != 0 {
        if mapped, ok := ucd.Lump(cp); ok {
            // U+2028/U+2029 are lumped to a line feed, which would pre-empt
            // the NLF policy below; only take that path once the caller has
            // asked for both halves of NLF2LF.
            if !((cp == 0x2028 || cp == 0x2029) && opts&NLF2LF != NLF2LF) {
                // lumping applies once: recurse with LUMP cleared, so the
                // replacement still takes the boundary check below.
                return expand(mapped, opts&^LUMP, lastBC, out)
            }
        }
    }
    if opts&CHARBOUND != 0 {
        cur := grapheme.Of(cp)
        if grapheme.Break(*lastBC, cur) {
            out = append(out, 0xFFFF)
        }
        *lastBC = cur
    }
    return append(out, cp), nil
}

func expandAll(cps []rune, opts Options, lastBC *grapheme.BoundClass, out []rune) ([]rune, error) {
    var err error
    for _, c := range cps {
        out, err = expand(c, opts, lastBC, out)
        if err != nil {
            return out, err
        }
    }
    return out, nil
}

// Decompose runs the decomposition and canonical-reordering stages of the
// pipeline: it walks s codepoint by codepoint, expanding each one under opts,
// then stably reorders every maximal run of non-starter codepoints in the
// result by combining class.
func Decompose(s string, opts Options) ([]rune, error) {
    if err := validateOptions(opts); err != nil {
        return nil, err
    }

    var buf []rune
    var count int32
    lastBC := grapheme.Start
    b := []byte(s)
    for len(b) > 0 {
        cp, size := runeio.Iterate(b, -1)
        if cp == -1 {
            return nil, ErrInvalidUTF8
        }
        before := len(buf)
        var err error
        buf, err = expand(cp, opts, &lastBC, buf)
        if err != nil {
            return nil, err
        }
        // The size type for a decomposed codepoint count is a signed 32-bit
        // integer; growing past its range is Overflow, not a silently
        // wrapped or truncated count.
        next, ok := numbers.Int32.CheckedAdd(count, int32(len(buf)-before))
        if !ok {
            return nil, ErrOverflow
        }
        count = next
        b = b[size:]
    }

    if err := ccc.ReorderRunes(buf); err != nil {
        return nil, ErrOverflow
    }
    return buf, nil
}
