package norm

import (
    "github.com/tawesoft/utext/internal/ucd"
    "github.com/tawesoft/utext/text/ccc"
)

// tryHangulCompose attempts the two algorithmic Hangul compositions: an L
// jamo with a V jamo into an LV syllable, or an LV syllable with a T jamo
// into an LVT syllable. Hangul jamo all have combining class zero, so they
// would otherwise look like two unrelated starters to the table-driven
// composer below.
func tryHangulCompose(a, b rune) (rune, bool) {
    if c, ok := ucd.ComposeHangulLV(a, b); ok {
        return c, true
    }
    if c, ok := ucd.ComposeHangulLVT(a, b); ok {
        return c, true
    }
    return 0, false
}

// compose runs the canonical composition stage over an already-decomposed
// and canonically-reordered rune sequence: each maximal run starting at a
// starter is scanned left to right, attempting to fold each following
// codepoint into the current starter, per the blocking rule of UAX #15 -- a
// non-starter combines with the starter only if every non-starter between
// them has a strictly lower combining class (tracked here as maxClass).
func compose(cps []rune, opts Options) ([]rune, error) {
    if len(cps) == 0 {
        return cps, nil
    }

    out := make([]rune, 0, len(cps))
    starter := cps[0]
    var pending []rune
    maxClass := uint8(0)

    flush := func() {
        out = append(out, starter)
        out = append(out, pending...)
        pending = pending[:0]
    }

    for i := 1; i < len(cps); i++ {
        cur := cps[i]
        curClass := ccc.Of(cur)
        composed := false
        var composite rune

        switch {
        case curClass == 0:
            if len(pending) == 0 {
                if c, ok := tryHangulCompose(starter, cur); ok {
                    composite, composed = c, true
                }
            }
        case curClass > maxClass:
            if c, ok := ucd.Compose(starter, cur); ok {
                if !(opts&STABLE != 0 && ucd.IsCompositionExclusion(c)) {
                    composite, composed = c, true
                }
            }
        }

        switch {
        case composed:
            // maxClass is deliberately not reset: marks already passed over
            // still block any later candidate of equal or lower class.
            starter = composite
        case curClass == 0:
            flush()
            starter = cur
            maxClass = 0
        default:
            pending = append(pending, cur)
            if curClass > maxClass {
                maxClass = curClass
            }
        }
    }

    flush()
    return out, nil
}
