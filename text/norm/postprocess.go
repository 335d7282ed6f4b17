package norm

import (
    "github.com/tawesoft/utext/internal/ucd"
)

// isNewlineFunctionStart reports whether cps[i] begins one of the Unicode
// newline functions -- CR, LF, the two-codepoint CRLF sequence, NEL, and,
// only when STRIPCC is active, HT and FF -- and how many codepoints that
// function occupies (1, or 2 for CRLF). LINE SEPARATOR and PARAGRAPH
// SEPARATOR are not newline functions; under LUMP with the full NLF2LF
// policy the decomposer has already lumped them to a line feed.
func isNewlineFunctionStart(cps []rune, i int, opts Options) (bool, int) {
    switch cps[i] {
    case 0x000D: // CR
        if i+1 < len(cps) && cps[i+1] == 0x000A {
            return true, 2 // CRLF
        }
        return true, 1
    case 0x000A, 0x0085:
        return true, 1
    case 0x0009, 0x000C:
        if opts&STRIPCC != 0 {
            return true, 1
        }
        return false, 0
    default:
        return false, 0
    }
}

// nlfTarget returns the codepoint every newline function collapses to under
// opts, or -1 if neither NLF2LS nor NLF2PS is set.
func nlfTarget(opts Options) rune {
    switch {
    case opts&NLF2LF == NLF2LF:
        return 0x000A
    case opts&NLF2LS != 0:
        return 0x2028
    case opts&NLF2PS != 0:
        return 0x2029
    default:
        return -1
    }
}

// postProcess applies the NLF newline policy and STRIPCC control-character
// policy to an already decomposed and reordered rune sequence. A newline
// function is collapsed to the NLF target codepoint if one is configured;
// otherwise, if STRIPCC is set, it collapses to a single U+0020, matching
// the behaviour of every other stripped control character; with neither
// policy active it passes through unchanged. A non-newline control
// character is replaced by U+0020 under STRIPCC and otherwise left alone.
// The CHARBOUND marker U+FFFF always passes through untouched.
func postProcess(cps []rune, opts Options) []rune {
    target := nlfTarget(opts)
    out := make([]rune, 0, len(cps))

    for i := 0; i < len(cps); {
        r := cps[i]

        if r == 0xFFFF {
            out = append(out, r)
            i++
            continue
        }

        if isNL, size := isNewlineFunctionStart(cps, i, opts); isNL {
            switch {
            case target >= 0:
                out = append(out, target)
            case opts&STRIPCC != 0:
                out = append(out, 0x0020)
            default:
                out = append(out, cps[i:i+size]...)
            }
            i += size
            continue
        }

        if opts&STRIPCC != 0 && ucd.Get(r).Category == ucd.CC {
            out = append(out, 0x0020)
            i++
            continue
        }

        out = append(out, r)
        i++
    }

    return out
}
