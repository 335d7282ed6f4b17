// Package norm is the top-level driver for the normalization pipeline: it
// wires the UTF-8 codec (text/runeio), the per-codepoint decomposer
// (internal/ucd's decomposition pool and Hangul algorithm), the canonical
// reorderer (text/ccc), and a canonical/compatibility composer into the four
// standard Unicode normalization forms, plus the option bitmask that
// controls every other transformation (case folding, lumping, line-ending
// and control-character policy, grapheme-boundary marking) the pipeline can
// perform.
package norm

// Options is a bitmask controlling every stage of the pipeline. The bit
// values are part of this package's stable public interface: they are
// assigned in ascending order and must not be renumbered.
type Options uint32

const (
    NULLTERM  Options = 1 << 0 // no effect on the string-based API in this package; kept for bit-layout fidelity
    STABLE    Options = 1 << 1 // skip compositions that violate Composition_Exclusion
    COMPAT    Options = 1 << 2 // use compatibility decomposition, not just canonical
    COMPOSE   Options = 1 << 3 // recompose after reordering
    DECOMPOSE Options = 1 << 4 // leave the result fully decomposed
    IGNORE    Options = 1 << 5 // drop ignorable codepoints and U+00AD
    REJECTNA  Options = 1 << 6 // fail on any unassigned codepoint
    NLF2LS    Options = 1 << 7 // map newline functions to U+2028
    NLF2PS    Options = 1 << 8 // map newline functions to U+2029
    STRIPCC   Options = 1 << 9 // strip or convert control characters
    CASEFOLD  Options = 1 << 10 // apply casefold_mapping
    CHARBOUND Options = 1 << 11 // insert U+FFFF before grapheme-cluster boundaries
    LUMP      Options = 1 << 12 // replace selected codepoints with lumped equivalents
    STRIPMARK Options = 1 << 13 // drop Mn/Mc/Me codepoints; requires COMPOSE or DECOMPOSE
)

// NLF2LF is NLF2LS|NLF2PS together: both bits set means "normalize newline
// functions to a plain U+000A line feed" rather than a Unicode separator.
const NLF2LF = NLF2LS | NLF2PS

// formNFD, formNFC, formNFKD and formNFKC are the option sets fixed by the
// four standard normalization forms.
const (
    formNFD  = NULLTERM | STABLE | DECOMPOSE
    formNFC  = NULLTERM | STABLE | COMPOSE
    formNFKD = NULLTERM | STABLE | DECOMPOSE | COMPAT
    formNFKC = NULLTERM | STABLE | COMPOSE | COMPAT
)

// validateOptions rejects option combinations the pipeline cannot act on
// consistently, per the InvalidOpts cases named by this module's design:
// STRIPMARK requires a decomposition or composition pass to run in, and
// COMPOSE/DECOMPOSE are mutually exclusive final forms.
func validateOptions(opts Options) error {
    if opts&COMPOSE != 0 && opts&DECOMPOSE != 0 {
        return ErrInvalidOpts
    }
    if opts&STRIPMARK != 0 && opts&(COMPOSE|DECOMPOSE) == 0 {
        return ErrInvalidOpts
    }
    return nil
}
