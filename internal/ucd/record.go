// Package ucd is the property oracle behind the rest of the module: a pure,
// read-only lookup from a Unicode codepoint to a small immutable record of
// properties, plus the associated decomposition mapping pool, casefold
// mapping pool, lump table, and canonical composition table.
//
// Callers outside this module never see these types directly — text/ccc,
// text/dm, text/fold, text/grapheme and text/norm each expose the narrow
// slice of this data that their own package name promises. The property
// database is an opaque read-only oracle to the rest of the pipeline.
//
// The data held here is a representative, hand-curated subset of the full
// Unicode Character Database: enough of the common scripts, punctuation,
// Hangul jamo and combining marks to exercise every rule in the pipeline
// correctly, but not a full generated table for all ~1.1 million codepoints.
// See DESIGN.md for why this project does not ship a generated table.
package ucd

// Category is the Unicode General_Category of a codepoint.
type Category uint8

const (
    CN Category = iota // Unassigned
    LU                  // Uppercase Letter
    LL                  // Lowercase Letter
    LT                  // Titlecase Letter
    LM                  // Modifier Letter
    LO                  // Other Letter
    MN                  // Nonspacing Mark
    MC                  // Spacing Mark
    ME                  // Enclosing Mark
    ND                  // Decimal Number
    NL                  // Letter Number
    NO                  // Other Number
    PC                  // Connector Punctuation
    PD                  // Dash Punctuation
    PS                  // Open Punctuation
    PE                  // Close Punctuation
    PI                  // Initial Punctuation
    PF                  // Final Punctuation
    PO                  // Other Punctuation
    SM                  // Math Symbol
    SC                  // Currency Symbol
    SK                  // Modifier Symbol
    SO                  // Other Symbol
    ZS                  // Space Separator
    ZL                  // Line Separator
    ZP                  // Paragraph Separator
    CC                  // Control
    CF                  // Format
    CS                  // Surrogate
    CO                  // Private Use
)

// DecompType is the Unicode decomposition type tag: either None (no
// decomposition), Canonical, or one of sixteen compatibility tags. The
// numeric values are arbitrary but match one-for-one with [text/dm.Type],
// which is the public vocabulary for the same tag set.
type DecompType uint8

const (
    DTNone DecompType = iota
    DTCanonical
    DTCompat
    DTEncircled
    DTFinal
    DTFont
    DTFraction
    DTInitial
    DTIsolated
    DTMedial
    DTNarrow
    DTNoBreak
    DTSmall
    DTSquare
    DTSub
    DTSuper
    DTVertical
    DTWide
)

// BidiClass is carried through by the property oracle but is never acted on
// by this module — no bidirectional reordering is performed.
type BidiClass uint8

const (
    BidiL  BidiClass = iota // Left-to-Right
    BidiR                    // Right-to-Left
    BidiAL                   // Right-to-Left Arabic
    BidiEN                   // European Number
    BidiES                   // European Separator
    BidiET                   // European Terminator
    BidiAN                   // Arabic Number
    BidiCS                   // Common Separator
    BidiNSM                  // Nonspacing Mark
    BidiBN                   // Boundary Neutral
    BidiB                    // Paragraph Separator
    BidiS                    // Segment Separator
    BidiWS                   // Whitespace
    BidiON                   // Other Neutral
)

// BoundClass is the grapheme-cluster boundary class used to decide whether a
// break is permitted between two adjacent codepoints (UAX #29, extended
// rules).
type BoundClass uint8

const (
    BoundStart BoundClass = iota
    BoundOther
    BoundCR
    BoundLF
    BoundControl
    BoundExtend
    BoundL
    BoundV
    BoundT
    BoundLV
    BoundLVT
    BoundRegionalIndicator
    BoundSpacingMark
)

// NoMapping is the sentinel rune used for "no uppercase/lowercase/titlecase
// mapping" and for unset comb1st/comb2nd indices.
const NoMapping = -1

// Record is the immutable property record returned by [Get] for any
// codepoint. Lookup is a total function: every input yields a record.
// Records are shared; callers must not mutate them.
type Record struct {
    Category       Category
    CombiningClass uint8
    BidiClass      BidiClass
    DecompType     DecompType
    DecompMapping  []rune // nil if DecompType == DTNone
    CasefoldMapping []rune // nil if no casefold mapping
    Uppercase      rune   // NoMapping if none
    Lowercase      rune   // NoMapping if none
    Titlecase      rune   // NoMapping if none
    Comb1stIndex   int32  // NoMapping if this codepoint cannot start a composition
    Comb2ndIndex   int32  // NoMapping if this codepoint cannot complete a composition
    BidiMirrored   bool
    CompExclusion  bool
    Ignorable      bool
    ControlBoundary bool
    BoundClass     BoundClass
    CharWidth      uint8
}

// unassigned is the record with category CN and every other field at its zero
// value. [Get] does not return it: it builds each record field by field, so a
// codepoint outside every table comes back with category CN, [BoundOther] and
// a width of 1.
var unassigned = Record{
    Category:     CN,
    Uppercase:    NoMapping,
    Lowercase:    NoMapping,
    Titlecase:    NoMapping,
    Comb1stIndex: NoMapping,
    Comb2ndIndex: NoMapping,
}
