package ucd

// casefoldTable holds the full (not simple) case folding mapping for
// codepoints whose fold differs from [Record.Lowercase]. Most lowercase
// letters fold to themselves via their existing Lowercase mapping; this
// table is only consulted for the exceptions (German sharp s, final sigma,
// and similar multi-codepoint or non-lowercase-equal folds).
var casefoldTable = map[rune][]rune{
    0x00DF: {'s', 's'},         // LATIN SMALL LETTER SHARP S
    0x0130: {'i', 0x0307},      // LATIN CAPITAL LETTER I WITH DOT ABOVE
    0x03C2: {0x03C3},           // GREEK SMALL LETTER FINAL SIGMA -> SIGMA
    0xFB00: {'f', 'f'},
    0xFB01: {'f', 'i'},
    0xFB02: {'f', 'l'},
    0xFB03: {'f', 'f', 'i'},
    0xFB04: {'f', 'f', 'l'},
}

// casefoldOf returns the full casefold mapping for cp, or nil if cp folds to
// itself or to its simple lowercase mapping (callers fall back to
// Record.Lowercase in that case).
func casefoldOf(cp rune) []rune {
    return casefoldTable[cp]
}
