package ucd

// lumpTable maps a codepoint to the single "lumped" codepoint it is folded
// into under the LUMP option, which discards typographic distinctions that
// most text processing does not care about: dash variants to hyphen-minus,
// the many Unicode spaces to U+0020, curly quotes and primes to their ASCII
// equivalents, and so on.
var lumpTable = map[rune]rune{
    0x00A0: ' ',    // NO-BREAK SPACE
    0x2000: ' ',    // EN QUAD
    0x2001: ' ',
    0x2002: ' ',
    0x2003: ' ',
    0x2004: ' ',
    0x2005: ' ',
    0x2006: ' ',
    0x2007: ' ',
    0x2008: ' ',
    0x2009: ' ',
    0x200A: ' ',
    0x202F: ' ',    // NARROW NO-BREAK SPACE
    0x205F: ' ',
    0x3000: ' ',    // IDEOGRAPHIC SPACE

    0x2010: '-',    // HYPHEN
    0x2011: '-',    // NON-BREAKING HYPHEN
    0x2012: '-',    // FIGURE DASH
    0x2013: '-',    // EN DASH
    0x2014: '-',    // EM DASH
    0x2015: '-',    // HORIZONTAL BAR
    0x2212: '-',    // MINUS SIGN

    0x2018: '\'',   // LEFT SINGLE QUOTATION MARK
    0x2019: '\'',   // RIGHT SINGLE QUOTATION MARK
    0x201B: '\'',
    0x2032: '\'',   // PRIME

    0x201C: '"',    // LEFT DOUBLE QUOTATION MARK
    0x201D: '"',    // RIGHT DOUBLE QUOTATION MARK
    0x201F: '"',
    0x2033: '"',    // DOUBLE PRIME

    0x00B7: 0x2022, // MIDDLE DOT -> BULLET
    0x2219: 0x2022, // BULLET OPERATOR -> BULLET

    0x00D7: '*',    // MULTIPLICATION SIGN
    0x2062: '*',    // INVISIBLE TIMES

    0x2028: '\n',   // LINE SEPARATOR
    0x2029: '\n',   // PARAGRAPH SEPARATOR
}

// lumpOf returns the lumped codepoint for cp and whether a mapping exists.
func lumpOf(cp rune) (rune, bool) {
    r, ok := lumpTable[cp]
    return r, ok
}

// Lump returns the codepoint cp is lumped to under the LUMP option, and
// whether any such mapping exists.
func Lump(cp rune) (rune, bool) {
    return lumpOf(cp)
}

// digitTable maps a non-ASCII decimal-digit codepoint to the value 0-9 it
// represents: Arabic-Indic, Extended Arabic-Indic (Perso-Arabic), circled,
// superscript and subscript digits. This is independent of the LUMP table
// (which folds typographic variants, not numeral systems) and backs
// [text/fold.Digit].
var digitTable = buildDigitTable()

func buildDigitTable() map[rune]uint8 {
    m := make(map[rune]uint8, 64)
    addRun := func(base rune, startValue, count int) {
        for i := 0; i < count; i++ {
            m[base+rune(i)] = uint8(startValue + i)
        }
    }
    addRun(0x0660, 0, 10) // ARABIC-INDIC DIGIT ZERO..NINE
    addRun(0x06F0, 0, 10) // EXTENDED ARABIC-INDIC DIGIT ZERO..NINE
    addRun(0x2460, 1, 9)  // CIRCLED DIGIT ONE..NINE
    m[0x24EA] = 0         // CIRCLED DIGIT ZERO
    m[0x2070] = 0         // SUPERSCRIPT ZERO
    m[0x00B9] = 1         // SUPERSCRIPT ONE
    m[0x00B2] = 2         // SUPERSCRIPT TWO
    m[0x00B3] = 3         // SUPERSCRIPT THREE
    addRun(0x2074, 4, 6)  // SUPERSCRIPT FOUR..NINE
    addRun(0x2080, 0, 10) // SUBSCRIPT ZERO..NINE
    return m
}

// Digit returns the decimal value 0-9 that cp represents as a digit in some
// non-ASCII numbering system, and whether cp is such a digit.
func Digit(cp rune) (uint8, bool) {
    d, ok := digitTable[cp]
    return d, ok
}
