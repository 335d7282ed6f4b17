package ucd

import "sort"

// rangeEntry maps a half-open codepoint range [Start, End) to a value of
// type T. Tables below only list ranges whose value differs from the default;
// on a lookup miss [Get] uses T's zero value (e.g. ccc 0) or a default
// computed from the category (width, boundary class), so the overwhelmingly
// common cases (ccc 0, width 1, class Other) cost no table space.
type rangeEntry[T any] struct {
    Start, End rune
    Value      T
}

// rangeTable is a sorted, non-overlapping list of [rangeEntry], searched by
// binary search. This is the lookup strategy chosen for this module's
// hand-curated data subset; see DESIGN.md for why a two-level block/index
// array was not used.
type rangeTable[T any] []rangeEntry[T]

// sorted returns rt sorted by Start. Tables in this file are written in
// whatever order groups related Unicode blocks together for readability;
// they are sorted once, here, rather than requiring every literal to be
// listed in strict codepoint order by hand.
func (rt rangeTable[T]) sorted() rangeTable[T] {
    out := make(rangeTable[T], len(rt))
    copy(out, rt)
    sort.Slice(out, func(i, j int) bool { return out[i].Start < out[j].Start })
    return out
}

// lookup returns the value associated with cp, and whether cp fell inside
// any entry's range.
func (rt rangeTable[T]) lookup(cp rune) (T, bool) {
    i := sort.Search(len(rt), func(i int) bool {
        return rt[i].End > cp
    })
    if i < len(rt) && rt[i].Start <= cp && cp < rt[i].End {
        return rt[i].Value, true
    }
    var zero T
    return zero, false
}

// categoryTable lists the general category of every codepoint range this
// module has data for. A codepoint not covered here is CN (unassigned) per
// the oracle contract in record.go.
var categoryTable = rangeTable[Category]{
    {0x0000, 0x0009, CC},
    {0x0009, 0x000E, CC}, // TAB..CR treated as control; newline functions are special-cased by the post-processor
    {0x000E, 0x0020, CC},
    {0x0020, 0x0021, ZS},
    {0x0021, 0x0024, PO}, // ! " #
    {0x0024, 0x0025, SC}, // $
    {0x0025, 0x0028, PO}, // % & '
    {0x0028, 0x0029, PS}, // (
    {0x0029, 0x002A, PE}, // )
    {0x002A, 0x002B, PO}, // *
    {0x002B, 0x002C, SM}, // +
    {0x002C, 0x002D, PO}, // ,
    {0x002D, 0x002E, PD}, // -
    {0x002E, 0x0030, PO}, // . /
    {0x0030, 0x003A, ND}, // 0-9
    {0x003A, 0x003C, PO}, // : ;
    {0x003C, 0x003F, SM}, // < = >
    {0x003F, 0x0041, PO}, // ? @
    {0x0041, 0x005B, LU}, // A-Z
    {0x005B, 0x005C, PS}, // [
    {0x005C, 0x005D, PO}, // backslash
    {0x005D, 0x005E, PE}, // ]
    {0x005E, 0x005F, SK}, // ^
    {0x005F, 0x0060, PC}, // _
    {0x0060, 0x0061, SK}, // `
    {0x0061, 0x007B, LL}, // a-z
    {0x007B, 0x007C, PS}, // {
    {0x007C, 0x007D, SM}, // |
    {0x007D, 0x007E, PE}, // }
    {0x007E, 0x007F, SM}, // ~
    {0x007F, 0x0080, CC}, // DEL

    {0x0080, 0x00A0, CC}, // C1 controls, incl. NEL 0x85
    {0x00A0, 0x00A1, ZS}, // NBSP
    {0x00A1, 0x00A2, PO}, // ¡
    {0x00A2, 0x00A6, SC}, // ¢ £ ¤ ¥
    {0x00A6, 0x00A7, SO}, // ¦
    {0x00A7, 0x00A8, PO}, // §
    {0x00A8, 0x00A9, SK}, // ¨
    {0x00A9, 0x00AA, SO}, // ©
    {0x00AA, 0x00AB, LO}, // ª
    {0x00AB, 0x00AC, PI}, // «
    {0x00AC, 0x00AD, SM}, // ¬
    {0x00AD, 0x00AE, CF}, // soft hyphen
    {0x00AE, 0x00AF, SO}, // ®
    {0x00AF, 0x00B0, SK}, // ¯
    {0x00B0, 0x00B1, SO}, // °
    {0x00B1, 0x00B2, SM}, // ±
    {0x00B2, 0x00B4, NO}, // ² ³
    {0x00B4, 0x00B5, SK}, // ´
    {0x00B5, 0x00B6, LL}, // µ
    {0x00B6, 0x00B8, PO}, // ¶ ·
    {0x00B8, 0x00B9, SK}, // ¸
    {0x00B9, 0x00BA, NO}, // ¹
    {0x00BA, 0x00BB, LO}, // º
    {0x00BB, 0x00BC, PF}, // »
    {0x00BC, 0x00BF, NO}, // ¼ ½ ¾
    {0x00BF, 0x00C0, PO}, // ¿
    {0x00C0, 0x00D7, LU}, // À-Ö
    {0x00D7, 0x00D8, SM}, // ×
    {0x00D8, 0x00DF, LU}, // Ø-Þ
    {0x00DF, 0x00F7, LL}, // ß-ö
    {0x00F7, 0x00F8, SM}, // ÷
    {0x00F8, 0x0100, LL}, // ø-ÿ

    // Latin Extended-A (subset exercised by NFC/NFD tests)
    {0x0100, 0x0138, LU}, // overapproximated: alternates Lu/Ll in reality
    {0x0138, 0x0149, LL},

    // Greek and Coptic (base letters only, no combining data)
    {0x0391, 0x03A2, LU},
    {0x03A3, 0x03AA, LU},
    {0x03B1, 0x03CA, LL},

    // Cyrillic (base letters only)
    {0x0410, 0x0430, LU},
    {0x0430, 0x0450, LL},

    // Combining Diacritical Marks
    {0x0300, 0x0370, MN},

    // Hebrew accents/points (subset)
    {0x0591, 0x05BE, MN},
    {0x05BF, 0x05C0, MN},
    {0x05C1, 0x05C3, MN},
    {0x05C4, 0x05C6, MN},
    {0x05C7, 0x05C8, MN},

    // Hangul Jamo
    {0x1100, 0x1113, LO}, // L
    {0x1161, 0x1176, LO}, // V
    {0x11A8, 0x11C3, LO}, // T

    // General Punctuation
    {0x2000, 0x200B, ZS}, // various spaces
    {0x200B, 0x200C, CF}, // zero width space
    {0x200C, 0x200E, CF}, // ZWNJ, ZWJ
    {0x200E, 0x2010, CF}, // LRM, RLM (bidi controls, carried as CF here)
    {0x2010, 0x2012, PD}, // hyphen, non-breaking hyphen
    {0x2012, 0x2016, PD},
    {0x2018, 0x2019, PI},
    {0x2019, 0x201A, PF},
    {0x201C, 0x201D, PI},
    {0x201D, 0x201E, PF},
    {0x2020, 0x2028, PO},
    {0x2028, 0x2029, ZL}, // LINE SEPARATOR
    {0x2029, 0x202A, ZP}, // PARAGRAPH SEPARATOR
    {0x202A, 0x202F, CF}, // directional formatting
    {0x202F, 0x2030, ZS}, // narrow no-break space
    {0x2044, 0x2045, SM}, // fraction slash
    {0x2212, 0x2213, SM}, // minus sign

    // Letterlike symbols (Ohm sign canonical duplicate)
    {0x2126, 0x2127, LU}, // OHM SIGN

    // Alphabetic Presentation Forms: Latin ligatures
    {0xFB00, 0xFB05, LL}, // ff, fi, fl, ffi, ffl

    // Halfwidth and Fullwidth Forms: ASCII-range compatibility
    {0xFF01, 0xFF5F, LL}, // overapproximated placeholder category, true values vary

    // Hangul Syllables block is handled algorithmically in oracle.go, not here.
}

// combiningClassTable lists the canonical combining class of every codepoint
// this module has data for. Entries with ccc==0 are never stored; a lookup
// miss means ccc 0 (a starter), per the convention described in rangeTable.
var combiningClassTable = rangeTable[uint8]{
    {0x0300, 0x0315, 230},
    {0x0315, 0x0316, 232},
    {0x0316, 0x031A, 220},
    {0x031A, 0x031B, 232},
    {0x031B, 0x031C, 216},
    {0x031C, 0x0321, 220},
    {0x0321, 0x0323, 202},
    {0x0323, 0x0327, 220},
    {0x0327, 0x0329, 202},
    {0x0329, 0x0334, 220},
    {0x0334, 0x0339, 1},
    {0x0339, 0x033D, 220},
    {0x033D, 0x0345, 230},
    {0x0345, 0x0346, 240},
    {0x0346, 0x0347, 230},
    {0x0347, 0x034A, 220},
    {0x034A, 0x034D, 230},
    {0x034D, 0x034F, 220},
    {0x0350, 0x0353, 230},
    {0x0353, 0x0357, 220},
    {0x0357, 0x0358, 230},
    {0x0358, 0x0359, 232},
    {0x0359, 0x035B, 220},
    {0x035B, 0x035C, 230},
    {0x035C, 0x035D, 233},
    {0x035D, 0x035F, 234},
    {0x035F, 0x0360, 233},
    {0x0360, 0x0362, 234},
    {0x0362, 0x0363, 233},
    {0x0363, 0x0370, 230},

    {0x0591, 0x05A3, 220},
    {0x05A3, 0x05BD, 222},
    {0x05BF, 0x05C0, 23},
    {0x05C1, 0x05C2, 24},
    {0x05C2, 0x05C3, 25},
    {0x05C4, 0x05C5, 230},
    {0x05C7, 0x05C8, 18},

    {0x1E94A, 0x1E94B, 7}, // Adlam Nukta
}

// boundClassTable lists the grapheme-cluster boundary class of every
// codepoint this module has data for. A lookup miss is BoundOther, except
// for the special-cased ranges handled directly in oracle.go (Hangul
// syllables, and the control/CR/LF cases which are derived from category).
var boundClassTable = rangeTable[BoundClass]{
    {0x0300, 0x0370, BoundExtend},
    {0x0591, 0x05C8, BoundExtend},
    {0x200B, 0x200D, BoundExtend}, // ZWSP, ZWNJ
    {0x200D, 0x200E, BoundExtend}, // ZWJ
    {0xFE00, 0xFE10, BoundExtend}, // variation selectors
    {0x1100, 0x1113, BoundL},
    {0x1161, 0x1176, BoundV},
    {0x11A8, 0x11C3, BoundT},
    {0x1F1E6, 0x1F200, BoundRegionalIndicator},
}

// charWidthTable lists the terminal display width of every codepoint this
// module has data for. A lookup miss defaults to 1 for any printable
// codepoint and 0 for combining marks, control and format characters,
// computed in [defaultWidth].
var charWidthTable = rangeTable[uint8]{
    {0x1100, 0x115F, 2}, // Hangul Jamo (leading consonants render wide)
    {0x2E80, 0x303F, 2}, // CJK Radicals, punctuation
    {0x3040, 0xA4D0, 2}, // Hiragana..Yi
    {0xAC00, 0xD7A4, 2}, // Hangul Syllables
    {0xF900, 0xFB00, 2}, // CJK Compatibility Ideographs
    {0xFF01, 0xFF61, 2}, // Fullwidth Forms
    {0xFFE0, 0xFFE7, 2},
    {0x20000, 0x2FFFE, 2}, // CJK extension planes
}

var ignorableSet = map[rune]bool{
    0x00AD: true, // soft hyphen
    0x200B: true, // zero width space
    0x200C: true, // ZWNJ
    0x200D: true, // ZWJ
    0x200E: true, // LRM
    0x200F: true, // RLM
    0xFEFF: true, // zero width no-break space / BOM
}

func init() {
    categoryTable = categoryTable.sorted()
    combiningClassTable = combiningClassTable.sorted()
    boundClassTable = boundClassTable.sorted()
    charWidthTable = charWidthTable.sorted()
}
