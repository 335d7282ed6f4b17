package ucd

// Get is the property oracle's single entry point: a total function from
// codepoint to [Record]. Every field is computed on demand from the range
// tables and pools in this package; Hangul syllables are handled
// algorithmically rather than by table lookup, since their properties follow
// directly from their position in the block. Hangul jamo are looked up in the
// tables like any other codepoint.
//
// The returned Record must not be mutated; callers that need a modified copy
// should copy it first.
func Get(cp rune) Record {
    if IsHangulSyllable(cp) {
        return hangulSyllableRecord(cp)
    }

    cat, _ := categoryTable.lookup(cp)
    ccc, _ := combiningClassTable.lookup(cp)
    dtype, dmap := decompositionOf(cp)
    bc, bcOk := boundClassTable.lookup(cp)
    if !bcOk {
        bc = boundClassFor(cp, cat)
    }
    width, wOk := charWidthTable.lookup(cp)
    if !wOk {
        width = defaultWidth(cat, ccc)
    }

    r := Record{
        Category:        cat,
        CombiningClass:  ccc,
        DecompType:      dtype,
        DecompMapping:   dmap,
        CasefoldMapping: casefoldOf(cp),
        Uppercase:       NoMapping,
        Lowercase:       NoMapping,
        Titlecase:       NoMapping,
        Comb1stIndex:    NoMapping,
        Comb2ndIndex:    NoMapping,
        Ignorable:       ignorableSet[cp],
        ControlBoundary: cat == CC,
        BoundClass:      bc,
        CharWidth:       width,
    }

    if u, l, ok := caseMappingOf(cp, cat); ok {
        r.Uppercase, r.Lowercase = u, l
    }

    // A codepoint participates in composition as a "first" if some pair
    // keyed on it exists, and as a "second" (a combining mark) if its ccc is
    // nonzero and it appears as the Second half of some pair. Since
    // compositions is keyed directly by codepoint, the index *is* the rune.
    if participatesAsFirst(cp) {
        r.Comb1stIndex = int32(cp)
    }
    if ccc != 0 && participatesAsSecond(cp) {
        r.Comb2ndIndex = int32(cp)
    }
    r.CompExclusion = IsCompositionExclusion(cp)

    return r
}

func hangulSyllableRecord(cp rune) Record {
    _, _, _, hasT := DecomposeHangul(cp)
    bc := BoundClass(BoundLV)
    if hasT { bc = BoundLVT }
    return Record{
        Category:     LO,
        Uppercase:    NoMapping,
        Lowercase:    NoMapping,
        Titlecase:    NoMapping,
        Comb1stIndex: NoMapping,
        Comb2ndIndex: NoMapping,
        BoundClass:   bc,
        CharWidth:    2,
    }
}

func boundClassFor(cp rune, cat Category) BoundClass {
    switch {
    case cp == '\r':
        return BoundCR
    case cp == '\n':
        return BoundLF
    case cat == CC:
        return BoundControl
    default:
        return BoundOther
    }
}

func defaultWidth(cat Category, ccc uint8) uint8 {
    if ccc != 0 { return 0 }
    switch cat {
    case CC, CF:
        return 0
    default:
        return 1
    }
}

// caseMappingOf derives the simple upper/lower mapping for an ASCII or
// Latin-1 letter algorithmically rather than from a pool, since the
// relationship between upper and lower is a fixed offset across every range
// this module has data for.
func caseMappingOf(cp rune, cat Category) (upper, lower rune, ok bool) {
    switch {
    case cp >= 'A' && cp <= 'Z':
        return cp, cp + 32, true
    case cp >= 'a' && cp <= 'z':
        return cp - 32, cp, true
    case cp >= 0x00C0 && cp <= 0x00D6:
        return cp, cp + 32, true
    case cp >= 0x00D8 && cp <= 0x00DE:
        return cp, cp + 32, true
    case cp >= 0x00E0 && cp <= 0x00F6:
        return cp - 32, cp, true
    case cp >= 0x00F8 && cp <= 0x00FE:
        return cp - 32, cp, true
    case cp == 0x00FF:
        return 0x0178, cp, true
    case cat == LU:
        return cp, cp, true
    case cat == LL:
        return cp, cp, true
    }
    return 0, 0, false
}

var comp1stSet, comp2ndSet map[rune]bool

func init() {
    comp1stSet = make(map[rune]bool, len(compositions))
    comp2ndSet = make(map[rune]bool, len(compositions))
    for k := range compositions {
        comp1stSet[k.First] = true
        comp2ndSet[k.Second] = true
    }
}

func participatesAsFirst(cp rune) bool {
    return comp1stSet[cp]
}

func participatesAsSecond(cp rune) bool {
    return comp2ndSet[cp]
}
