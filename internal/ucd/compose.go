package ucd

// composeKey identifies a canonical composition pair (starter, combining
// mark) that combine to a single precomposed codepoint. Keying directly by
// codepoint pair, rather than by the compacted comb1st/comb2nd index space
// the oracle contract alludes to, trades a little memory for tractability in
// a hand-authored table.
type composeKey struct {
    First, Second rune
}

// compositions is the inverse of the canonical decompositions in decomp.go:
// every (base, mark) -> composite entry needed to recompose the pairs this
// module's decomposition table can take apart. Hangul composition is handled
// algorithmically (see [ComposeHangulLV], [ComposeHangulLVT]) and is not
// listed here.
var compositions = buildComposeIndex([]struct {
    First, Second, Composite rune
}{
    {'A', 0x0300, 0x00C0}, {'A', 0x0301, 0x00C1}, {'A', 0x0302, 0x00C2},
    {'A', 0x0303, 0x00C3}, {'A', 0x0308, 0x00C4}, {'A', 0x030A, 0x00C5},
    {'C', 0x0327, 0x00C7},
    {'E', 0x0300, 0x00C8}, {'E', 0x0301, 0x00C9}, {'E', 0x0302, 0x00CA}, {'E', 0x0308, 0x00CB},
    {'I', 0x0300, 0x00CC}, {'I', 0x0301, 0x00CD}, {'I', 0x0302, 0x00CE}, {'I', 0x0308, 0x00CF},
    {'N', 0x0303, 0x00D1},
    {'O', 0x0300, 0x00D2}, {'O', 0x0301, 0x00D3}, {'O', 0x0302, 0x00D4},
    {'O', 0x0303, 0x00D5}, {'O', 0x0308, 0x00D6},
    {'U', 0x0300, 0x00D9}, {'U', 0x0301, 0x00DA}, {'U', 0x0302, 0x00DB}, {'U', 0x0308, 0x00DC},
    {'Y', 0x0301, 0x00DD},
    {'a', 0x0300, 0x00E0}, {'a', 0x0301, 0x00E1}, {'a', 0x0302, 0x00E2},
    {'a', 0x0303, 0x00E3}, {'a', 0x0308, 0x00E4}, {'a', 0x030A, 0x00E5},
    {'c', 0x0327, 0x00E7},
    {'e', 0x0300, 0x00E8}, {'e', 0x0301, 0x00E9}, {'e', 0x0302, 0x00EA}, {'e', 0x0308, 0x00EB},
    {'i', 0x0300, 0x00EC}, {'i', 0x0301, 0x00ED}, {'i', 0x0302, 0x00EE}, {'i', 0x0308, 0x00EF},
    {'n', 0x0303, 0x00F1},
    {'o', 0x0300, 0x00F2}, {'o', 0x0301, 0x00F3}, {'o', 0x0302, 0x00F4},
    {'o', 0x0303, 0x00F5}, {'o', 0x0308, 0x00F6},
    {'u', 0x0300, 0x00F9}, {'u', 0x0301, 0x00FA}, {'u', 0x0302, 0x00FB}, {'u', 0x0308, 0x00FC},
    {'y', 0x0301, 0x00FD}, {'y', 0x0308, 0x00FF},
    {0x0415, 0x0308, 0x0401}, {0x0435, 0x0308, 0x0451},
    {'d', 0x0307, 0x1E0B}, {0x00EA, 0x0301, 0x1EBF},
})

// compExclusions lists codepoints that have a canonical decomposition but
// must never be produced by the composer, per the STABLE option's
// Composition_Exclusion property. The Ohm and Angstrom signs are the only ones
// this module's table covers: they decompose to capital omega and to capital A
// with ring above, which do not recompose back to them.
var compExclusions = map[rune]bool{
    0x2126: true,
    0x212B: true,
}

func buildComposeIndex(entries []struct{ First, Second, Composite rune }) map[composeKey]rune {
    m := make(map[composeKey]rune, len(entries))
    for _, e := range entries {
        m[composeKey{e.First, e.Second}] = e.Composite
    }
    return m
}

// Compose returns the single codepoint that canonically composes first and
// second, if any such composition exists. This is a pure lookup: it does not
// apply composition-exclusion policy, which belongs to the caller (gated on
// its STABLE option, via [IsCompositionExclusion]). Hangul pairs are not
// handled here; callers check [IsHangulSyllable] / jamo ranges first.
func Compose(first, second rune) (rune, bool) {
    composite, ok := compositions[composeKey{first, second}]
    if !ok { return 0, false }
    return composite, true
}

// IsCompositionExclusion reports whether cp is excluded from being produced
// by composition, even though it has a canonical decomposition.
func IsCompositionExclusion(cp rune) bool {
    return compExclusions[cp]
}
