package grapheme_test

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/tawesoft/utext/text/grapheme"
)

func TestOf(t *testing.T) {
    assert.Equal(t, grapheme.CR, grapheme.Of('\r'))
    assert.Equal(t, grapheme.LF, grapheme.Of('\n'))
    assert.Equal(t, grapheme.Extend, grapheme.Of(0x0300))   // combining grave accent
    assert.Equal(t, grapheme.L, grapheme.Of(0x1100))        // hangul choseong kiyeok
    assert.Equal(t, grapheme.V, grapheme.Of(0x1161))        // hangul jungseong a
    assert.Equal(t, grapheme.T, grapheme.Of(0x11A8))        // hangul jongseong kiyeok
    assert.Equal(t, grapheme.RegionalIndicator, grapheme.Of(0x1F1FA)) // regional indicator U
    assert.Equal(t, grapheme.Other, grapheme.Of('a'))
}

func TestBreak(t *testing.T) {
    type row struct {
        name string
        prev grapheme.BoundClass
        cur  grapheme.BoundClass
        want bool
    }

    rows := []row{
        {"GB3 CR x LF", grapheme.CR, grapheme.LF, false},
        {"GB4 after CR", grapheme.CR, grapheme.Other, true},
        {"GB4 after Control", grapheme.Control, grapheme.Other, true},
        {"GB5 before LF", grapheme.Other, grapheme.LF, true},
        {"GB6 L x L", grapheme.L, grapheme.L, false},
        {"GB6 L x V", grapheme.L, grapheme.V, false},
        {"GB6 L x LV", grapheme.L, grapheme.LV, false},
        {"GB7 LV x V", grapheme.LV, grapheme.V, false},
        {"GB7 V x T", grapheme.V, grapheme.T, false},
        {"GB8 LVT x T", grapheme.LVT, grapheme.T, false},
        {"GB9 x Extend", grapheme.Other, grapheme.Extend, false},
        {"GB9a x SpacingMark", grapheme.Other, grapheme.SpacingMark, false},
        {"GB12/13 RI x RI", grapheme.RegionalIndicator, grapheme.RegionalIndicator, false},
        {"GB999 default break", grapheme.Other, grapheme.Other, true},
    }

    for _, r := range rows {
        t.Run(r.name, func(t *testing.T) {
            assert.Equal(t, r.want, grapheme.Break(r.prev, r.cur))
        })
    }
}

func TestGraphemeBreak(t *testing.T) {
    // base letter followed by a combining mark never breaks
    assert.False(t, grapheme.GraphemeBreak('e', 0x0301))
    // two unrelated base letters always break
    assert.True(t, grapheme.GraphemeBreak('a', 'b'))
    // CRLF never breaks
    assert.False(t, grapheme.GraphemeBreak('\r', '\n'))
}

func TestSegments(t *testing.T) {
    // "e" + combining acute accent forms one cluster, then "a", then a CRLF.
    s := string([]rune{'e', 0x0301, 'a', '\r', '\n'})
    next := grapheme.Segments(s)
    var got []string
    for {
        seg, ok := next()
        if !ok {
            break
        }
        got = append(got, seg)
    }
    assert.Equal(t, []string{string([]rune{'e', 0x0301}), "a", "\r\n"}, got)
}

func TestSegments_empty(t *testing.T) {
    next := grapheme.Segments("")
    _, ok := next()
    assert.False(t, ok)
}

func TestSegments_singleCodepoints(t *testing.T) {
    next := grapheme.Segments("abc")
    var got []string
    for {
        seg, ok := next()
        if !ok {
            break
        }
        got = append(got, seg)
    }
    assert.Equal(t, []string{"a", "b", "c"}, got)
}
