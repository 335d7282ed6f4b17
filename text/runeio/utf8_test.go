package runeio_test

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/tawesoft/utext/text/runeio"
)

func TestCodepointValid(t *testing.T) {
    assert.True(t, runeio.CodepointValid('a'))
    assert.True(t, runeio.CodepointValid(0x10FFFF))
    assert.False(t, runeio.CodepointValid(0x110000))
    assert.False(t, runeio.CodepointValid(-1))
    assert.False(t, runeio.CodepointValid(0xD800)) // lead surrogate
    assert.False(t, runeio.CodepointValid(0xDFFF)) // trail surrogate
}

func TestIterate(t *testing.T) {
    type row struct {
        name string
        in   []byte
        cp   rune
        size int
    }

    rows := []row{
        {"empty", []byte{}, -1, 0},
        {"ascii", []byte("a"), 'a', 1},
        {"two byte", []byte("é"), 0x00E9, 2},
        {"three byte", []byte("中"), 0x4E2D, 3},
        {"four byte", []byte("\U0001F600"), 0x1F600, 4},
        {"lone continuation byte", []byte{0x80}, -1, 1},
        {"invalid lead byte 0xFF", []byte{0xFF}, -1, 1},
        {"overlong lead 0xC0", []byte{0xC0, 0x80}, -1, 1},
        {"truncated two byte", []byte{0xC3}, -1, 1},
        {"surrogate encoded", []byte{0xED, 0xA0, 0x80}, -1, 1},
    }

    for _, r := range rows {
        t.Run(r.name, func(t *testing.T) {
            cp, size := runeio.Iterate(r.in, -1)
            assert.Equal(t, r.cp, cp)
            assert.Equal(t, r.size, size)
        })
    }
}

func TestIterate_maxLen(t *testing.T) {
    // a full 3-byte sequence truncated by maxLen should be invalid, and
    // progress by exactly one byte.
    b := []byte("中") // E4 B8 AD
    cp, size := runeio.Iterate(b, 2)
    assert.Equal(t, rune(-1), cp)
    assert.Equal(t, 1, size)
}

func TestEncode(t *testing.T) {
    assert.Equal(t, []byte("a"), runeio.Encode('a'))
    assert.Equal(t, []byte("é"), runeio.Encode(0x00E9))
    assert.Equal(t, []byte{0xFF}, runeio.Encode(0xFFFF))
    assert.Nil(t, runeio.Encode(-1))
    assert.Nil(t, runeio.Encode(0x110000))
}

func TestIterate_roundtrip(t *testing.T) {
    s := "Hello, 世界! \U0001F600"
    b := []byte(s)
    var got []rune
    for len(b) > 0 {
        cp, size := runeio.Iterate(b, -1)
        assert.NotEqual(t, rune(-1), cp)
        got = append(got, cp)
        b = b[size:]
    }
    assert.Equal(t, []rune(s), got)
}
