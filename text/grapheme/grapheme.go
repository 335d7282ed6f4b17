// Package grapheme implements grapheme-cluster boundary detection: deciding
// whether a user-perceived character boundary falls between two codepoints,
// per the extended rules of UAX #29.
//
// This package only detects boundaries; it does not provide full text
// segmentation beyond that (word or line breaking are out of scope).
package grapheme

import (
    "unicode/utf8"

    "github.com/tawesoft/utext/internal/ucd"
)

// BoundClass is the grapheme-cluster boundary class of a codepoint: a small
// tag used, two codepoints at a time, to decide whether a boundary falls
// between them.
type BoundClass uint8

const (
    Start               BoundClass = iota // start of text; a boundary always follows it
    Other                                  // anything not called out below
    CR                                     // U+000D
    LF                                     // U+000A
    Control                                // general category Cc, excluding CR/LF
    Extend                                 // combining marks and similar, never break before
    L                                      // Hangul leading consonant jamo
    V                                      // Hangul vowel jamo
    T                                      // Hangul trailing consonant jamo
    LV                                     // Hangul precomposed LV syllable
    LVT                                    // Hangul precomposed LVT syllable
    RegionalIndicator                      // flag-emoji halves
    SpacingMark                            // spacing combining marks, never break before
)

// Of returns the grapheme-cluster boundary class of cp.
func Of(cp rune) BoundClass {
    return BoundClass(ucd.Get(cp).BoundClass)
}

// Break reports whether a grapheme-cluster boundary is permitted between a
// codepoint of class prev and a following codepoint of class cur, per the
// UAX #29 extended rules.
//
// This is a two-class interface: it decides purely from the immediately
// preceding boundary class, not from a longer window of context. This is
// sufficient for every rule except distinguishing an odd-length run of
// Regional_Indicator codepoints from a legal sequence of paired flags; see
// DESIGN.md for why that limitation was accepted rather than threading
// additional parity state through the public API.
func Break(prev, cur BoundClass) bool {
    switch {
    case prev == Start:
        return true // GB1: break at start of text
    case prev == CR && cur == LF:
        return false // GB3: CR x LF
    case prev == CR || prev == LF || prev == Control:
        return true // GB4: break after CR/LF/Control
    case cur == CR || cur == LF || cur == Control:
        return true // GB5: break before CR/LF/Control
    case prev == L && (cur == L || cur == V || cur == LV || cur == LVT):
        return false // GB6
    case (prev == LV || prev == V) && (cur == V || cur == T):
        return false // GB7
    case (prev == LVT || prev == T) && cur == T:
        return false // GB8
    case cur == Extend || cur == SpacingMark:
        return false // GB9, GB9a
    case prev == RegionalIndicator && cur == RegionalIndicator:
        return false // GB12/GB13, without odd/even-run parity tracking
    default:
        return true // GB999
    }
}

// GraphemeBreak is a convenience wrapper around [Break] that looks up the
// boundary class of each codepoint first.
func GraphemeBreak(cp1, cp2 rune) bool {
    return Break(Of(cp1), Of(cp2))
}

// Segments returns an iterator function over the grapheme clusters of s.
// Each call returns the next cluster and true, or ("", false) once every
// cluster has been returned.
func Segments(s string) func() (string, bool) {
    b := []byte(s)
    pos := 0
    prevClass := Start
    havePrev := false

    return func() (string, bool) {
        if pos >= len(b) {
            return "", false
        }

        start := pos
        for pos < len(b) {
            r, size := utf8.DecodeRune(b[pos:])
            cls := Of(r)

            if havePrev && Break(prevClass, cls) && pos > start {
                prevClass = cls
                return string(b[start:pos]), true
            }

            havePrev = true
            prevClass = cls
            pos += size
        }

        return string(b[start:pos]), true
    }
}
