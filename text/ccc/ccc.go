// Package ccc exposes canonical combining class lookup and canonical
// ordering, the reordering stage of the wider normalization pipeline this
// module implements.
//
// A maximal run of non-starter codepoints (those with ccc != 0) is stably
// sorted by combining class; starters (ccc == 0) are never moved and never
// reordered across.
package ccc

import (
    "errors"
    "sort"
    "unicode/utf8"

    "github.com/tawesoft/utext/internal/ucd"
    "golang.org/x/text/transform"
)

// CCC is a Unicode canonical combining class, a small integer indicating how
// a combining mark should be ordered relative to other combining marks
// applied to the same base character. Zero means "not reordered" (a
// starter).
type CCC = uint8

// MaxNonStarters bounds the length of a single run of consecutive
// non-starter codepoints this package will reorder. A legitimate run this
// long essentially never occurs in real text; the limit exists so that
// adversarial input (thousands of combining marks stacked on one base
// character) cannot be used to blow up reordering cost, per
// TestReorder_MaliciousInput.
const MaxNonStarters = 32

// ErrMaxNonStarters is returned by [Reorder], [ReorderRunes] and the
// [Transformer] when a single run of non-starter codepoints exceeds
// [MaxNonStarters].
var ErrMaxNonStarters = errors.New("ccc: too many consecutive non-starter codepoints")

// Of returns the canonical combining class of cp.
func Of(cp rune) CCC {
    return ucd.Get(cp).CombiningClass
}

// ReorderRunes stably sorts every maximal run of consecutive non-starter
// runes in rs, in place, by combining class.
func ReorderRunes(rs []rune) error {
    n := len(rs)
    i := 0
    for i < n {
        if Of(rs[i]) == 0 {
            i++
            continue
        }
        j := i
        for j < n && Of(rs[j]) != 0 {
            j++
        }
        if j-i > MaxNonStarters {
            return ErrMaxNonStarters
        }
        stableSortRun(rs[i:j])
        i = j
    }
    return nil
}

// Reorder stably sorts every maximal run of consecutive non-starter
// codepoints in the UTF-8 encoded b, in place, by combining class. The
// reordered output has exactly the same length in bytes as the input, since
// it is a permutation of the same codepoints.
func Reorder(b []byte) error {
    rs := []rune(string(b))
    if err := ReorderRunes(rs); err != nil {
        return err
    }
    copy(b, []byte(string(rs)))
    return nil
}

func stableSortRun(run []rune) {
    sort.SliceStable(run, func(i, j int) bool {
        return Of(run[i]) < Of(run[j])
    })
}

// Transformer is a streaming [golang.org/x/text/transform.Transformer] that
// performs the same reordering as [Reorder] over arbitrarily large input,
// buffering only as much as one run of non-starters requires.
var Transformer transform.Transformer = &streamReorderer{}

type streamReorderer struct {
    run      []rune // the run currently being accumulated: zero or one starter, then non-starters
    flushing []rune // already-ordered runes not yet copied to dst
}

func (t *streamReorderer) Reset() {
    t.run = t.run[:0]
    t.flushing = t.flushing[:0]
}

func (t *streamReorderer) nonStarterCount() int {
    n := 0
    for _, r := range t.run {
        if Of(r) != 0 {
            n++
        }
    }
    return n
}

// settle stably sorts the non-starter suffix of t.run into t.flushing and
// clears t.run. If t.run begins with a starter, that starter is left in
// place at the front.
func (t *streamReorderer) settle() {
    run := make([]rune, len(t.run))
    copy(run, t.run)
    if len(run) > 0 && Of(run[0]) == 0 {
        stableSortRun(run[1:])
    } else {
        stableSortRun(run)
    }
    t.flushing = append(t.flushing, run...)
    t.run = t.run[:0]
}

func (t *streamReorderer) drainFlushing(dst []byte) (nDst int, err error) {
    for len(t.flushing) > 0 {
        size := utf8.RuneLen(t.flushing[0])
        if size < 0 {
            size = utf8.RuneLen(utf8.RuneError)
        }
        if nDst+size > len(dst) {
            return nDst, transform.ErrShortDst
        }
        n := utf8.EncodeRune(dst[nDst:], t.flushing[0])
        nDst += n
        t.flushing = t.flushing[1:]
    }
    return nDst, nil
}

func (t *streamReorderer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
    nDst, err = t.drainFlushing(dst)
    if err != nil {
        return nDst, 0, err
    }

    for nSrc < len(src) {
        r, size := utf8.DecodeRune(src[nSrc:])
        if r == utf8.RuneError && size <= 1 {
            if !atEOF && !utf8.FullRune(src[nSrc:]) {
                return nDst, nSrc, transform.ErrShortSrc
            }
            if size == 0 {
                size = 1
            }
        }

        cc := Of(r)
        if cc == 0 && len(t.run) > 0 {
            t.settle()
            n, derr := t.drainFlushing(dst[nDst:])
            nDst += n
            if derr != nil {
                return nDst, nSrc, derr
            }
        }
        if cc != 0 && t.nonStarterCount()+1 > MaxNonStarters {
            return nDst, nSrc, ErrMaxNonStarters
        }

        t.run = append(t.run, r)
        nSrc += size
    }

    if atEOF {
        t.settle()
        n, derr := t.drainFlushing(dst[nDst:])
        nDst += n
        if derr != nil {
            return nDst, nSrc, derr
        }
        return nDst, nSrc, nil
    }

    return nDst, nSrc, transform.ErrShortSrc
}
