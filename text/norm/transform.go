package norm

import (
    "io"

    "golang.org/x/text/transform"
)

// transformer is a [golang.org/x/text/transform.Transformer] that applies
// [Map] to an entire stream. Unlike [text/ccc.Transformer], it buffers the
// whole input until atEOF: the composition stage's blocking-rule lookahead
// spans an entire maximal run of combining marks, and a run can itself span
// an arbitrary number of read chunks, so there is no chunk-sized amount of
// lookahead that is always sufficient. Buffering the whole input trades
// streaming memory for a correct result; see DESIGN.md.
type transformer struct {
    opts    Options
    buf     []byte
    out     string
    haveOut bool
    pos     int
}

// Transformer returns a [golang.org/x/text/transform.Transformer] that
// applies [Map] with the given opts to a byte stream.
func Transformer(opts Options) transform.Transformer {
    return &transformer{opts: opts}
}

func (t *transformer) Reset() {
    t.buf = nil
    t.out = ""
    t.haveOut = false
    t.pos = 0
}

func (t *transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
    if !t.haveOut {
        t.buf = append(t.buf, src...)
        nSrc = len(src)
        if !atEOF {
            return 0, nSrc, nil
        }

        out, mapErr := Map(string(t.buf), t.opts)
        if mapErr != nil {
            return 0, nSrc, mapErr
        }
        t.out = out
        t.haveOut = true
    }

    n := copy(dst, t.out[t.pos:])
    t.pos += n
    if t.pos < len(t.out) {
        return n, nSrc, transform.ErrShortDst
    }
    return n, nSrc, nil
}

// NewReader wraps r so that every byte read from it has already been passed
// through [Map] with opts.
func NewReader(r io.Reader, opts Options) io.Reader {
    return transform.NewReader(r, Transformer(opts))
}

// NewWriter wraps w so that every byte written to it is passed through
// [Map] with opts before reaching w.
func NewWriter(w io.Writer, opts Options) io.WriteCloser {
    return transform.NewWriter(w, Transformer(opts))
}
