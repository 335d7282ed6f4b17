// Package ks ("kitchen sink") implements assorted helpful things that don't
// fit anywhere else. Several of the text packages in this module lean on it
// for an unreachable-branch marker ([Never]), a membership test ([In]) and,
// in their tests, assertions and a termination check ([TestCompletes]), the
// same way the upstream library does.
package ks

import (
    "errors"
    "fmt"
    "reflect"
    "strings"
    "unicode/utf8"

    "golang.org/x/exp/utf8string"
)

// FilterError returns err, unless errors.Is(err, i) returns true for any
// i in ignore, in which case it returns nil.
//
// For example,
//
//     // Create a symlink but ignore an error if the file exists.
//     err := FilterError(os.Symlink(oldname, newname), fs.ErrExist)
func FilterError(err error, ignore ... error) error {
    if err == nil { return nil }
    for _, i := range ignore {
        if errors.Is(err, i) { return nil }
    }
    return err
}

// MustMap is used to construct a map if it is nil, or return the input
// unchanged (i.e. the identity function) if it is not nil. This is useful
// for conditionally initialising a map that may or may not be its zero value.
func MustMap[K comparable, V any](m map[K]V) map[K]V {
    if m != nil { return m }
    return make(map[K]V)
}

// Reserve grows a slice to fit at least size extra elements. Like the builtin
// append, it may return an updated slice.
//
// Deprecated: use [golang.org/x/exp/slices.Grow].
func Reserve[T any](xs []T, size int) []T {
    // https://github.com/golang/go/wiki/SliceTricks#extend-capacity
    if cap(xs) - len(xs) < size {
        return append(make([]T, 0, len(xs) + size), xs...)
    }
    return xs
}

// WrapBlock word-wraps a whitespace-delimited string to a given number of
// columns. The column length is given in runes (Unicode code points), not
// bytes.
//
// This is a simple implementation without any configuration options, designed
// for circumstances such as quickly wrapping a single error message for
// display.
//
// Save for bug fixes, the output of this function for any given input is
// frozen and will not be changed in future. This means you can reliably test
// against the return value of this function without your tests being brittle.
//
// Caveat: Single words longer than the column length will be truncated.
//
// Caveat: all whitespace, including existing new lines, is collapsed. An input
// consisting of multiple paragraphs will be wrapped into a single word-wrapped
// paragraph.
//
// Caveat: assumes all runes in the input string represent a glyph of length
// one. Whether this is true or not depends on how the display and font treats
// different runes. For example, some runes where [Unicode.IsGraphic] returns
// false might still be displayed as a special escaped character. Some letters
// might be displayed wider than usual, even in a monospaced font.
func WrapBlock(message string, columns int) string {
    var atoms = strings.Fields(strings.TrimSpace(message))
    var sb = strings.Builder{}
    var currentLength int

    if columns <= 0 { return "" }

    for i, atom := range atoms {
        isLast := (i + 1 == len(atoms))
        atomLength := utf8.RuneCountInString(atom)

        // will overflow?
        if (currentLength > 0) && (currentLength + atomLength + 1 > columns) {
            sb.WriteByte('\n')
            currentLength = 0
        }

        // special case for an atom longer than a whole line
        if (currentLength == 0) && (atomLength >= columns) {
            truncated := utf8string.NewString(atom).Slice(0, columns)
            sb.WriteString(truncated)
            if !isLast { sb.WriteByte('\n') }
            currentLength = 0
            continue
        }

        // mid-line?
        if currentLength > 0 {
            sb.WriteByte(' ')
            currentLength += 1
        }

        sb.WriteString(atom)
        currentLength += atomLength
    }

    return sb.String()
}

// Zero returns the zero value of type T. This is occasionally more readable
// than a bare var declaration when used inline, e.g. as a function argument.
func Zero[T any]() T {
    var zero T
    return zero
}

// Never indicates that a branch of code is believed to be unreachable. It
// panics unconditionally: use it to document an invariant at the point a
// switch or if-chain is believed to be exhaustive, e.g. every [text/dm.Type]
// has a String case.
func Never() {
    panic(fmt.Errorf("ks.Never: unreachable code reached"))
}

// Assert panics with the given message if cond is false.
func Assert(cond bool, message ...any) {
    if cond { return }
    if len(message) == 0 {
        panic(fmt.Errorf("ks.Assert: assertion failed"))
    }
    panic(fmt.Errorf("ks.Assert: %s", fmt.Sprint(message...)))
}

// In reports whether needle is equal to any of the given haystack values.
func In[T comparable](needle T, haystack ...T) bool {
    for _, h := range haystack {
        if needle == h { return true }
    }
    return false
}

// IfThenElse returns t if cond is true, otherwise f. Unlike a genuine
// ternary operator, both t and f are always evaluated, so this is only
// appropriate where evaluating either branch has no side effects.
func IfThenElse[T any](cond bool, t T, f T) T {
    if cond { return t }
    return f
}

// Must accepts a (value, error) pair and always returns a value or raises a
// panic. If the error is nil, returns the input value as normal. Otherwise,
// panics, wrapping the error.
func Must[T any](t T, err error) T {
    if err != nil {
        panic(fmt.Errorf("ks.Must: unexpected error: %w", err))
    }
    return t
}

// MustFunc takes a function f(arg) => (x, error) and returns a function
// f(arg) => x that may panic in the event of error.
func MustFunc[A any, X any](f func(A) (X, error)) func(A) X {
    return func(a A) X {
        return Must(f(a))
    }
}

// Catch calls f and recovers from any panic, returning the zero value of T
// and a non-nil error describing the panic instead of propagating it.
func Catch[T any](f func() T) (result T, err error) {
    defer func() {
        if r := recover(); r != nil {
            if rErr, ok := r.(error); ok {
                err = fmt.Errorf("ks.Catch: caught panic: %w", rErr)
            } else {
                err = fmt.Errorf("ks.Catch: caught panic: %v", r)
            }
        }
    }()
    result = f()
    return
}

// Range applies f to every (key, value) pair produced by ranging over xs,
// which may be a string (key is a byte offset, value is a rune), a slice or
// array (key is an index), a map (key is a map key), or a receive-only
// channel (key is always the zero value of K). It stops early, returning the
// key, value and error at the point f first returns a non-nil error.
//
// This exists because Go's range statement is not itself generic over
// container kind: it gives the same early-exit shape regardless of which kind
// of container it is handed.
func Range[K comparable, V any](f func(k K, v V) error, xs any) (K, V, error) {
    if s, ok := xs.(string); ok {
        for k, v := range s {
            kk, ok1 := any(k).(K)
            vv, ok2 := any(v).(V)
            if !ok1 || !ok2 { Never() }
            if err := f(kk, vv); err != nil {
                return kk, vv, err
            }
        }
        return Zero[K](), Zero[V](), nil
    }

    rv := reflect.ValueOf(xs)
    switch rv.Kind() {
    case reflect.Slice, reflect.Array:
        for i := 0; i < rv.Len(); i++ {
            k, ok := any(i).(K)
            if !ok { Never() }
            v, ok := rv.Index(i).Interface().(V)
            if !ok { Never() }
            if err := f(k, v); err != nil {
                return k, v, err
            }
        }
        return Zero[K](), Zero[V](), nil
    case reflect.Map:
        iter := rv.MapRange()
        for iter.Next() {
            k, ok := iter.Key().Interface().(K)
            if !ok { Never() }
            v, ok := iter.Value().Interface().(V)
            if !ok { Never() }
            if err := f(k, v); err != nil {
                return k, v, err
            }
        }
        return Zero[K](), Zero[V](), nil
    case reflect.Chan:
        for {
            v, ok := rv.Recv()
            if !ok { break }
            vv, ok := v.Interface().(V)
            if !ok { Never() }
            if err := f(Zero[K](), vv); err != nil {
                return Zero[K](), vv, err
            }
        }
        return Zero[K](), Zero[V](), nil
    }

    Never()
    return Zero[K](), Zero[V](), nil
}

// CheckedRange is an alias for [Range], kept for callers migrating from the
// older name.
func CheckedRange[K comparable, V any](f func(k K, v V) error, xs any) (K, V, error) {
    return Range[K, V](f, xs)
}
