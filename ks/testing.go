package ks

import (
    "testing"
    "time"
)

// TestCompletes fails t if f does not return within the given duration. It
// is used to guard against algorithmic complexity blowups on adversarial
// input (e.g. a canonical reordering implementation that is accidentally
// quadratic in the length of a run of non-starters).
//
// f is run in its own goroutine and is not cancelled if it overruns the
// deadline; TestCompletes only reports the failure and returns, it does not
// wait for a runaway f to finish.
func TestCompletes(t *testing.T, d time.Duration, f func()) {
    t.Helper()
    done := make(chan struct{})
    go func() {
        f()
        close(done)
    }()

    select {
    case <-done:
    case <-time.After(d):
        t.Fatalf("did not complete within %s", d)
    }
}
