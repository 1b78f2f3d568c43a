// Package testutil provides reusable test helper functions for image
// resizer tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// DeterministicBytes returns n pseudo-random bytes from a fixed-seed
// xorshift generator, so fixtures are reproducible across runs and
// platforms.
func DeterministicBytes(n int, seed uint64) []byte {
	if seed == 0 {
		seed = 0x9e3779b97f4a7c15
	}
	out := make([]byte, n)
	s := seed
	for i := range out {
		s ^= s << 13
		s ^= s >> 7
		s ^= s << 17
		out[i] = byte(s)
	}
	return out
}

// AssertBytesInDelta verifies two byte slices have equal length and
// that every element differs by at most delta.
func AssertBytesInDelta(t *testing.T, want, got []byte, delta int, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, got, len(want), msgAndArgs...) {
		return false
	}
	for i := range want {
		d := int(want[i]) - int(got[i])
		if d < 0 {
			d = -d
		}
		if d > delta {
			return assert.Fail(t, "byte mismatch",
				"index %d: want %d, got %d (delta %d > %d)", i, want[i], got[i], d, delta)
		}
	}
	return true
}

// AssertAllBytes verifies every element of buf equals v.
func AssertAllBytes(t *testing.T, buf []byte, v byte, msgAndArgs ...any) bool {
	t.Helper()
	for i, b := range buf {
		if b != v {
			return assert.Fail(t, "unexpected byte",
				"index %d: got %d, want %d", i, b, v)
		}
	}
	return true
}

// AssertBytesInRange verifies every element of buf lies in [lo, hi].
func AssertBytesInRange(t *testing.T, buf []byte, lo, hi byte, msgAndArgs ...any) bool {
	t.Helper()
	for i, b := range buf {
		if b < lo || b > hi {
			return assert.Fail(t, "byte out of range",
				"index %d: got %d, want in [%d, %d]", i, b, lo, hi)
		}
	}
	return true
}

// AssertFloat32InDelta verifies two float32 slices match within delta.
func AssertFloat32InDelta(t *testing.T, want, got []float32, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, got, len(want), msgAndArgs...) {
		return false
	}
	for i := range want {
		if !assert.InDelta(t, want[i], got[i], delta,
			"index %d: want %v, got %v", i, want[i], got[i]) {
			return false
		}
	}
	return true
}
