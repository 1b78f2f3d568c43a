package cpuid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDetectedIsSupported verifies the detected level is self-consistent
// with the capability table.
func TestDetectedIsSupported(t *testing.T) {
	d := Detected()
	assert.True(t, d.IsValid())
	assert.True(t, Supported(d), "detected level %v must be supported", d)
}

// TestScalarAlwaysSupported verifies the guaranteed fallback tier.
func TestScalarAlwaysSupported(t *testing.T) {
	assert.True(t, Supported(LevelNone))
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "none", LevelNone.String())
	assert.Equal(t, "sse4.1", LevelSSE41.String())
	assert.Equal(t, "avx2", LevelAVX2.String())
	assert.Equal(t, "neon", LevelNEON.String())
	assert.Equal(t, "unknown", Level(99).String())
}

func TestInvalidLevelNotSupported(t *testing.T) {
	assert.False(t, Supported(Level(-1)))
	assert.False(t, Supported(Level(99)))
}

// TestInfoNonEmpty verifies the SIMD backend reports something.
func TestInfoNonEmpty(t *testing.T) {
	assert.NotEmpty(t, Info())
}
