package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	Version, Commit, Date = "v1.2.0", "abc123", "2024-01-31"
	t.Cleanup(func() { Version, Commit, Date = "dev", "none", "unknown" })

	assert.Equal(t, "v1.2.0 (commit: abc123, built: 2024-01-31)", String())
}
