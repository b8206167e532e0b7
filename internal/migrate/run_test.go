package migrate

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedVersions(t *testing.T) {
	versions, err := embeddedVersions()
	require.NoError(t, err)
	require.NotEmpty(t, versions)

	assert.True(t, sort.StringsAreSorted(versions), "migrations must apply in sorted order")
	for _, version := range versions {
		assert.False(t, strings.HasSuffix(version, ".sql"), "version %q should not carry the extension", version)
		assert.NotEmpty(t, version)
	}
}
