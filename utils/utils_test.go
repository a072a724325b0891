package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundToXDp(t *testing.T) {
	assert.Equal(t, 1.23, RoundToXDp(1.2345, 2))
	assert.Equal(t, 1.235, RoundToXDp(1.2345, 3))
	assert.Equal(t, 2.0, RoundToXDp(1.5, 0))
}

func TestNextAvailableFilename(t *testing.T) {
	dir := t.TempDir()

	path := NextAvailableFilename(dir, "sharing", ".png")
	assert.Equal(t, filepath.Join(dir, "sharing.png"), path)

	require.NoError(t, os.WriteFile(path, nil, 0644))
	path = NextAvailableFilename(dir, "sharing", ".png")
	assert.Equal(t, filepath.Join(dir, "sharing_1.png"), path)

	require.NoError(t, os.WriteFile(path, nil, 0644))
	path = NextAvailableFilename(dir, "sharing", ".png")
	assert.Equal(t, filepath.Join(dir, "sharing_2.png"), path)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "time-to-find-all-bugs", Slugify("Time to find all bugs"))
	assert.Equal(t, "collab-vs-isolated", Slugify("  Collab, vs. Isolated!  "))
	assert.Equal(t, "", Slugify("---"))
}
