package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftline/procchain/config"
)

func TestDefault_MatchesRecognizedKeyDefaults(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 50, cfg.MaxTraversalDepth)
	assert.Equal(t, 400, cfg.MaxNodeCount)
	assert.Equal(t, 100, cfg.BatchQuerySize)
	assert.Equal(t, 10000, cfg.MaxQuerySize)
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max-node-count: 750\nunknown-key: ignored\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 750, cfg.MaxNodeCount)
	assert.Equal(t, 50, cfg.MaxTraversalDepth)
}
