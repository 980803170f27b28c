package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "./output", cfg.Output.Dir)
	assert.Equal(t, 10, cfg.Report.TopConversations)
	assert.Empty(t, cfg.Pricing)
}

func TestLoad(t *testing.T) {
	content := `
output:
  dir: /tmp/results
report:
  top_conversations: 5
pricing:
  gpt-4:
    input: 0.01
    output: 0.02
`
	path := filepath.Join(t.TempDir(), "arclogs.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/results", cfg.Output.Dir)
	assert.Equal(t, 5, cfg.Report.TopConversations)
	require.Contains(t, cfg.Pricing, "gpt-4")
	assert.Equal(t, 0.01, cfg.Pricing["gpt-4"].Input)
	assert.Equal(t, 0.02, cfg.Pricing["gpt-4"].Output)
}

func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arclogs.yml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  dir: ./elsewhere\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "./elsewhere", cfg.Output.Dir)
	// Unset fields keep their defaults.
	assert.Equal(t, 10, cfg.Report.TopConversations)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("output: [unclosed"), 0644))
	_, err := Load(path)
	require.Error(t, err)
}
