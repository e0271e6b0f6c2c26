package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParse(t *testing.T) {
	yaml := `
input: testdata/day05.txt
part: 1
format: yaml
log_level: debug
`

	c, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, "testdata/day05.txt", c.Input)
	assert.Equal(t, 1, c.Part)
	assert.Equal(t, "yaml", c.Format)

	lvl, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)
}

func TestParseMinimal(t *testing.T) {
	c, err := Parse([]byte("input: day05.txt\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, c.Part)
	assert.Equal(t, "text", c.Format)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, Default().Format, c.Format)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("part: [1"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"bad part", Config{Part: 3, Format: "text", LogLevel: "info"}},
		{"bad format", Config{Part: 1, Format: "json", LogLevel: "info"}},
		{"bad level", Config{Part: 1, Format: "text", LogLevel: "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.cfg.Validate(), ErrInvalid)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("part: 1\n"), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Part)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
