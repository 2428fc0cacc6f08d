package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	require.NoError(t, err)
	def := DefaultRunnerConfig()

	assert.Equal(t, def.Window, cfg.Window)
	assert.Equal(t, def.Physics, cfg.Physics)
	assert.Equal(t, def.Collision, cfg.Collision)
	assert.Equal(t, 8, cfg.Obstacles.Count)
	assert.Equal(t, 400.0, cfg.Obstacles.Spacing)
	assert.Equal(t, 250.0, cfg.Obstacles.Velocity)

	require.Len(t, cfg.Parallax.Layers, ParallaxLayers)
	for i, speed := range []float64{20, 40, 80} {
		assert.Equal(t, speed, cfg.Parallax.Layers[i].Speed, "layer %d", i)
	}
	assert.NoError(t, cfg.Validate())
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfig(t, "runner.yaml", "physics:\n  gravity: 500\nobstacles:\n  count: 3\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500.0, cfg.Physics.Gravity)
	assert.Equal(t, 600.0, cfg.Physics.JumpImpulse, "unset keys keep defaults")
	assert.Equal(t, 3, cfg.Obstacles.Count)
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedCustomPath(t *testing.T) {
	path := writeConfig(t, "bad.yaml", "window: [1, 2")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, "invalid.yaml", "obstacles:\n  count: 0\n")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
	}{
		{"zero width", func(c *RunnerConfig) { c.Window.Width = 0 }},
		{"zero fps", func(c *RunnerConfig) { c.Window.TargetFPS = 0 }},
		{"negative gravity", func(c *RunnerConfig) { c.Physics.Gravity = -1 }},
		{"missing player texture", func(c *RunnerConfig) { c.Player.Texture = "" }},
		{"zero frame duration", func(c *RunnerConfig) { c.Obstacles.FrameDuration = 0 }},
		{"zero sheet rows", func(c *RunnerConfig) { c.Obstacles.Rows = 0 }},
		{"negative velocity", func(c *RunnerConfig) { c.Obstacles.Velocity = -250 }},
		{"two layers", func(c *RunnerConfig) { c.Parallax.Layers = c.Parallax.Layers[:2] }},
		{"layer without texture", func(c *RunnerConfig) { c.Parallax.Layers[1].Texture = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
