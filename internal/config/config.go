// Package config provides YAML-based configuration loading for the runner.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all tunable values of the runner. The defaults reproduce
// the reference game: a 512x384 window, 8 obstacles 400 units apart and a
// 20/40/80 parallax.
type RunnerConfig struct {
	Window    WindowConfig    `yaml:"window"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Collision CollisionConfig `yaml:"collision"`
	Parallax  ParallaxConfig  `yaml:"parallax"`
	Messages  MessageConfig   `yaml:"messages"`
	Assets    AssetConfig     `yaml:"assets"`
}

// WindowConfig defines the world size and frame rate.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
}

// PhysicsConfig defines the vertical motion of the player, in units per second.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
}

// PlayerConfig describes the player sprite sheet (a single row of frames).
type PlayerConfig struct {
	Texture       string  `yaml:"texture"`
	Frames        int     `yaml:"frames"`
	FrameDuration float64 `yaml:"frame_duration"`
	MaxFrame      int     `yaml:"max_frame"`
}

// ObstacleConfig describes the obstacle sprite sheet and the obstacle row.
type ObstacleConfig struct {
	Texture       string  `yaml:"texture"`
	Columns       int     `yaml:"columns"`
	Rows          int     `yaml:"rows"`
	Count         int     `yaml:"count"`
	Spacing       float64 `yaml:"spacing"`
	Velocity      float64 `yaml:"velocity"`
	FrameDuration float64 `yaml:"frame_duration"`
	MaxFrame      int     `yaml:"max_frame"`
}

// CollisionConfig defines the inset applied to obstacle hitboxes.
// Offset moves the box origin, Pad is subtracted twice from each dimension.
type CollisionConfig struct {
	Offset float64 `yaml:"offset"`
	Pad    float64 `yaml:"pad"`
}

// ParallaxConfig defines the background layers, farthest first.
type ParallaxConfig struct {
	Scale  float64       `yaml:"scale"`
	Layers []LayerConfig `yaml:"layers"`
}

// LayerConfig defines one scrolling background texture.
type LayerConfig struct {
	Texture string  `yaml:"texture"`
	Speed   float64 `yaml:"speed"`
}

// MessageConfig defines the end-of-round overlays.
type MessageConfig struct {
	Lose string `yaml:"lose"`
	Win  string `yaml:"win"`
	Y    int    `yaml:"y"`
	Size int    `yaml:"size"`
}

// AssetConfig controls where textures are read from.
// An empty Dir means the textures embedded in the binary.
type AssetConfig struct {
	Dir string `yaml:"dir"`
}

// ParallaxLayers is the number of background layers the runner draws.
const ParallaxLayers = 3

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate reports the first value that would make the simulation meaningless.
func (c RunnerConfig) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return invalid("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Window.TargetFPS <= 0:
		return invalid("window.target_fps must be positive, got %d", c.Window.TargetFPS)
	case c.Physics.Gravity < 0 || c.Physics.JumpImpulse < 0:
		return invalid("physics values must not be negative")
	case c.Player.Texture == "" || c.Obstacles.Texture == "":
		return invalid("player and obstacle textures are required")
	case c.Player.Frames <= 0:
		return invalid("player.frames must be positive, got %d", c.Player.Frames)
	case c.Player.FrameDuration <= 0 || c.Obstacles.FrameDuration <= 0:
		return invalid("frame durations must be positive")
	case c.Player.MaxFrame < 0 || c.Obstacles.MaxFrame < 0:
		return invalid("max frames must not be negative")
	case c.Obstacles.Columns <= 0 || c.Obstacles.Rows <= 0:
		return invalid("obstacle sheet grid must be positive, got %dx%d", c.Obstacles.Columns, c.Obstacles.Rows)
	case c.Obstacles.Count <= 0:
		return invalid("obstacles.count must be positive, got %d", c.Obstacles.Count)
	case c.Obstacles.Spacing < 0 || c.Obstacles.Velocity < 0:
		return invalid("obstacle spacing and velocity must not be negative")
	case c.Parallax.Scale <= 0:
		return invalid("parallax.scale must be positive, got %v", c.Parallax.Scale)
	case len(c.Parallax.Layers) != ParallaxLayers:
		return invalid("parallax needs exactly %d layers, got %d", ParallaxLayers, len(c.Parallax.Layers))
	}
	for i, l := range c.Parallax.Layers {
		if l.Texture == "" {
			return invalid("parallax layer %d has no texture", i)
		}
		if l.Speed < 0 {
			return invalid("parallax layer %d has negative speed %v", i, l.Speed)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("config: %w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
