package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in configuration. It mirrors
// defaults/runner.yaml and is used when the embedded YAML cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Window: WindowConfig{
			Width:     512,
			Height:    384,
			Title:     "Runner",
			TargetFPS: 60,
		},
		Physics: PhysicsConfig{
			Gravity:     1000,
			JumpImpulse: 600,
		},
		Player: PlayerConfig{
			Texture:       "textures/scarfy.png",
			Frames:        6,
			FrameDuration: 1.0 / 12.0,
			MaxFrame:      5,
		},
		Obstacles: ObstacleConfig{
			Texture:       "textures/12_nebula_spritesheet.png",
			Columns:       8,
			Rows:          8,
			Count:         8,
			Spacing:       400,
			Velocity:      250,
			FrameDuration: 1.0 / 12.0,
			MaxFrame:      8,
		},
		Collision: CollisionConfig{
			Offset: 20,
			Pad:    40,
		},
		Parallax: ParallaxConfig{
			Scale: 2,
			Layers: []LayerConfig{
				{Texture: "textures/far-buildings.png", Speed: 20},
				{Texture: "textures/back-buildings.png", Speed: 40},
				{Texture: "textures/foreground.png", Speed: 80},
			},
		},
		Messages: MessageConfig{
			Lose: "You lose!",
			Win:  "You win!",
			Y:    150,
			Size: 24,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `runner config`.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
