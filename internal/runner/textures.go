package runner

import (
	"fmt"

	"github.com/vovakirdan/nebula-runner/internal/config"
)

// Textures holds every texture a World draws.
type Textures struct {
	Player   Texture
	Obstacle Texture
	Layers   [config.ParallaxLayers]Texture // Farthest first
}

// LoadTextures loads the textures named by cfg. If any load fails, the ones
// already loaded are released before the error is returned.
func LoadTextures(loader TextureLoader, cfg config.RunnerConfig) (Textures, error) {
	var t Textures
	var loaded []Texture

	load := func(path string) (Texture, error) {
		tex, err := loader.LoadTexture(path)
		if err != nil {
			for _, l := range loaded {
				loader.ReleaseTexture(l)
			}
			return nil, fmt.Errorf("runner: load texture %s: %w", path, err)
		}
		loaded = append(loaded, tex)
		return tex, nil
	}

	var err error
	if t.Player, err = load(cfg.Player.Texture); err != nil {
		return Textures{}, err
	}
	if t.Obstacle, err = load(cfg.Obstacles.Texture); err != nil {
		return Textures{}, err
	}
	for i := range t.Layers {
		if t.Layers[i], err = load(cfg.Parallax.Layers[i].Texture); err != nil {
			return Textures{}, err
		}
	}
	return t, nil
}

// Release releases every non-nil texture.
func (t Textures) Release(loader TextureLoader) {
	all := append([]Texture{t.Player, t.Obstacle}, t.Layers[:]...)
	for _, tex := range all {
		if tex != nil {
			loader.ReleaseTexture(tex)
		}
	}
}
