package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/nebula-runner/assets"
	"github.com/vovakirdan/nebula-runner/internal/runner"
)

// texture is a GPU image.
type texture struct {
	path string
	img  *ebiten.Image
}

func (t *texture) Width() int  { return t.img.Bounds().Dx() }
func (t *texture) Height() int { return t.img.Bounds().Dy() }

// textureLoader decodes assets and uploads them as ebiten images.
type textureLoader struct {
	dir string
}

func (l textureLoader) LoadTexture(path string) (runner.Texture, error) {
	decoded, err := assets.Decode(l.dir, path)
	if err != nil {
		return nil, err
	}
	return &texture{path: path, img: ebiten.NewImageFromImage(decoded.Image)}, nil
}

func (l textureLoader) ReleaseTexture(tex runner.Texture) {
	if t, ok := tex.(*texture); ok {
		t.img.Deallocate()
	}
}

var _ runner.TextureLoader = textureLoader{}
