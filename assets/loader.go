package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"

	"github.com/vovakirdan/nebula-runner/internal/runner"
)

// Texture is a decoded image. It satisfies runner.Texture and is what the
// terminal canvas samples from; the window backend uploads Image to the GPU.
type Texture struct {
	Path  string
	Image image.Image
	w, h  int
}

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.w }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.h }

// NewTexture wraps an already decoded image.
func NewTexture(path string, img image.Image) *Texture {
	bounds := img.Bounds()
	return &Texture{Path: path, Image: img, w: bounds.Dx(), h: bounds.Dy()}
}

// Decode reads and decodes a PNG asset.
func Decode(dir, path string) (*Texture, error) {
	b, err := ReadFile(dir, path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return NewTexture(path, img), nil
}

// Loader is a runner.TextureLoader backed by Decode.
type Loader struct {
	Dir string
}

// NewLoader creates a loader that prefers files under dir.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

// LoadTexture decodes the texture at path.
func (l *Loader) LoadTexture(path string) (runner.Texture, error) {
	return Decode(l.Dir, path)
}

// ReleaseTexture drops the decoded pixels.
func (l *Loader) ReleaseTexture(tex runner.Texture) {
	if t, ok := tex.(*Texture); ok {
		t.Image = nil
	}
}

var _ runner.TextureLoader = (*Loader)(nil)
