// Package assets embeds the runner's textures and decodes them on demand.
package assets

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed textures
var assetsFS embed.FS

// ReadFile returns the bytes of an asset. When dir is set the file is read
// from disk first, falling back to the embedded copy.
func ReadFile(dir, path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if clean == "" {
		return nil, fmt.Errorf("assets: empty path")
	}
	if dir != "" {
		if b, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(clean))); err == nil {
			return b, nil
		}
	}
	b, err := assetsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", path, err)
	}
	return b, nil
}

// List returns the embedded texture paths.
func List() ([]string, error) {
	entries, err := assetsFS.ReadDir("textures")
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			paths = append(paths, "textures/"+e.Name())
		}
	}
	return paths, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(filepath.Clean(path))
	if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
		return s[idx+len("/assets/"):]
	}
	return strings.TrimPrefix(s, "assets/")
}
