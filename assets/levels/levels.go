// Package levels embeds the bundled level files. Paths handed to it may
// carry a "levels/" prefix; anything not embedded is read from disk.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/aoi-adventure/shared/leveldata"
)

//go:embed *.txt *.tmx
var FS embed.FS

// Dir is the prefix bundled level paths are written with.
const Dir = "levels"

// Load reads a level, preferring the embedded copy.
func Load(path string, tileSize int, spawn leveldata.SpawnPoint) (*leveldata.Level, error) {
	fsys, name := source(path)
	level, err := leveldata.Load(fsys, name, tileSize, spawn)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", path, err)
	}
	return level, nil
}

// Paths lists the embedded levels with the Dir prefix, sorted.
func Paths() ([]string, error) {
	names, err := leveldata.List(FS, ".")
	if err != nil {
		return nil, err
	}
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = Dir + "/" + n
	}
	return out, nil
}

func source(path string) (fs.FS, string) {
	clean := strings.TrimPrefix(filepath.ToSlash(path), Dir+"/")
	if _, err := fs.Stat(FS, clean); err == nil {
		return FS, clean
	}
	dir, file := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	return os.DirFS(dir), file
}
