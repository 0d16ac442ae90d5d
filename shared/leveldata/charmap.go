package leveldata

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

var charKinds = map[byte]TileKind{
	'0': TileEmpty,
	'1': TileDirt,
	'2': TileGround,
	'3': TileDecor,
}

// ParseCharMap reads a character map, one row per line. Every row must have
// the same length and use only the codes 0-3. Trailing blank lines are
// ignored.
func ParseCharMap(name string, data []byte, tileSize int, spawn SpawnPoint) (*Level, error) {
	var rows []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read map %s: %w", name, err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("map %s: %w", name, ErrEmptyMap)
	}

	cols := len(rows[0])
	lvl := newLevel(name, cols, len(rows), tileSize)
	lvl.Spawn = spawn

	for y, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("map %s line %d: %d columns, want %d: %w", name, y+1, len(row), cols, ErrRaggedRow)
		}
		for x := 0; x < cols; x++ {
			kind, ok := charKinds[row[x]]
			if !ok {
				return nil, fmt.Errorf("map %s line %d column %d: %q: %w", name, y+1, x+1, row[x], ErrUnknownTile)
			}
			lvl.set(x, y, kind)
		}
	}
	return lvl, nil
}

// LoadCharMap reads and parses a character map from fsys.
func LoadCharMap(fsys fs.FS, mapPath string, tileSize int, spawn SpawnPoint) (*Level, error) {
	data, err := fs.ReadFile(fsys, mapPath)
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", mapPath, err)
	}
	return ParseCharMap(levelName(mapPath), data, tileSize, spawn)
}

func levelName(p string) string {
	return strings.TrimSuffix(path.Base(p), path.Ext(p))
}
