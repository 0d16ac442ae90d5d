package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	tmxTileLayer   = "tiles"
	tmxSpawnGroup  = "spawns"
	tmxKindProp    = "kind"
	tmxSpawnIdProp = "spawnIndex"
)

// LoadTMX parses a Tiled map. Tiles come from the "tiles" layer and take
// their kind from the tileset's "kind" property, defaulting to ground. The
// spawn is the lowest spawnIndex object in the "spawns" object group.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("load TMX %s: tiles are %dx%d, want square tiles", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	lvl := newLevel(levelName(tmxPath), levelMap.Width, levelMap.Height, levelMap.TileWidth)

	found := false
	for _, layer := range levelMap.Layers {
		if layer.Name != tmxTileLayer {
			continue
		}
		found = true
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				kind, err := tileKind(tile)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s at %d,%d: %w", tmxPath, x, y, err)
				}
				lvl.set(x, y, kind)
			}
		}
		break
	}
	if !found {
		return nil, fmt.Errorf("load TMX %s: no %q layer", tmxPath, tmxTileLayer)
	}

	type spawn struct {
		SpawnPoint
		index int
	}
	var spawns []spawn
	for _, og := range levelMap.ObjectGroups {
		if og.Name != tmxSpawnGroup {
			continue
		}
		for _, o := range og.Objects {
			spawns = append(spawns, spawn{
				SpawnPoint: SpawnPoint{X: o.X, Y: o.Y},
				index:      o.Properties.GetInt(tmxSpawnIdProp),
			})
		}
	}
	if len(spawns) == 0 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoSpawn)
	}
	sort.SliceStable(spawns, func(i, j int) bool {
		return spawns[i].index < spawns[j].index
	})
	lvl.Spawn = spawns[0].SpawnPoint

	return lvl, nil
}

func tileKind(tile *tiled.LayerTile) (TileKind, error) {
	tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		// Tiles without properties are plain ground.
		return TileGround, nil
	}
	name := tilesetTile.Properties.GetString(tmxKindProp)
	switch name {
	case "", "ground":
		return TileGround, nil
	case "dirt":
		return TileDirt, nil
	case "decor":
		return TileDecor, nil
	}
	return TileEmpty, fmt.Errorf("tile kind %q: %w", name, ErrUnknownTile)
}

// Load picks the parser from the file extension: .tmx files go through
// go-tiled, anything else is read as a character map.
func Load(fsys fs.FS, levelPath string, tileSize int, spawn SpawnPoint) (*Level, error) {
	if strings.EqualFold(path.Ext(levelPath), ".tmx") {
		return LoadTMX(fsys, levelPath)
	}
	return LoadCharMap(fsys, levelPath, tileSize, spawn)
}

// List returns the level files under dir, sorted by name.
func List(fsys fs.FS, dir string) ([]string, error) {
	var out []string
	for _, pattern := range []string{"*.txt", "*.tmx"} {
		matches, err := fs.Glob(fsys, path.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		out = append(out, matches...)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no levels found in %s", dir)
	}
	sort.Strings(out)
	return out, nil
}
