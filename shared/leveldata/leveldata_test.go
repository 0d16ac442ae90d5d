package leveldata

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestParseCharMap(t *testing.T) {
	data := []byte("0030\r\n2200\n1122\n\n")
	lvl, err := ParseCharMap("test", data, 16, SpawnPoint{X: 30, Y: 30})
	if err != nil {
		t.Fatalf("ParseCharMap: %v", err)
	}
	if lvl.Cols != 4 || lvl.Rows != 3 {
		t.Fatalf("size = %dx%d, want 4x3", lvl.Cols, lvl.Rows)
	}
	if w, h := lvl.PixelSize(); w != 64 || h != 48 {
		t.Fatalf("pixel size = %dx%d, want 64x48", w, h)
	}
	if lvl.Spawn != (SpawnPoint{X: 30, Y: 30}) {
		t.Fatalf("spawn = %+v", lvl.Spawn)
	}

	checks := []struct {
		col, row int
		want     TileKind
	}{
		{0, 0, TileEmpty},
		{2, 0, TileDecor},
		{0, 1, TileGround},
		{0, 2, TileDirt},
		{3, 2, TileGround},
		{-1, 0, TileEmpty},
		{4, 0, TileEmpty},
	}
	for _, c := range checks {
		if got := lvl.At(c.col, c.row); got != c.want {
			t.Errorf("At(%d,%d) = %v, want %v", c.col, c.row, got, c.want)
		}
	}

	rects := lvl.SolidRects()
	if len(rects) != 6 {
		t.Fatalf("got %d solid rects, want 6 (decor is not solid)", len(rects))
	}
	if rects[0] != (SolidRect{X: 0, Y: 16, W: 16, H: 16}) {
		t.Fatalf("first rect = %+v", rects[0])
	}
	if n := len(lvl.Tiles()); n != 7 {
		t.Fatalf("got %d tiles, want 7", n)
	}
}

func TestParseCharMapErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{name: "empty", data: "", want: ErrEmptyMap},
		{name: "blank lines", data: "\n\n", want: ErrEmptyMap},
		{name: "ragged", data: "000\n00\n000", want: ErrRaggedRow},
		{name: "unknown code", data: "000\n0x0", want: ErrUnknownTile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCharMap(tt.name, []byte(tt.data), 16, SpawnPoint{})
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

const tinyTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="3">
 <tileset firstgid="1" name="aoi" tilewidth="16" tileheight="16" tilecount="4" columns="4">
  <image source="tiles.png" width="64" height="16"/>
  <tile id="0">
   <properties>
    <property name="kind" value="dirt"/>
   </properties>
  </tile>
  <tile id="1">
   <properties>
    <property name="kind" value="ground"/>
   </properties>
  </tile>
  <tile id="2">
   <properties>
    <property name="kind" value="decor"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="tiles" width="4" height="3">
  <data encoding="csv">
0,0,3,0,
2,4,0,0,
1,1,2,2
</data>
 </layer>
 <objectgroup id="2" name="spawns">
  <object id="1" name="late" x="40" y="4">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
  </object>
  <object id="2" name="first" x="8" y="2">
   <properties>
    <property name="spawnIndex" type="int" value="0"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/tiny.tmx": &fstest.MapFile{Data: []byte(tinyTMX)},
	}
	lvl, err := Load(fsys, "levels/tiny.tmx", 99, SpawnPoint{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lvl.Name != "tiny" || lvl.TileSize != 16 || lvl.Cols != 4 || lvl.Rows != 3 {
		t.Fatalf("level = %s %d %dx%d", lvl.Name, lvl.TileSize, lvl.Cols, lvl.Rows)
	}
	if lvl.Spawn != (SpawnPoint{X: 8, Y: 2}) {
		t.Fatalf("spawn = %+v, want lowest spawnIndex", lvl.Spawn)
	}

	checks := []struct {
		col, row int
		want     TileKind
	}{
		{0, 0, TileEmpty},
		{2, 0, TileDecor},
		{0, 1, TileGround},
		// gid 4 has no properties and falls back to ground
		{1, 1, TileGround},
		{0, 2, TileDirt},
		{2, 2, TileGround},
	}
	for _, c := range checks {
		if got := lvl.At(c.col, c.row); got != c.want {
			t.Errorf("At(%d,%d) = %v, want %v", c.col, c.row, got, c.want)
		}
	}
}

func TestLoadTMXKeepsMapTileSize(t *testing.T) {
	big := strings.NewReplacer(`tilewidth="16"`, `tilewidth="32"`, `tileheight="16"`, `tileheight="32"`).Replace(tinyTMX)
	fsys := fstest.MapFS{"big.tmx": &fstest.MapFile{Data: []byte(big)}}
	lvl, err := Load(fsys, "big.tmx", 16, SpawnPoint{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lvl.TileSize != 32 {
		t.Fatalf("TileSize = %d, want 32 from the map", lvl.TileSize)
	}
	if w, h := lvl.PixelSize(); w != 128 || h != 96 {
		t.Fatalf("PixelSize = %dx%d, want 128x96", w, h)
	}
	for _, r := range lvl.SolidRects() {
		if r.W != 32 || r.H != 32 {
			t.Fatalf("solid %+v is not 32px", r)
		}
	}
}

func TestLoadTMXWithoutSpawn(t *testing.T) {
	noSpawn := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="1" height="1" tilewidth="16" tileheight="16" infinite="0">
 <layer id="1" name="tiles" width="1" height="1">
  <data encoding="csv">
0
</data>
 </layer>
</map>
`
	fsys := fstest.MapFS{"a.tmx": &fstest.MapFile{Data: []byte(noSpawn)}}
	if _, err := LoadTMX(fsys, "a.tmx"); !errors.Is(err, ErrNoSpawn) {
		t.Fatalf("err = %v, want ErrNoSpawn", err)
	}
}

func TestLoadCharMapAndList(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/map_2.txt": &fstest.MapFile{Data: []byte("00\n22\n")},
		"levels/map_1.txt": &fstest.MapFile{Data: []byte("000\n111\n")},
		"levels/notes.md":  &fstest.MapFile{Data: []byte("ignored")},
	}
	names, err := List(fsys, "levels")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 2 || names[0] != "levels/map_1.txt" {
		t.Fatalf("List = %v", names)
	}

	lvl, err := Load(fsys, names[0], 16, SpawnPoint{X: 1, Y: 2})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lvl.Name != "map_1" || lvl.Cols != 3 || lvl.Spawn.Y != 2 {
		t.Fatalf("level = %+v", lvl)
	}

	if _, err := LoadCharMap(fsys, "levels/missing.txt", 16, SpawnPoint{}); err == nil {
		t.Fatalf("expected error for missing map")
	}
}
