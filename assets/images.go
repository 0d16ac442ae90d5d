package assets

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/automoto/aoi-adventure/config"
	"github.com/automoto/aoi-adventure/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Placeholder art is drawn once per name and cached. Sprite frames are named
// "<sequence>_<index>" the same way the animation tables name them.
var imageCache = map[string]*ebiten.Image{}

// Tile returns the size x size image for a tile kind. Ground gets a grass top.
func Tile(kind leveldata.TileKind, size int) *ebiten.Image {
	key := fmt.Sprintf("tile_%s@%d", kind, size)
	if img, ok := imageCache[key]; ok {
		return img
	}
	img := ebiten.NewImage(size, size)
	switch kind {
	case leveldata.TileDirt:
		img.Fill(config.Tiles.Dirt)
		speckle(img, size, shade(config.Tiles.Dirt, -20))
	case leveldata.TileGround:
		img.Fill(config.Tiles.Ground)
		speckle(img, size, shade(config.Tiles.Ground, -20))
		vector.FillRect(img, 0, 0, float32(size), 3, config.Tiles.Grass, false)
	default:
		panic(fmt.Sprintf("no tile image for %s", kind))
	}
	imageCache[key] = img
	return img
}

// Frame returns a w x h placeholder for an animation frame id.
func Frame(id string, w, h int) *ebiten.Image {
	key := fmt.Sprintf("%s@%dx%d", id, w, h)
	if img, ok := imageCache[key]; ok {
		return img
	}
	seq, index := splitFrameID(id)
	img := ebiten.NewImage(w, h)
	switch seq {
	case "idle":
		drawCharacter(img, w, h, 0, index%2, 0)
	case "moving":
		drawCharacter(img, w, h, index%3-1, 0, 0)
	case "jumping":
		drawCharacter(img, w, h, 0, 0, 2-index)
	default:
		drawDecor(img, w, h, index)
	}
	imageCache[key] = img
	return img
}

func splitFrameID(id string) (string, int) {
	i := strings.LastIndexByte(id, '_')
	if i < 0 {
		return id, 0
	}
	n, err := strconv.Atoi(id[i+1:])
	if err != nil {
		return id, 0
	}
	return id[:i], n
}

// drawCharacter draws a facing-right figure. stride shifts the legs, bob
// drops the whole body a pixel and lift raises the arms.
func drawCharacter(img *ebiten.Image, w, h, stride, bob, lift int) {
	body := config.PlayerLook.Body
	skin := config.PlayerLook.Accent
	fw, fh := float32(w), float32(h)
	top := float32(bob)
	head := fh * 0.4

	vector.FillRect(img, 1, top, fw-2, head, skin, false)
	vector.FillRect(img, fw-3, top+head/2-1, 1, 2, config.Black, false)
	vector.FillRect(img, 0, top+head, fw, fh*0.35, body, false)

	legTop := top + head + fh*0.35
	legH := fh - legTop
	if legH < 1 {
		legH = 1
	}
	vector.FillRect(img, 1+float32(stride), legTop, 2, legH, shade(body, -40), false)
	vector.FillRect(img, fw-3-float32(stride), legTop, 2, legH, shade(body, -40), false)
	if lift > 0 {
		vector.FillRect(img, 0, top+head-float32(lift), 1, float32(lift)+2, skin, false)
		vector.FillRect(img, fw-1, top+head-float32(lift), 1, float32(lift)+2, skin, false)
	}
}

func drawDecor(img *ebiten.Image, w, h, index int) {
	colors := config.Tiles.Decor
	c := colors[index%len(colors)]
	cx, cy := float32(w)/2, float32(h)-4
	arm := float32(2 + index%2)
	vector.FillRect(img, cx-0.5, cy-arm, 1, arm*2+1, c, false)
	vector.FillRect(img, cx-arm, cy-0.5, arm*2+1, 1, c, false)
}

func speckle(img *ebiten.Image, size int, c color.RGBA) {
	for y := 2; y < size; y += 5 {
		for x := (y * 3) % 7; x < size; x += 7 {
			img.Set(x, y, c)
		}
	}
}

func shade(c color.RGBA, d int) color.RGBA {
	clamp := func(v int) uint8 {
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return uint8(v)
	}
	return color.RGBA{R: clamp(int(c.R) + d), G: clamp(int(c.G) + d), B: clamp(int(c.B) + d), A: c.A}
}
