package systems

import (
	"github.com/automoto/aoi-adventure/assets"
	"github.com/automoto/aoi-adventure/components"
	cfg "github.com/automoto/aoi-adventure/config"
	"github.com/automoto/aoi-adventure/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var levelDrawOp = &ebiten.DrawImageOptions{}

// DrawBackground fills the sky and draws the parallax layers, each offset by
// its factor of the scroll on both axes.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Parallax.Sky)

	scroll := currentScroll(ecs)
	for _, layer := range cfg.Parallax.Layers {
		x, y := gamemath.ParallaxPos(layer.X, layer.Y, scroll.X, scroll.Y, layer.Factor)
		vector.FillRect(screen, float32(x), float32(y), float32(layer.W), float32(layer.H), layer.Color, false)
	}
}

// DrawLevel draws the solid tiles that intersect the view.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).Level
	scroll := currentScroll(ecs)
	size := level.TileSize
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	col0 := int(scroll.X) / size
	row0 := int(scroll.Y) / size
	for row := row0 - 1; row <= row0+height/size+1; row++ {
		for col := col0 - 1; col <= col0+width/size+1; col++ {
			kind := level.At(col, row)
			if !kind.Solid() {
				continue
			}
			levelDrawOp.GeoM.Reset()
			levelDrawOp.GeoM.Translate(float64(col*size)-scroll.X, float64(row*size)-scroll.Y)
			screen.DrawImage(assets.Tile(kind, size), levelDrawOp)
		}
	}
}

// DrawDecor draws the animated decoration tiles.
func DrawDecor(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	size := components.Level.Get(levelEntry).Level.TileSize
	scroll := currentScroll(ecs)
	components.Decor.Each(ecs.World, func(e *donburi.Entry) {
		decor := components.Decor.Get(e)
		levelDrawOp.GeoM.Reset()
		levelDrawOp.GeoM.Translate(decor.X-scroll.X, decor.Y-scroll.Y)
		screen.DrawImage(assets.Frame(decor.Anim.FrameID(), size, size), levelDrawOp)
	})
}

func currentScroll(ecs *ecs.ECS) math.Vec2 {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return math.Vec2{}
	}
	return components.Camera.Get(cameraEntry).Scroll
}
