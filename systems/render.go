package systems

import (
	"math"

	"github.com/automoto/aoi-adventure/assets"
	"github.com/automoto/aoi-adventure/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// DrawBodies draws every body at its truncated position with its current
// frame, mirrored when it faces left.
func DrawBodies(ecs *ecs.ECS, screen *ebiten.Image) {
	scroll := currentScroll(ecs)

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		w, h := int(body.Rect.W), int(body.Rect.H)
		img := assets.Frame(body.FrameID(), w, h)

		drawOp.GeoM.Reset()
		if body.FlipX() {
			drawOp.GeoM.Scale(-1, 1)
			drawOp.GeoM.Translate(float64(w), 0)
		}
		drawOp.GeoM.Translate(
			math.Trunc(body.Rect.X)-scroll.X,
			math.Trunc(body.Rect.Y)-scroll.Y,
		)
		screen.DrawImage(img, drawOp)
	})
}
