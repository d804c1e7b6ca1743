package systems

import (
	"math"
	"sort"

	"github.com/palegrove/cardfan/assets"
	"github.com/palegrove/cardfan/components"
	cfg "github.com/palegrove/cardfan/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

type cardDraw struct {
	entry *donburi.Entry
	z     float64
	index int
}

// DrawTable renders the felt, the focus slot and every card back to front.
// Depth only exists as draw scale and paint order; the quads themselves stay
// axis-aligned except for their z-rotation.
func DrawTable(e *ecs.ECS, screen *ebiten.Image) {
	vpEntry, ok := components.Viewport.First(e.World)
	if !ok {
		return
	}
	vp := components.Viewport.Get(vpEntry)

	drawFelt(screen, vp)

	cards := make([]cardDraw, 0, 16)
	components.Card.Each(e.World, func(entry *donburi.Entry) {
		spring := components.Spring.Get(entry)
		cards = append(cards, cardDraw{
			entry: entry,
			z:     effectiveZ(spring),
			index: components.Card.Get(entry).Index,
		})
	})
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].z == cards[j].z {
			return cards[i].index < cards[j].index
		}
		return cards[i].z < cards[j].z
	})

	baseW := cfg.Viewport.CardWidth * vp.PxPerUnit
	baseH := cfg.Viewport.CardHeight * vp.PxPerUnit
	kx := baseW / float64(assets.FaceW)
	ky := baseH / float64(assets.FaceH)

	for _, c := range cards {
		tr := components.Transform.Get(c.entry)
		spring := components.Spring.Get(c.entry)
		deal := components.Deal.Get(c.entry)

		alpha := deal.Progress
		if alpha <= 0 {
			continue
		}

		// The deal grows the card in as it fades in.
		scale := tr.Scale * vp.DepthScale(c.z) * (0.6 + 0.4*float64(alpha))

		// One flip half-turn plus the pose's own yaw, collapsed into a
		// horizontal foreshortening. Negative means the back is showing.
		facing := math.Cos(tr.Rotation.Y + spring.Flip.Pos)
		fx := math.Abs(facing)
		fy := math.Abs(math.Cos(tr.Rotation.X))

		img := assets.Face(c.index)
		if facing < 0 {
			img = assets.Back()
		}

		sx, sy := vp.ToScreen(tr.Position)

		// Drop shadow: the card's own silhouette, offset further the
		// higher the card sits.
		off := cfg.Viewport.ShadowDrop * vp.PxPerUnit * (1 + c.z*0.6)

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-float64(assets.FaceW)/2, -float64(assets.FaceH)/2)
		drawOp.GeoM.Scale(kx*scale*fx, ky*scale*fy)
		drawOp.GeoM.Rotate(-tr.Rotation.Z)
		drawOp.GeoM.Translate(sx+off*0.35, sy+off)
		drawOp.ColorScale.Scale(0, 0, 0, float32(cfg.Viewport.ShadowAlpha)*alpha)
		screen.DrawImage(img, drawOp)

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-float64(assets.FaceW)/2, -float64(assets.FaceH)/2)
		drawOp.GeoM.Scale(kx*scale*fx, ky*scale*fy)
		drawOp.GeoM.Rotate(-tr.Rotation.Z)
		drawOp.GeoM.Translate(sx, sy)
		drawOp.ColorScale.ScaleAlpha(alpha)
		screen.DrawImage(img, drawOp)
	}
}

// drawFelt paints the table: a shaded inset where the focus card rests and
// a trim line along the bottom edge.
func drawFelt(screen *ebiten.Image, vp *components.ViewportData) {
	slotW := cfg.Viewport.CardWidth * vp.PxPerUnit * cfg.Layout.FocusScale * 1.06
	slotH := cfg.Viewport.CardHeight * vp.PxPerUnit * cfg.Layout.FocusScale * 1.06
	slotX, slotY := vp.ToScreen(components.Vec3{X: cfg.Layout.FocusX, Y: cfg.Layout.FocusY})

	vector.DrawFilledRect(screen,
		float32(slotX-slotW/2), float32(slotY-slotH/2),
		float32(slotW), float32(slotH), cfg.FeltShade, false)

	h := float32(vp.ScreenH)
	w := float32(vp.ScreenW)
	vector.DrawFilledRect(screen, 0, h-10, w, 10, cfg.FeltShade, false)
	vector.DrawFilledRect(screen, 0, h-12, w, 2, cfg.Gold, false)
}
