package assets

import (
	"fmt"

	"github.com/palegrove/cardfan/config"
	"github.com/palegrove/cardfan/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Card quad size in pixels. The renderer scales these to scene units.
const (
	FaceW = 180
	FaceH = 252
)

var (
	faces     = map[int]*ebiten.Image{}
	backImage *ebiten.Image
)

// Face returns the rendered front for a card index, cached after the first
// build. Faces alternate their pip color by index.
func Face(index int) *ebiten.Image {
	if img, ok := faces[index]; ok {
		return img
	}
	img := renderFace(index)
	faces[index] = img
	return img
}

// Back returns the shared card back.
func Back() *ebiten.Image {
	if backImage == nil {
		backImage = renderBack()
	}
	return backImage
}

func rankLabel(index int) string {
	ranks := []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10"}
	if index >= 0 && index < len(ranks) {
		return ranks[index]
	}
	return fmt.Sprintf("%d", index+1)
}

func renderFace(index int) *ebiten.Image {
	img := ebiten.NewImage(FaceW, FaceH)
	img.Fill(config.Parchment)

	pip := config.Crimson
	if index%2 == 1 {
		pip = config.Navy
	}

	vector.StrokeRect(img, 4, 4, FaceW-8, FaceH-8, 3, config.Ink, false)

	label := rankLabel(index)
	titleFace := fonts.Title.Get()
	labelFace := fonts.Label.Get()

	text.Draw(img, label, titleFace, centerTextX(label, titleFace, FaceW), FaceH/2+12, pip)

	text.Draw(img, label, labelFace, 14, 34, pip)
	b := text.BoundString(labelFace, label)
	text.Draw(img, label, labelFace, FaceW-14-b.Dx(), FaceH-18, pip)

	return img
}

func renderBack() *ebiten.Image {
	img := ebiten.NewImage(FaceW, FaceH)
	img.Fill(config.Navy)

	// Diamond lattice under the border trim.
	step := 24
	for x := -FaceH; x < FaceW+FaceH; x += step {
		vector.StrokeLine(img, float32(x), 0, float32(x+FaceH), FaceH, 1, config.DarkBlue, false)
		vector.StrokeLine(img, float32(x+FaceH), 0, float32(x), FaceH, 1, config.DarkBlue, false)
	}

	vector.StrokeRect(img, 8, 8, FaceW-16, FaceH-16, 3, config.Gold, false)
	vector.StrokeRect(img, 16, 16, FaceW-32, FaceH-32, 1, config.Gold, false)
	return img
}

// centerTextX calculates the X position to center text in a width.
func centerTextX(s string, face font.Face, width int) int {
	bounds := text.BoundString(face, s)
	return (width - bounds.Dx()) / 2
}
