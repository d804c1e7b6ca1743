package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// FontName identifies one sized face of the table font.
type FontName string

const (
	Regular FontName = "regular" // HUD rows
	Label   FontName = "label"   // card corner ranks
	Small   FontName = "small"   // hint line, debug overlay
	Title   FontName = "title"   // card center rank
)

var faces = map[FontName]font.Face{}

// LoadFontWithSize parses the TTF and registers a face under name. All
// faces are loaded once at startup, before any Get.
func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("Font %s: %v", name, err))
	}
	faces[name] = truetype.NewFace(f, &truetype.Options{Size: size})
}

// Get returns the registered face.
func (f FontName) Get() font.Face {
	face, ok := faces[f]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", f))
	}
	return face
}
