package fonts

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

type FontName string

const (
	Label FontName = "label"
)

func (f FontName) Get() text.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]text.Face{}
)

// Load registers the built-in bitmap faces.
func Load() {
	fonts[Label] = text.NewGoXFace(basicfont.Face7x13)
}

func getFont(name FontName) text.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
