// pkg/render/font.go
package render

import (
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// LoadFace создаёт шрифт нужного размера из встроенного Go Regular.
// При ошибке разбора возвращается растровый basicfont.
func LoadFace(size float64) font.Face {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Printf("render: parse font: %v, falling back to basicfont", err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("render: new face: %v, falling back to basicfont", err)
		return basicfont.Face7x13
	}
	return face
}
