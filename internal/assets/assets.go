package assets

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// FontTTF is the overlay font, Go Regular.
var FontTTF = goregular.TTF

// OverlayFace returns a face for FontTTF at the given size in points (72 DPI).
func OverlayFace(sizePt float64) (font.Face, error) {
	tt, err := truetype.Parse(FontTTF)
	if err != nil {
		return nil, fmt.Errorf("parse overlay font: %w", err)
	}
	return truetype.NewFace(tt, &truetype.Options{Size: sizePt, DPI: 72, Hinting: font.HintingFull}), nil
}
