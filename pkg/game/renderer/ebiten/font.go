package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the bundled Go fonts
func (e *EbitenRenderer) loadFonts() error {
	sans, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load sans font: %w", err)
	}
	mono, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return fmt.Errorf("load mono font: %w", err)
	}
	e.sansFontSource = sans
	e.monoFontSource = mono
	return nil
}

// getUIFontSize returns the font size for UI text
func getUIFontSize(large bool) float64 {
	if large {
		return baseFontSize * largeFontRate
	}
	return baseFontSize
}

// getSansFontFace returns a cached sans-serif font face for UI text
func (e *EbitenRenderer) getSansFontFace(size float64) *text.GoTextFace {
	if e.sansFontSource == nil {
		return nil
	}
	e.refreshFaces(size)
	return e.cachedSansFace
}

// getMonoFontFace returns a cached monospace face for tile glyphs
func (e *EbitenRenderer) getMonoFontFace(size float64) *text.GoTextFace {
	if e.monoFontSource == nil {
		return nil
	}
	e.refreshFaces(size)
	return e.cachedMonoFace
}

func (e *EbitenRenderer) refreshFaces(size float64) {
	if e.cachedSansFace != nil && e.cachedUIFontSize == size {
		return
	}
	e.cachedUIFontSize = size
	e.cachedSansFace = &text.GoTextFace{Source: e.sansFontSource, Size: size}
	e.cachedMonoFace = &text.GoTextFace{Source: e.monoFontSource, Size: size}
}
