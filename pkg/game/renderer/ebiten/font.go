package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the embedded Go regular font
func (e *EbitenRenderer) loadFonts() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("loading font: %w", err)
	}
	e.fontSource = src
	e.invalidateFontCache()
	return nil
}

// getUIFontFace returns a cached face for HUD text
func (e *EbitenRenderer) getUIFontFace() *text.GoTextFace {
	if e.cachedUIFace == nil {
		e.cachedUIFace = &text.GoTextFace{
			Source: e.fontSource,
			Size:   baseFontSize,
		}
	}
	return e.cachedUIFace
}

// getTitleFontFace returns a cached, larger face for the win notification
func (e *EbitenRenderer) getTitleFontFace() *text.GoTextFace {
	if e.cachedTitleFace == nil {
		e.cachedTitleFace = &text.GoTextFace{
			Source: e.fontSource,
			Size:   titleFontSize,
		}
	}
	return e.cachedTitleFace
}

// invalidateFontCache clears cached font faces
func (e *EbitenRenderer) invalidateFontCache() {
	e.cachedUIFace = nil
	e.cachedTitleFace = nil
}
