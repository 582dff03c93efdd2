// Package fonts loads the bundled Go font and measures text with it.
package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Family is the CSS font family matching the bundled font.
const Family = "Go, sans-serif"

var (
	parseOnce sync.Once
	parsed    *truetype.Font
	parseErr  error

	mu      sync.Mutex
	measure font.Face
)

// measureSize is the size text is measured at. Other sizes scale from it.
const measureSize = 100

func regular() (*truetype.Font, error) {
	parseOnce.Do(func() {
		parsed, parseErr = truetype.Parse(goregular.TTF)
		if parseErr != nil {
			parseErr = fmt.Errorf("parse font: %w", parseErr)
		}
	})
	return parsed, parseErr
}

// NewFace returns a face of the bundled font at size points. Faces are
// not safe for concurrent use; each renderer takes its own.
func NewFace(size float64) (font.Face, error) {
	f, err := regular()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// measuringFace must be called with mu held. It is unhinted so widths
// scale linearly with the font size.
func measuringFace() (font.Face, error) {
	if measure != nil {
		return measure, nil
	}
	f, err := regular()
	if err != nil {
		return nil, err
	}
	measure = truetype.NewFace(f, &truetype.Options{
		Size:    measureSize,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	return measure, nil
}

// Measurer measures text with the bundled font. The height is the font
// size, matching how text boxes are laid out on the canvas.
type Measurer struct{}

func (Measurer) Measure(text string, fontSize float64) (float64, float64) {
	mu.Lock()
	defer mu.Unlock()
	face, err := measuringFace()
	if err != nil {
		return float64(len([]rune(text))) * fontSize * 0.6, fontSize
	}
	adv := font.MeasureString(face, text)
	return float64(adv) / 64 * fontSize / measureSize, fontSize
}
