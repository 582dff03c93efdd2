package document

import "unicode/utf8"

// TextMeasurer returns the rendered size of text at a font size.
type TextMeasurer interface {
	Measure(text string, fontSize float64) (width, height float64)
}

// ApproxMeasurer estimates width from the rune count. Used when no font
// is loaded.
type ApproxMeasurer struct{}

func (ApproxMeasurer) Measure(text string, fontSize float64) (float64, float64) {
	return float64(utf8.RuneCountInString(text)) * fontSize * 0.6, fontSize
}
