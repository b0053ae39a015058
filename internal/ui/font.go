package ui

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	menuFontSize  = 36.0
	clockFontSize = 24.0
	labelFontSize = 12.0
)

// Fonts holds the faces used by the menu, clocks and board labels.
type Fonts struct {
	Menu  *text.GoTextFace
	Clock *text.GoTextFace
	Label *text.GoTextFace
}

// LoadFonts parses the embedded Go fonts.
func LoadFonts() (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}
	return &Fonts{
		Menu:  &text.GoTextFace{Source: bold, Size: menuFontSize},
		Clock: &text.GoTextFace{Source: regular, Size: clockFontSize},
		Label: &text.GoTextFace{Source: bold, Size: labelFontSize},
	}, nil
}

// MeasureText returns the width and height of the given text.
func MeasureText(s string, face *text.GoTextFace) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}
