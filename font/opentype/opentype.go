// SPDX-License-Identifier: Unlicense OR MIT

// Package opentype parses OpenType and TrueType fonts and creates the
// scaled faces glyphs are rasterized from.
package opentype

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// Font is a parsed font file.
type Font = opentype.Font

// Parse parses a font from source bytes.
func Parse(src []byte) (*Font, error) {
	f, err := opentype.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("failed parsing truetype font: %w", err)
	}
	return f, nil
}

// ParseFile reads and parses a font file.
func ParseFile(path string) (*Font, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(src)
}

// NewFace returns a face for f with the given size in pixels. The
// face uses full hinting so glyph masks land on pixel boundaries.
func NewFace(f *Font, size float32) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating %gpx face: %w", size, err)
	}
	return face, nil
}
