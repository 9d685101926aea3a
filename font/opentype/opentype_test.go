// SPDX-License-Identifier: Unlicense OR MIT

package opentype

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

func TestNewFace(t *testing.T) {
	f, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	face, err := NewFace(f, 16)
	if err != nil {
		t.Fatal(err)
	}
	defer face.Close()
	if h := face.Metrics().Height; h < fixed.I(16) {
		t.Errorf("line height %v smaller than face size", h)
	}
	if _, ok := face.GlyphAdvance('A'); !ok {
		t.Error("face lacks a glyph for 'A'")
	}
}

func TestParseGarbage(t *testing.T) {
	if _, err := Parse([]byte("not a font")); err == nil {
		t.Error("parsing garbage succeeded")
	}
}
