// SPDX-License-Identifier: Unlicense OR MIT

// Package texture implements host texture resources.
//
// A Texture is reference counted: every holder that needs the pixels
// to stay alive calls Retain and later Release. The pixels are freed
// when the last reference is released.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

var ErrEmpty = errors.New("texture: empty image")

// Texture is an RGBA texture resource.
type Texture struct {
	name     string
	img      *image.RGBA
	refs     int
	released bool
}

// New returns a texture holding img, with one reference owned by
// the caller.
func New(name string, img *image.RGBA) *Texture {
	return &Texture{name: name, img: img, refs: 1}
}

// FromImage converts src to RGBA and returns it as a texture with one
// reference owned by the caller.
func FromImage(name string, src image.Image) (*Texture, error) {
	b := src.Bounds()
	if b.Empty() {
		return nil, ErrEmpty
	}
	if rgba, ok := src.(*image.RGBA); ok && b.Min == (image.Point{}) {
		return New(name, rgba), nil
	}
	dst := image.NewRGBA(image.Rectangle{Max: b.Size()})
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return New(name, dst), nil
}

// Load decodes a PNG file into a texture.
func Load(name, path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decoding %s: %w", path, err)
	}
	return FromImage(name, img)
}

// Save encodes the texture pixels as PNG.
func (t *Texture) Save(path string) error {
	if !t.IsValid() {
		return fmt.Errorf("texture: saving released texture %q", t.name)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, t.img); err != nil {
		f.Close()
		return fmt.Errorf("texture: encoding %s: %w", path, err)
	}
	return f.Close()
}

// Retain adds a reference.
func (t *Texture) Retain() *Texture {
	if t.released {
		panic("texture: retain of released texture")
	}
	t.refs++
	return t
}

// Release drops a reference. Releasing the last reference frees the
// pixels.
func (t *Texture) Release() {
	if t.released {
		panic("texture: release of released texture")
	}
	t.refs--
	if t.refs == 0 {
		t.img = nil
		t.released = true
	}
}

// Refs returns the number of live references.
func (t *Texture) Refs() int {
	return t.refs
}

// IsValid reports whether t is non-nil and still holds pixels.
func (t *Texture) IsValid() bool {
	return t != nil && !t.released && t.img != nil
}

// Name returns the texture name.
func (t *Texture) Name() string {
	return t.name
}

// Size returns the texture dimensions, or the zero point for a
// released texture.
func (t *Texture) Size() image.Point {
	if !t.IsValid() {
		return image.Point{}
	}
	return t.img.Bounds().Size()
}

// Image returns the texture pixels, or nil for a released texture.
func (t *Texture) Image() image.Image {
	if !t.IsValid() {
		return nil
	}
	return t.img
}

// RGBA is like Image but returns the concrete pixel buffer.
func (t *Texture) RGBA() *image.RGBA {
	if !t.IsValid() {
		return nil
	}
	return t.img
}

func (t *Texture) String() string {
	return fmt.Sprintf("texture(%s %v refs=%d)", t.name, t.Size(), t.refs)
}
