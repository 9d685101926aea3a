// SPDX-License-Identifier: Unlicense OR MIT

package texture

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseLastReference(t *testing.T) {
	tex := New("atlas", image.NewRGBA(image.Rect(0, 0, 4, 2)))
	tex.Retain()
	require.Equal(t, 2, tex.Refs())

	tex.Release()
	assert.True(t, tex.IsValid())
	assert.Equal(t, image.Pt(4, 2), tex.Size())

	tex.Release()
	assert.False(t, tex.IsValid())
	assert.Nil(t, tex.Image())
	assert.Equal(t, image.Point{}, tex.Size())
	assert.Panics(t, tex.Release)
	assert.Panics(t, func() { tex.Retain() })
}

func TestNilTextureIsInvalid(t *testing.T) {
	var tex *Texture
	assert.False(t, tex.IsValid())
}

func TestSaveLoad(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	img.SetRGBA(1, 2, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	path := filepath.Join(t.TempDir(), "atlas.png")

	require.NoError(t, New("atlas", img).Save(path))
	loaded, err := Load("atlas", path)
	require.NoError(t, err)
	assert.Equal(t, img.Pix, loaded.RGBA().Pix)
}

func TestFromImageConverts(t *testing.T) {
	src := image.NewGray(image.Rect(2, 2, 4, 5))
	src.SetGray(2, 2, color.Gray{Y: 200})
	tex, err := FromImage("gray", src)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(2, 3), tex.Size())
	assert.Equal(t, color.RGBA{R: 200, G: 200, B: 200, A: 255}, tex.RGBA().RGBAAt(0, 0))

	_, err = FromImage("empty", image.NewRGBA(image.Rectangle{}))
	assert.ErrorIs(t, err, ErrEmpty)
}
