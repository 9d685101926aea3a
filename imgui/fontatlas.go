// SPDX-License-Identifier: Unlicense OR MIT

package imgui

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"

	"imoverlay.org/f32"
	"imoverlay.org/font/opentype"
)

const (
	atlasWidth   = 512
	atlasPadding = 1
	// The white block is 3x3 so the sampled center texel is never
	// filtered with its neighbours.
	whiteBlock = 3
)

var errNoFont = errors.New("imgui: font atlas has no font")

// Glyph locates one rasterized character in the atlas.
type Glyph struct {
	Codepoint rune
	// AdvanceX is the horizontal pen advance.
	AdvanceX float32
	// X0, Y0, X1, Y1 bound the glyph quad relative to the pen, with
	// the pen at the top of the line.
	X0, Y0, X1, Y1 float32
	// U0, V0, U1, V1 are the quad's texture coordinates.
	U0, V0, U1, V1 float32
	// Visible is false for glyphs without pixels, such as space.
	Visible bool
}

// FontAtlas rasterizes a font into a single RGBA texture shared by
// all draw lists of a context.
type FontAtlas struct {
	// TexID is the renderer's handle for the uploaded atlas texture.
	// It is set by the renderer with SetTexID after building.
	TexID TextureID
	// TexWidth and TexHeight are the texture dimensions.
	TexWidth, TexHeight int
	// TexUvWhitePixel samples an opaque white texel; solid geometry
	// uses it so it can share the text texture.
	TexUvWhitePixel f32.Point
	// FontSize is the pixel size of the rasterized font.
	FontSize float32
	// LineHeight is the distance between baselines.
	LineHeight float32

	font     *opentype.Font
	glyphs   map[rune]Glyph
	fallback Glyph
	pixels   *image.RGBA
	built    bool
}

// NewFontAtlas returns an unbuilt atlas for f at size pixels.
func NewFontAtlas(f *opentype.Font, size float32) *FontAtlas {
	return &FontAtlas{font: f, FontSize: size}
}

// IsBuilt reports whether Build succeeded.
func (a *FontAtlas) IsBuilt() bool {
	return a.built
}

// SetTexID records the renderer's handle for the atlas texture.
func (a *FontAtlas) SetTexID(id TextureID) {
	a.TexID = id
}

// Build rasterizes the printable ASCII range into the atlas texture.
func (a *FontAtlas) Build() error {
	if a.font == nil {
		return errNoFont
	}
	face, err := opentype.NewFace(a.font, a.FontSize)
	if err != nil {
		return fmt.Errorf("imgui: font atlas: %w", err)
	}
	defer face.Close()

	m := face.Metrics()
	ascent := m.Ascent
	a.LineHeight = float32(m.Height.Ceil())

	type placed struct {
		r      rune
		dr     image.Rectangle
		mask   *image.Alpha
		at     image.Point
		adv    fixed.Int26_6
		hasPix bool
	}
	var glyphs []placed
	x, y, rowH := whiteBlock+atlasPadding, 0, whiteBlock
	for r := rune(' '); r <= '~'; r++ {
		dr, mask, maskp, adv, ok := face.Glyph(fixed.Point26_6{Y: ascent}, r)
		if !ok {
			continue
		}
		p := placed{r: r, dr: dr, adv: adv, hasPix: !dr.Empty()}
		if p.hasPix {
			// The face reuses its mask between calls.
			m := image.NewAlpha(image.Rectangle{Max: dr.Size()})
			draw.Draw(m, m.Bounds(), mask, maskp, draw.Src)
			p.mask = m
			w, h := dr.Dx(), dr.Dy()
			if x+w > atlasWidth {
				x, y, rowH = 0, y+rowH+atlasPadding, 0
			}
			p.at = image.Pt(x, y)
			x += w + atlasPadding
			if h > rowH {
				rowH = h
			}
		}
		glyphs = append(glyphs, p)
	}
	height := nextPow2(y + rowH)

	pix := image.NewRGBA(image.Rect(0, 0, atlasWidth, height))
	draw.Draw(pix, image.Rect(0, 0, whiteBlock, whiteBlock), image.White, image.Point{}, draw.Src)

	w, h := float32(atlasWidth), float32(height)
	a.glyphs = make(map[rune]Glyph, len(glyphs))
	for _, p := range glyphs {
		g := Glyph{
			Codepoint: p.r,
			AdvanceX:  float32(p.adv.Round()),
			Visible:   p.hasPix,
		}
		if p.hasPix {
			dst := image.Rectangle{Min: p.at, Max: p.at.Add(p.dr.Size())}
			draw.DrawMask(pix, dst, image.White, image.Point{}, p.mask, image.Point{}, draw.Src)
			g.X0, g.Y0 = float32(p.dr.Min.X), float32(p.dr.Min.Y)
			g.X1, g.Y1 = float32(p.dr.Max.X), float32(p.dr.Max.Y)
			g.U0, g.V0 = float32(dst.Min.X)/w, float32(dst.Min.Y)/h
			g.U1, g.V1 = float32(dst.Max.X)/w, float32(dst.Max.Y)/h
		}
		a.glyphs[p.r] = g
	}
	a.fallback = a.glyphs['?']
	a.pixels = pix
	a.TexWidth, a.TexHeight = atlasWidth, height
	a.TexUvWhitePixel = f32.Pt((whiteBlock/2+.5)/w, (whiteBlock/2+.5)/h)
	a.built = true
	return nil
}

// TexDataAsRGBA32 returns the atlas pixels, building the atlas first
// if needed. The pixels are white with coverage in alpha,
// premultiplied.
func (a *FontAtlas) TexDataAsRGBA32() (*image.RGBA, error) {
	if !a.built {
		if err := a.Build(); err != nil {
			return nil, err
		}
	}
	if a.pixels == nil {
		return nil, errors.New("imgui: font atlas texture data was cleared")
	}
	return a.pixels, nil
}

// ClearTexData drops the CPU copy of the atlas after the renderer
// uploaded it. Glyph metrics stay available.
func (a *FontAtlas) ClearTexData() {
	a.pixels = nil
}

// Glyph returns the glyph for r, or the fallback glyph.
func (a *FontAtlas) Glyph(r rune) Glyph {
	if g, ok := a.glyphs[r]; ok {
		return g
	}
	return a.fallback
}

// CalcTextSize returns the size of text laid out by DrawList.AddText.
func (a *FontAtlas) CalcTextSize(text string) f32.Point {
	var size f32.Point
	lineW := float32(0)
	lines := 1
	for _, r := range text {
		if r == '\n' {
			lines++
			lineW = 0
			continue
		}
		lineW += a.Glyph(r).AdvanceX
		if lineW > size.X {
			size.X = lineW
		}
	}
	size.Y = float32(lines) * a.LineHeight
	return size
}

func nextPow2(v int) int {
	n := 1
	for n < v {
		n <<= 1
	}
	return n
}
