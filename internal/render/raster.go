package render

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"proprofile/internal/domain"
)

var ErrBadDataURL = errors.New("invalid image data URL")

// Rasterizer paints pages at Scale pixels per page unit.
type Rasterizer struct {
	Scale float64
}

func NewRasterizer(scale float64) *Rasterizer {
	if scale <= 0 {
		scale = 1
	}
	return &Rasterizer{Scale: scale}
}

// Size is the pixel size of a rendered page.
func (r *Rasterizer) Size() (int, int) {
	return int(math.Round(domain.PageWidth * r.Scale)), int(math.Round(domain.PageHeight * r.Scale))
}

// Page paints background then elements in paint order, clipped to the page.
// Undecodable images are skipped rather than failing the page.
func (r *Rasterizer) Page(p domain.Page) *image.RGBA {
	w, h := r.Size()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	r.background(img, p)
	for _, el := range PaintOrder(p.Elements) {
		opacity := 1.0
		if el.Opacity != nil {
			opacity = *el.Opacity
		}
		box := r.box(el)
		switch el.Type {
		case domain.ElementTypeShape:
			if c, ok := ParseColor(el.BackgroundColor); ok {
				fillRounded(img, box, el.BorderRadius*r.Scale, fade(c, opacity))
			}
		case domain.ElementTypeText:
			if c, ok := ParseColor(el.BackgroundColor); ok {
				fillRounded(img, box, el.BorderRadius*r.Scale, fade(c, opacity))
			}
			r.text(img, el, box, opacity)
		case domain.ElementTypeImage, domain.ElementTypeLogo:
			if src, err := DecodeDataURL(el.Content); err == nil {
				paste(img, box, src, opacity)
			}
		}
	}
	return img
}

func (r *Rasterizer) background(img *image.RGBA, p domain.Page) {
	bg, ok := ParseColor(p.BackgroundColor)
	if !ok {
		bg = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{R: 255, G: 255, B: 255, A: 255}}, image.Point{}, draw.Src)
	draw.Draw(img, img.Bounds(), &image.Uniform{C: fade(bg, 1)}, image.Point{}, draw.Over)
	if p.BackgroundImage == "" {
		return
	}
	if src, err := DecodeDataURL(p.BackgroundImage); err == nil {
		paste(img, img.Bounds(), src, p.BackgroundOpacity)
	}
}

func (r *Rasterizer) box(el domain.Element) image.Rectangle {
	x0 := int(math.Round(el.X * r.Scale))
	y0 := int(math.Round(el.Y * r.Scale))
	x1 := int(math.Round((el.X + el.Width) * r.Scale))
	y1 := int(math.Round((el.Y + el.Height) * r.Scale))
	return image.Rect(x0, y0, x1, y1)
}

// DecodeDataURL decodes a base64 data URL into an image.
func DecodeDataURL(s string) (image.Image, error) {
	comma := strings.IndexByte(s, ',')
	if !strings.HasPrefix(s, "data:") || comma < 0 || !strings.Contains(s[:comma], ";base64") {
		return nil, ErrBadDataURL
	}
	raw, err := base64.StdEncoding.DecodeString(s[comma+1:])
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	return img, err
}

func paste(dst *image.RGBA, box image.Rectangle, src image.Image, opacity float64) {
	if box.Empty() {
		return
	}
	mask := image.NewUniform(color.Alpha{A: uint8(clamp01(opacity) * 255)})
	xdraw.ApproxBiLinear.Scale(dst, box, src, src.Bounds(), draw.Over, &xdraw.Options{SrcMask: mask})
}

// roundedRect is an alpha mask for a rectangle with circular corners.
type roundedRect struct {
	r      image.Rectangle
	radius float64
}

func (m roundedRect) ColorModel() color.Model { return color.AlphaModel }
func (m roundedRect) Bounds() image.Rectangle { return m.r }

func (m roundedRect) At(x, y int) color.Color {
	px, py := float64(x)+0.5, float64(y)+0.5
	cx := math.Max(float64(m.r.Min.X)+m.radius, math.Min(px, float64(m.r.Max.X)-m.radius))
	cy := math.Max(float64(m.r.Min.Y)+m.radius, math.Min(py, float64(m.r.Max.Y)-m.radius))
	if math.Hypot(px-cx, py-cy) <= m.radius {
		return color.Opaque
	}
	return color.Transparent
}

func fillRounded(dst *image.RGBA, box image.Rectangle, radius float64, c color.RGBA) {
	if c.A == 0 {
		return
	}
	clip := box.Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}
	src := &image.Uniform{C: c}
	radius = math.Min(radius, float64(min(box.Dx(), box.Dy()))/2)
	if radius <= 0 {
		draw.Draw(dst, clip, src, image.Point{}, draw.Over)
		return
	}
	draw.DrawMask(dst, clip, src, image.Point{}, roundedRect{r: box, radius: radius}, clip.Min, draw.Over)
}

// text draws el.Content word-wrapped inside box. The bitmap face has a single
// size, so lines are drawn at native size and scaled to the element's font size.
func (r *Rasterizer) text(dst *image.RGBA, el domain.Element, box image.Rectangle, opacity float64) {
	if strings.TrimSpace(el.Content) == "" {
		return
	}
	face := basicfont.Face7x13
	size := el.FontSize
	if size <= 0 {
		size = 16
	}
	k := size * r.Scale / float64(face.Height)
	c, ok := ParseColor(el.Color)
	if !ok {
		c = color.RGBA{A: 255}
	}
	c = fade(c, opacity)

	maxCols := int(float64(box.Dx()) / (float64(face.Advance) * k))
	lineH := int(math.Ceil(float64(face.Height) * k * 1.2))
	y := box.Min.Y
	for _, line := range wrap(el.Content, max(1, maxCols)) {
		if y >= dst.Bounds().Max.Y {
			break
		}
		native := renderLine(face, line, c, el.FontWeight == domain.WeightBold)
		w := int(math.Round(float64(native.Bounds().Dx()) * k))
		h := int(math.Round(float64(native.Bounds().Dy()) * k))
		x := box.Min.X
		switch el.TextAlign {
		case domain.AlignCenter:
			x += (box.Dx() - w) / 2
		case domain.AlignRight:
			x += box.Dx() - w
		}
		xdraw.ApproxBiLinear.Scale(dst, image.Rect(x, y, x+w, y+h), native, native.Bounds(), draw.Over, nil)
		y += lineH
	}
}

func renderLine(face *basicfont.Face, s string, c color.RGBA, bold bool) *image.RGBA {
	w := font.MeasureString(face, s).Ceil() + 1
	img := image.NewRGBA(image.Rect(0, 0, max(1, w), face.Height))
	d := &font.Drawer{Dst: img, Src: image.NewUniform(c), Face: face, Dot: fixed.P(0, face.Ascent)}
	d.DrawString(s)
	if bold {
		d.Dot = fixed.P(1, face.Ascent)
		d.DrawString(s)
	}
	return img
}

// wrap breaks s at explicit newlines and then greedily at spaces so no line
// exceeds cols characters. Words longer than cols are split.
func wrap(s string, cols int) []string {
	var out []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		for _, w := range words {
			for len([]rune(w)) > cols {
				if line != "" {
					out = append(out, line)
					line = ""
				}
				rs := []rune(w)
				out = append(out, string(rs[:cols]))
				w = string(rs[cols:])
			}
			switch {
			case line == "":
				line = w
			case len([]rune(line))+1+len([]rune(w)) <= cols:
				line += " " + w
			default:
				out = append(out, line)
				line = w
			}
		}
		out = append(out, line)
	}
	return out
}
