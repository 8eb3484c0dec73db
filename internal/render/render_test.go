package render_test

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"proprofile/internal/domain"
	"proprofile/internal/render"
)

// ─────────────────────────────────────────────────────────────
// Paint order
// ─────────────────────────────────────────────────────────────

func TestPaintOrder_StableByZIndex(t *testing.T) {
	in := []domain.Element{
		{ID: "a", ZIndex: 2},
		{ID: "b", ZIndex: 1},
		{ID: "c", ZIndex: 2},
		{ID: "d", ZIndex: 0},
		{ID: "e", ZIndex: 1},
	}
	got := render.PaintOrder(in)
	want := []string{"d", "b", "e", "a", "c"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
	if in[0].ID != "a" {
		t.Error("PaintOrder must not reorder its input")
	}
}

// ─────────────────────────────────────────────────────────────
// Colors
// ─────────────────────────────────────────────────────────────

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#0f172a", color.RGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff}, true},
		{"#FFF", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, true},
		{"#11223380", color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x80}, true},
		{"transparent", color.RGBA{}, true},
		{"red", color.RGBA{}, false},
		{"#12", color.RGBA{}, false},
		{"#zzzzzz", color.RGBA{}, false},
	}
	for _, tc := range cases {
		got, ok := render.ParseColor(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseColor(%q) = %v,%v; want %v,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

// ─────────────────────────────────────────────────────────────
// Rasterizer
// ─────────────────────────────────────────────────────────────

func rgbaAt(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

func TestRasterizer_BackgroundAndShapes(t *testing.T) {
	r := render.NewRasterizer(0.5)
	if w, h := r.Size(); w != 397 || h != 562 {
		t.Fatalf("unexpected size %dx%d", w, h)
	}
	page := domain.Page{
		BackgroundColor: "#0f172a",
		Elements: []domain.Element{
			{ID: "top", Type: domain.ElementTypeShape, X: 0, Y: 0, Width: 100, Height: 100, ZIndex: 2, BackgroundColor: "#ff0000"},
			{ID: "under", Type: domain.ElementTypeShape, X: 0, Y: 0, Width: 200, Height: 200, ZIndex: 1, BackgroundColor: "#00ff00"},
			{ID: "bleed", Type: domain.ElementTypeShape, X: -100, Y: -50, Width: 60, Height: 60, BackgroundColor: "#0000ff"},
		},
	}
	img := r.Page(page)

	if got := rgbaAt(img, 10, 10); got != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("expected red on top, got %v", got)
	}
	if got := rgbaAt(img, 75, 75); got != (color.RGBA{G: 0xff, A: 0xff}) {
		t.Errorf("expected green beneath, got %v", got)
	}
	if got := rgbaAt(img, 300, 300); got != (color.RGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff}) {
		t.Errorf("expected page background, got %v", got)
	}
}

func TestRasterizer_RoundedCorners(t *testing.T) {
	r := render.NewRasterizer(1)
	page := domain.Page{
		BackgroundColor: "#ffffff",
		Elements: []domain.Element{
			{Type: domain.ElementTypeShape, X: 100, Y: 100, Width: 100, Height: 100, BorderRadius: 50, BackgroundColor: "#000000"},
		},
	}
	img := r.Page(page)
	if got := rgbaAt(img, 101, 101); got.R != 0xff {
		t.Errorf("corner should stay white, got %v", got)
	}
	if got := rgbaAt(img, 150, 150); got.R != 0 {
		t.Errorf("center should be black, got %v", got)
	}
}

func TestRasterizer_TextAndImages(t *testing.T) {
	var buf bytes.Buffer
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())

	if _, err := render.DecodeDataURL(dataURL); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, err := render.DecodeDataURL("not a url"); err == nil {
		t.Error("expected error for malformed data URL")
	}

	page := domain.Page{
		BackgroundColor: "#000000",
		Elements: []domain.Element{
			{Type: domain.ElementTypeText, Content: "HELLO WORLD", X: 10, Y: 10, Width: 300, Height: 40, FontSize: 26, FontWeight: "bold", Color: "#ffffff"},
			{Type: domain.ElementTypeImage, Content: dataURL, X: 400, Y: 400, Width: 40, Height: 40},
			{Type: domain.ElementTypeLogo, Content: "broken", X: 500, Y: 500, Width: 40, Height: 40},
		},
	}
	img := render.NewRasterizer(1).Page(page)

	lit := 0
	for y := 10; y < 50; y++ {
		for x := 10; x < 310; x++ {
			if img.RGBAAt(x, y).R > 0x80 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("expected text pixels to be drawn")
	}
	if got := img.RGBAAt(420, 420); got.R != 0xff {
		t.Errorf("expected pasted image, got %v", got)
	}
	if got := img.RGBAAt(520, 520); got.R != 0 {
		t.Errorf("broken logo should be skipped, got %v", got)
	}
}
