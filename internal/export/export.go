// Package export turns rendered pages into PDF or PNG files and hands them
// to a Sink. Export never mutates the document.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"proprofile/internal/domain"
	"proprofile/internal/render"
)

var ErrNoPages = errors.New("no pages to export")

// DefaultScale renders at twice page resolution for print quality.
const DefaultScale = 2

const (
	a4WidthMM  = 210.0
	a4HeightMM = 297.0
)

type Meta struct {
	Title   string
	Created time.Time
}

// PDF writes one full-bleed A4 page per document page, each a raster of the
// page at the rasterizer's scale.
func PDF(w io.Writer, pages []domain.Page, r *render.Rasterizer, meta Meta) error {
	if len(pages) == 0 {
		return ErrNoPages
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("proprofile", true)
	if meta.Title != "" {
		pdf.SetTitle(meta.Title, true)
	}
	if !meta.Created.IsZero() {
		pdf.SetCreationDate(meta.Created)
	}

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	for i, p := range pages {
		var buf bytes.Buffer
		if err := png.Encode(&buf, r.Page(p)); err != nil {
			return fmt.Errorf("encode page %d: %w", i+1, err)
		}
		name := fmt.Sprintf("page-%d", i+1)
		pdf.RegisterImageOptionsReader(name, opts, &buf)
		pdf.AddPage()
		pdf.ImageOptions(name, 0, 0, a4WidthMM, a4HeightMM, false, opts, 0, "")
		if err := pdf.Error(); err != nil {
			return fmt.Errorf("pdf page %d: %w", i+1, err)
		}
	}
	return pdf.Output(w)
}

// PNG writes a single page.
func PNG(w io.Writer, p domain.Page, r *render.Rasterizer) error {
	return png.Encode(w, r.Page(p))
}

var unsafeName = regexp.MustCompile(`[^\p{L}\p{N}_.-]+`)

// FileName builds "<Company>_<suffix>.<ext>" with whitespace collapsed to
// underscores and path characters removed.
func FileName(company, suffix, ext string) string {
	base := strings.Join(strings.Fields(company), "_")
	base = unsafeName.ReplaceAllString(base, "")
	if base == "" {
		base = "Company"
	}
	return fmt.Sprintf("%s_%s.%s", base, suffix, ext)
}
