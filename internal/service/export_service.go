package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"proprofile/internal/domain"
	"proprofile/internal/export"
	"proprofile/internal/render"
)

var ErrExportRunning = errors.New("an export is already running")

// ─────────────────────────────────────────────────────────────
// Export Service: PDF/PNG of the open document
// ─────────────────────────────────────────────────────────────

// ExportService renders snapshots of the editor's document and stores the
// result in every configured sink. The document itself is never modified.
type ExportService struct {
	editor  *EditorService
	raster  *render.Rasterizer
	sinks   []export.Sink
	emitter EventEmitter
	guard   runningJobsGuard
	now     func() time.Time
}

func NewExportService(editor *EditorService, emitter EventEmitter, sinks ...export.Sink) *ExportService {
	if emitter == nil {
		emitter = noopEmitter{}
	}
	return &ExportService{
		editor:  editor,
		raster:  render.NewRasterizer(export.DefaultScale),
		sinks:   sinks,
		emitter: emitter,
		now:     time.Now,
	}
}

// Exported describes one finished export.
type Exported struct {
	Name      string   `json:"name"`
	Pages     int      `json:"pages"`
	Locations []string `json:"locations"`
}

// ExportPagePDF exports the active page as a one-page PDF.
func (s *ExportService) ExportPagePDF(ctx context.Context) (Exported, error) {
	p, err := s.editor.ActivePage()
	if err != nil {
		return Exported{}, err
	}
	return s.pdf(ctx, []domain.Page{p}, "Page")
}

// ExportAllPDF exports every page, in order, as one PDF.
func (s *ExportService) ExportAllPDF(ctx context.Context) (Exported, error) {
	return s.pdf(ctx, s.editor.Document().Pages, "FullProfile")
}

// ExportPagePNG exports the active page as an image.
func (s *ExportService) ExportPagePNG(ctx context.Context) (Exported, error) {
	p, err := s.editor.ActivePage()
	if err != nil {
		return Exported{}, err
	}
	name := export.FileName(s.editor.Company().Name, "Page", "png")
	return s.run(ctx, name, export.ContentTypePNG, 1, func(buf *bytes.Buffer) error {
		return export.PNG(buf, p, s.raster)
	})
}

func (s *ExportService) pdf(ctx context.Context, pages []domain.Page, suffix string) (Exported, error) {
	company := s.editor.Company().Name
	name := export.FileName(company, suffix, "pdf")
	meta := export.Meta{Title: company, Created: s.now()}
	return s.run(ctx, name, export.ContentTypePDF, len(pages), func(buf *bytes.Buffer) error {
		return export.PDF(buf, pages, s.raster, meta)
	})
}

func (s *ExportService) run(ctx context.Context, name, contentType string, pages int, write func(*bytes.Buffer) error) (Exported, error) {
	if !s.guard.TryLock("export") {
		return Exported{}, ErrExportRunning
	}
	defer s.guard.Unlock("export")

	format := "png"
	if contentType == export.ContentTypePDF {
		format = "pdf"
	}
	start := time.Now()
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		s.fail(ctx, name, err)
		s.editor.metrics.ObserveExport(format, time.Since(start), err)
		return Exported{}, fmt.Errorf("export %s: %w", name, err)
	}

	out := Exported{Name: name, Pages: pages}
	for _, sink := range s.sinks {
		loc, err := sink.Put(ctx, name, contentType, buf.Bytes())
		if err != nil {
			s.fail(ctx, name, err)
			s.editor.metrics.ObserveExport(format, time.Since(start), err)
			return out, err
		}
		out.Locations = append(out.Locations, loc)
	}
	s.editor.metrics.ObserveExport(format, time.Since(start), nil)
	log.Printf("[EXPORT] %s: %d page(s), %d bytes in %s", name, pages, buf.Len(), time.Since(start).Round(time.Millisecond))
	s.emitter.Emit(ctx, EventExported, out)
	return out, nil
}

func (s *ExportService) fail(ctx context.Context, name string, err error) {
	log.Printf("[EXPORT] %s failed: %v", name, err)
	s.emitter.Emit(ctx, EventNotice, Notice{Level: "error", Message: "Failed to export " + name + "."})
}

// Wait blocks until a running export finishes or ctx ends.
func (s *ExportService) Wait(ctx context.Context) {
	s.guard.WaitAll(ctx)
}
