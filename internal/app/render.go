package app

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"proprofile/internal/canvas"
	"proprofile/internal/export"
	"proprofile/internal/importer"
	"proprofile/internal/layout"
	"proprofile/internal/render"
	"proprofile/internal/service"
	"proprofile/internal/watch"
)

// RenderOptions drives the headless render command.
type RenderOptions struct {
	CompanyFile string // JSON or CSV file, or an http(s) URL
	DataPath    string // path to the company object inside JSON
	Layout      string // auto-layout kind or template name
	Language    string
	Out         string // .pdf for every page, .png for one page
	Page        int    // 1-based page for PNG output
	Watch       bool   // re-render whenever CompanyFile changes
}

func (o RenderOptions) validate() error {
	if o.CompanyFile == "" {
		return fmt.Errorf("company file is required")
	}
	if o.Watch && importer.IsRemote(o.CompanyFile) {
		return fmt.Errorf("-watch needs a local company file")
	}
	if o.Out == "" {
		return fmt.Errorf("output path is required")
	}
	switch strings.ToLower(filepath.Ext(o.Out)) {
	case ".pdf", ".png":
	default:
		return fmt.Errorf("output must end in .pdf or .png: %s", o.Out)
	}
	kind := strings.ToUpper(o.Layout)
	if !slices.Contains(layout.AutoLayouts(), kind) && !slices.Contains(layout.Templates(), kind) {
		return fmt.Errorf("%w: %s", layout.ErrUnknownLayout, o.Layout)
	}
	return nil
}

// RunRender generates a document from a company file and writes it to
// opts.Out. With Watch it keeps running until ctx ends, re-rendering after
// every change to the company file.
func RunRender(ctx context.Context, opts RenderOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}
	if err := renderOnce(ctx, opts); err != nil {
		return err
	}
	if !opts.Watch {
		return nil
	}

	w, err := watch.New(func(path string) {
		if err := renderOnce(ctx, opts); err != nil {
			log.Printf("[RENDER] %s: %v", path, err)
		}
	}, watch.DefaultQuiet)
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(opts.CompanyFile); err != nil {
		return err
	}
	log.Printf("[RENDER] watching %s", opts.CompanyFile)
	<-ctx.Done()
	return nil
}

func renderOnce(ctx context.Context, opts RenderOptions) error {
	start := time.Now()
	company, err := importer.Load(ctx, opts.CompanyFile, importer.Options{DataPath: opts.DataPath})
	if err != nil {
		return err
	}

	editor := service.NewEditorService(service.EditorOptions{
		Engine:   canvas.New(canvas.WithStrict(true)),
		Language: opts.Language,
	})
	editor.SetCompany(ctx, company)
	kind := strings.ToUpper(opts.Layout)
	if slices.Contains(layout.Templates(), kind) {
		err = editor.ApplyTemplate(ctx, kind)
	} else {
		err = editor.GenerateLayout(ctx, kind)
	}
	if err != nil {
		return err
	}
	doc := editor.Document()

	var buf bytes.Buffer
	raster := render.NewRasterizer(export.DefaultScale)
	if strings.EqualFold(filepath.Ext(opts.Out), ".png") {
		page := max(opts.Page, 1)
		if page > len(doc.Pages) {
			return fmt.Errorf("page %d out of range (document has %d)", page, len(doc.Pages))
		}
		err = export.PNG(&buf, doc.Pages[page-1], raster)
	} else {
		err = export.PDF(&buf, doc.Pages, raster, export.Meta{Title: company.Name, Created: start})
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", opts.Out, err)
	}

	if dir := filepath.Dir(opts.Out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(opts.Out, buf.Bytes(), 0o644); err != nil {
		return err
	}
	log.Printf("[RENDER] wrote %s (%d pages, %s)", opts.Out, len(doc.Pages), time.Since(start).Round(time.Millisecond))
	return nil
}
