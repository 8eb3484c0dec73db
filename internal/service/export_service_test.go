package service_test

import (
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"proprofile/internal/domain"
	"proprofile/internal/export"
	"proprofile/internal/service"
)

type failingSink struct{}

func (failingSink) Put(context.Context, string, string, []byte) (string, error) {
	return "", errors.New("disk full")
}

func TestExport_PagePNGToFileSink(t *testing.T) {
	f := newEditor(t)
	ctx := context.Background()
	f.svc.SetCompany(ctx, domain.CompanyData{Name: "Acme Corp"})
	f.svc.AddElement(ctx, "SHAPE", "")
	dir := t.TempDir()

	es := service.NewExportService(f.svc, f.emitter, export.FileSink{Dir: dir})
	out, err := es.ExportPagePNG(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if out.Name != "Acme_Corp_Page.png" {
		t.Errorf("unexpected file name %q", out.Name)
	}
	if len(out.Locations) != 1 || out.Locations[0] != filepath.Join(dir, out.Name) {
		t.Fatalf("unexpected locations %v", out.Locations)
	}

	fh, err := os.Open(out.Locations[0])
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer fh.Close()
	cfg, err := png.DecodeConfig(fh)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if cfg.Width != 794*export.DefaultScale || cfg.Height != 1123*export.DefaultScale {
		t.Errorf("unexpected size %dx%d", cfg.Width, cfg.Height)
	}
	if len(f.emitter.Named(service.EventExported)) != 1 {
		t.Error("expected an export:done event")
	}
	if got := testutil.ToFloat64(f.metrics.ExportTotal.WithLabelValues("png", "ok")); got != 1 {
		t.Errorf("png export count = %v, want 1", got)
	}
}

func TestExport_AllPagesPDF(t *testing.T) {
	f := newEditor(t)
	ctx := context.Background()
	f.svc.AddPage(ctx)
	dir := t.TempDir()

	es := service.NewExportService(f.svc, f.emitter, export.FileSink{Dir: dir})
	out, err := es.ExportAllPDF(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if out.Name != "Company_FullProfile.pdf" || out.Pages != 2 {
		t.Errorf("unexpected result %+v", out)
	}
	data, err := os.ReadFile(out.Locations[0])
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(data) < 4 || string(data[:4]) != "%PDF" {
		t.Error("expected a PDF header")
	}
}

func TestExport_SinkFailureNotifiesAndKeepsDocument(t *testing.T) {
	f := newEditor(t)
	ctx := context.Background()
	f.svc.AddElement(ctx, "TEXT", "x")
	before := f.svc.Document()

	es := service.NewExportService(f.svc, f.emitter, failingSink{})
	if _, err := es.ExportPagePDF(ctx); err == nil {
		t.Fatal("expected sink error")
	}
	if len(f.emitter.Named(service.EventNotice)) != 1 {
		t.Error("expected a failure notice")
	}
	after := f.svc.Document()
	if after.SelectedID != before.SelectedID || len(after.Pages[0].Elements) != 1 {
		t.Error("export must not change the document")
	}
}
