package app

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"proprofile/internal/canvas"
	"proprofile/internal/domain"
)

// ============================================================
// Document
// ============================================================

func (a *App) GetDocument() *domain.Document {
	return a.svc.editor.Document()
}

func (a *App) NewDocument(name string) *domain.Document {
	return a.svc.editor.NewDocument(a.ctx, name)
}

func (a *App) SaveDocument() error {
	if err := a.svc.editor.Save(a.ctx); err != nil {
		return err
	}
	return a.svc.settings.SaveLastDocument(a.svc.editor.Document().ID)
}

func (a *App) OpenDocument(id string) error {
	return a.svc.editor.Load(a.ctx, id)
}

func (a *App) ListDocuments() ([]domain.DocumentSummary, error) {
	return a.svc.editor.ListDocuments()
}

func (a *App) DeleteDocument(id string) error {
	if id == a.svc.editor.Document().ID {
		return fmt.Errorf("cannot delete the open document")
	}
	return a.svc.editor.DeleteDocument(id)
}

// ============================================================
// Elements
// ============================================================

func (a *App) AddElement(elementType, content string) (domain.Element, error) {
	return a.svc.editor.AddElement(a.ctx, elementType, content)
}

func (a *App) UpdateElement(id string, patch domain.ElementPatch) error {
	return a.svc.editor.UpdateElement(a.ctx, id, patch)
}

func (a *App) DeleteElement(id string) error {
	return a.svc.editor.DeleteElement(a.ctx, id)
}

func (a *App) SelectElement(id string) error {
	return a.svc.editor.SelectElement(a.ctx, id)
}

func (a *App) ClearSelection() {
	a.svc.editor.ClearSelection(a.ctx)
}

func (a *App) BringToFront(id string) error {
	return a.svc.editor.BringToFront(a.ctx, id)
}

func (a *App) SendToBack(id string) error {
	return a.svc.editor.SendToBack(a.ctx, id)
}

func (a *App) DuplicateElement(id string) (domain.Element, error) {
	return a.svc.editor.DuplicateElement(a.ctx, id)
}

// PickImage opens a file dialog and returns the chosen image as a data URL,
// ready for AddElement or SetBackgroundImage. An empty string means the
// dialog was cancelled.
func (a *App) PickImage() (string, error) {
	path, err := wailsRuntime.OpenFileDialog(a.ctx, wailsRuntime.OpenDialogOptions{
		Title: "Choose an image",
		Filters: []wailsRuntime.FileFilter{
			{DisplayName: "Images (*.png;*.jpg;*.jpeg;*.gif)", Pattern: "*.png;*.jpg;*.jpeg;*.gif"},
		},
	})
	if err != nil || path == "" {
		return "", err
	}
	return imageDataURL(path)
}

func imageDataURL(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	mt := mime.TypeByExtension(filepath.Ext(path))
	if mt == "" {
		mt = "image/png"
	}
	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// ============================================================
// Pages
// ============================================================

func (a *App) SetBackgroundColor(color string) error {
	return a.svc.editor.SetBackgroundColor(a.ctx, color)
}

func (a *App) SetBackgroundImage(dataURL string) error {
	return a.svc.editor.SetBackgroundImage(a.ctx, dataURL)
}

func (a *App) AddPage() domain.Page {
	return a.svc.editor.AddPage(a.ctx)
}

func (a *App) DeletePage() error {
	return a.svc.editor.DeletePage(a.ctx)
}

// NavigatePage moves to the "next" or "prev" page. It reports whether the
// active page changed.
func (a *App) NavigatePage(direction string) (bool, error) {
	switch direction {
	case "next":
		return a.svc.editor.NavigatePage(a.ctx, canvas.Next), nil
	case "prev":
		return a.svc.editor.NavigatePage(a.ctx, canvas.Prev), nil
	default:
		return false, fmt.Errorf("unknown direction %q", direction)
	}
}

func (a *App) GoToPage(id string) bool {
	return a.svc.editor.GoToPage(a.ctx, id)
}

// ============================================================
// Drag & zoom
// ============================================================

func (a *App) PointerDown(id string, x, y float64, button int) error {
	return a.svc.editor.PointerDown(a.ctx, id, x, y, button)
}

func (a *App) PointerMove(x, y float64) error {
	return a.svc.editor.PointerMove(a.ctx, x, y)
}

func (a *App) PointerUp() {
	a.svc.editor.PointerUp()
}

func (a *App) GetZoom() float64 {
	return a.svc.editor.Zoom()
}

func (a *App) SetZoom(z float64) float64 {
	return a.svc.editor.SetZoom(z)
}

func (a *App) ZoomIn() float64 {
	return a.svc.editor.ZoomIn()
}

func (a *App) ZoomOut() float64 {
	return a.svc.editor.ZoomOut()
}
