package app

import (
	"fmt"
	"strings"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"proprofile/internal/domain"
	"proprofile/internal/importer"
	"proprofile/internal/layout"
	"proprofile/internal/secret"
	"proprofile/internal/service"
)

// ============================================================
// Layouts & language
// ============================================================

// LayoutCatalog is what the layout picker shows.
type LayoutCatalog struct {
	AutoLayouts []string `json:"autoLayouts"`
	Templates   []string `json:"templates"`
}

func (a *App) ListLayouts() LayoutCatalog {
	return LayoutCatalog{AutoLayouts: layout.AutoLayouts(), Templates: layout.Templates()}
}

func (a *App) GenerateLayout(kind string) error {
	return a.svc.editor.GenerateLayout(a.ctx, kind)
}

func (a *App) ApplyTemplate(name string) error {
	return a.svc.editor.ApplyTemplate(a.ctx, name)
}

func (a *App) GetLanguage() string {
	return a.svc.editor.Language()
}

// SetLanguage returns how many elements were retranslated.
func (a *App) SetLanguage(lang string) int {
	return a.svc.editor.SetLanguage(a.ctx, lang)
}

// ============================================================
// Company & AI content
// ============================================================

func (a *App) GetCompany() domain.CompanyData {
	return a.svc.editor.Company()
}

func (a *App) SetCompany(c domain.CompanyData) {
	a.svc.editor.SetCompany(a.ctx, c)
}

// ImportCompany loads company data from a JSON or CSV file chosen in a
// dialog and makes it the generator input. ok is false when the dialog was
// cancelled.
func (a *App) ImportCompany() (c domain.CompanyData, ok bool, err error) {
	path, err := wailsRuntime.OpenFileDialog(a.ctx, wailsRuntime.OpenDialogOptions{
		Title: "Import company data",
		Filters: []wailsRuntime.FileFilter{
			{DisplayName: "Company data (*.json;*.csv)", Pattern: "*.json;*.csv"},
		},
	})
	if err != nil || path == "" {
		return c, false, err
	}
	c, err = importer.Load(a.ctx, path, importer.Options{})
	if err != nil {
		return c, false, err
	}
	a.svc.editor.SetCompany(a.ctx, c)
	return c, true, nil
}

// FillContent starts AI generation of about/vision/mission. The result
// arrives as a content:filled event.
func (a *App) FillContent() {
	a.svc.content.FillAsync(a.ctx)
}

func (a *App) FillSection(section string) (string, error) {
	return a.svc.content.FillSection(a.ctx, section)
}

func (a *App) ListSections() []string {
	return service.Sections()
}

// HasGeminiKey reports whether AI content generation is available.
func (a *App) HasGeminiKey() bool {
	return secret.Resolve(a.cfg.GeminiAPIKey, a.svc.secrets, secret.GeminiKey) != ""
}

// SetGeminiKey stores the API key in the OS keyring and enables AI fill.
// An empty key removes it.
func (a *App) SetGeminiKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		if err := a.svc.secrets.Delete(secret.GeminiKey); err != nil {
			return fmt.Errorf("remove key: %w", err)
		}
		a.svc.content.SetGenerator(newGenerator(a.ctx, a.cfg, a.svc.secrets))
		return nil
	}
	if err := a.svc.secrets.Set(secret.GeminiKey, []byte(key)); err != nil {
		return fmt.Errorf("store key: %w", err)
	}
	cfg := a.cfg
	cfg.GeminiAPIKey = key
	gen := newGenerator(a.ctx, cfg, nil)
	if gen == nil {
		return fmt.Errorf("could not initialize Gemini client")
	}
	a.svc.content.SetGenerator(gen)
	return nil
}

// ============================================================
// Export
// ============================================================

func (a *App) ExportPagePDF() (service.Exported, error) {
	return a.svc.exports.ExportPagePDF(a.ctx)
}

func (a *App) ExportAllPDF() (service.Exported, error) {
	return a.svc.exports.ExportAllPDF(a.ctx)
}

func (a *App) ExportPagePNG() (service.Exported, error) {
	return a.svc.exports.ExportPagePNG(a.ctx)
}
