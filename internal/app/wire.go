package app

import (
	"context"
	"fmt"
	"log"

	"proprofile/internal/ai"
	"proprofile/internal/canvas"
	"proprofile/internal/config"
	"proprofile/internal/export"
	"proprofile/internal/metrics"
	"proprofile/internal/secret"
	"proprofile/internal/service"
	"proprofile/internal/storage"
)

// services is everything one process needs to edit and export documents.
// The desktop app, the standalone MCP server and the render command each
// build one.
type services struct {
	db       *storage.DB
	docs     *storage.DocumentStore
	editor   *service.EditorService
	exports  *service.ExportService
	content  *service.ContentService
	settings *service.SettingsService
	secrets  secret.SecretStore
}

// openServices opens the database under cfg.DataDir and wires the services.
// strict forces unknown element ids to be errors regardless of cfg.
func openServices(ctx context.Context, cfg config.Config, emitter service.EventEmitter, secrets secret.SecretStore, strict bool) (*services, error) {
	db, err := storage.New(cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &services{
		db:       db,
		docs:     storage.NewDocumentStore(db),
		settings: service.NewSettingsService(storage.NewSettingsStore(db)),
		secrets:  secrets,
	}

	s.editor = service.NewEditorService(service.EditorOptions{
		Engine:    canvas.New(canvas.WithStrict(strict || cfg.Strict)),
		Documents: s.docs,
		Companies: storage.NewCompanyStore(db),
		Emitter:   emitter,
		Language:  cfg.Language,
		Zoom:      s.settings.LoadZoom(cfg.Zoom),
		Metrics:   metrics.Default(),
	})

	sinks := []export.Sink{export.FileSink{Dir: cfg.ExportDir}}
	if cfg.S3Enabled() {
		s3, err := export.NewS3Sink(ctx, export.S3Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Prefix:    "exports",
		})
		if err != nil {
			log.Printf("[EXPORT] S3 disabled: %v", err)
		} else {
			sinks = append(sinks, s3)
		}
	}
	s.exports = service.NewExportService(s.editor, emitter, sinks...)

	s.content = service.NewContentService(s.editor, newGenerator(ctx, cfg, secrets), emitter)
	return s, nil
}

// newGenerator returns nil when no API key is configured or stored, which
// leaves AI fill disabled rather than failing startup.
func newGenerator(ctx context.Context, cfg config.Config, secrets secret.SecretStore) ai.Generator {
	key := secret.Resolve(cfg.GeminiAPIKey, secrets, secret.GeminiKey)
	if key == "" {
		return nil
	}
	gen, err := ai.NewGeminiGenerator(ctx, key, cfg.GeminiModel)
	if err != nil {
		log.Printf("[AI] disabled: %v", err)
		return nil
	}
	return gen
}

// restoreLastDocument reopens the document that was open at last shutdown.
func (s *services) restoreLastDocument(ctx context.Context) {
	id := s.settings.LastDocument()
	if id == "" {
		return
	}
	if err := s.editor.Load(ctx, id); err != nil {
		log.Printf("[EDITOR] could not reopen %s: %v", id, err)
	}
}

// close saves the open document, remembers it and closes the database.
func (s *services) close(ctx context.Context) {
	s.exports.Wait(ctx)
	s.content.Wait(ctx)
	if err := s.editor.Save(ctx); err != nil {
		log.Printf("[EDITOR] save on exit: %v", err)
	} else {
		s.settings.SaveLastDocument(s.editor.Document().ID)
	}
	s.settings.SaveZoom(s.editor.Zoom())
	s.db.Close()
}
