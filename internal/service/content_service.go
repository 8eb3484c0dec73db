package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"proprofile/internal/ai"
	"proprofile/internal/domain"
)

// ErrStale is returned when the company changed while text was generating;
// the result is discarded.
var ErrStale = errors.New("company data changed during generation")

// DefaultFillTimeout bounds a single model call.
const DefaultFillTimeout = 60 * time.Second

// ─────────────────────────────────────────────────────────────
// Content Service: AI fill of company text
// ─────────────────────────────────────────────────────────────

// ContentService asks the AI collaborator for about/vision/mission text and
// writes it into the editor's company data. Only the most recent request may
// apply, and only while the company's name and industry are unchanged.
type ContentService struct {
	editor  *EditorService
	gen     ai.Generator
	emitter EventEmitter
	timeout time.Duration

	genMu sync.RWMutex

	ticket atomic.Uint64
	jobs   atomic.Uint64
	guard  runningJobsGuard
}

// NewContentService accepts a nil generator; every fill then fails with
// ai.ErrNoAPIKey.
func NewContentService(editor *EditorService, gen ai.Generator, emitter EventEmitter) *ContentService {
	if emitter == nil {
		emitter = noopEmitter{}
	}
	return &ContentService{editor: editor, gen: gen, emitter: emitter, timeout: DefaultFillTimeout}
}

// SetGenerator swaps the AI collaborator, e.g. after the user stores a new
// API key. nil disables generation.
func (s *ContentService) SetGenerator(gen ai.Generator) {
	s.genMu.Lock()
	s.gen = gen
	s.genMu.Unlock()
}

func (s *ContentService) generator() ai.Generator {
	s.genMu.RLock()
	defer s.genMu.RUnlock()
	return s.gen
}

// Fill generates the three text fields synchronously and applies them.
func (s *ContentService) Fill(ctx context.Context) (domain.GeneratedContent, error) {
	ticket := s.ticket.Add(1)
	c := s.editor.Company()
	req := ai.Request{Name: c.Name, Industry: c.Industry, Language: s.editor.Language()}
	if err := req.Validate(); err != nil {
		s.notice(ctx, "Please enter Company Name and Industry first.")
		return domain.GeneratedContent{}, err
	}
	gen := s.generator()
	if gen == nil {
		s.notice(ctx, "AI content generation is not configured.")
		return domain.GeneratedContent{}, ai.ErrNoAPIKey
	}

	ctx2, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	start := time.Now()
	g, err := gen.Generate(ctx2, req)
	if err != nil {
		s.editor.metrics.ObserveContentFill("error", time.Since(start))
		log.Printf("[AI] generate for %q failed: %v", req.Name, err)
		s.notice(ctx, "Failed to generate content.")
		return domain.GeneratedContent{}, fmt.Errorf("generate content: %w", err)
	}

	if ticket != s.ticket.Load() {
		s.editor.metrics.ObserveContentFill("stale", time.Since(start))
		return domain.GeneratedContent{}, ErrStale
	}
	if !s.editor.applyIfCurrent(ctx, req.Name, req.Industry, func(c *domain.CompanyData) { c.ApplyGenerated(g) }) {
		s.editor.metrics.ObserveContentFill("stale", time.Since(start))
		log.Printf("[AI] discarding result for %q: company changed", req.Name)
		return domain.GeneratedContent{}, ErrStale
	}
	s.editor.metrics.ObserveContentFill("ok", time.Since(start))
	s.emitter.Emit(ctx, EventContentFilled, g)
	return g, nil
}

// FillAsync runs Fill in the background. Outcomes are reported through
// events only.
func (s *ContentService) FillAsync(ctx context.Context) {
	key := "fill-" + strconv.FormatUint(s.jobs.Add(1), 10)
	s.guard.TryLock(key)
	go func() {
		defer s.guard.Unlock(key)
		if _, err := s.Fill(ctx); err != nil && !errors.Is(err, ErrStale) {
			log.Printf("[AI] fill: %v", err)
		}
	}()
}

// sectionFields maps the free-form sections the model can write to the
// company field they land in.
var sectionFields = map[string]func(c *domain.CompanyData) *string{
	"tagline":         func(c *domain.CompanyData) *string { return &c.Tagline },
	"infrastructure":  func(c *domain.CompanyData) *string { return &c.Infrastructure },
	"directorMessage": func(c *domain.CompanyData) *string { return &c.DirectorMessage },
	"contact":         func(c *domain.CompanyData) *string { return &c.Contact },
}

// Sections lists the names FillSection accepts.
func Sections() []string {
	return []string{"tagline", "infrastructure", "directorMessage", "contact"}
}

// FillSection writes a single company field with the model, using the name
// and industry as context.
func (s *ContentService) FillSection(ctx context.Context, section string) (string, error) {
	field, ok := sectionFields[section]
	if !ok {
		return "", fmt.Errorf("unknown section %q", section)
	}
	c := s.editor.Company()
	req := ai.Request{Name: c.Name, Industry: c.Industry}
	if err := req.Validate(); err != nil {
		return "", err
	}
	gen := s.generator()
	if gen == nil {
		return "", ai.ErrNoAPIKey
	}

	ctx2, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	hint := fmt.Sprintf("%s, a company in the %s industry", c.Name, c.Industry)
	text, err := gen.Section(ctx2, section, hint)
	if err != nil {
		return "", fmt.Errorf("generate %s: %w", section, err)
	}
	text = strings.TrimSpace(text)
	if !s.editor.applyIfCurrent(ctx, req.Name, req.Industry, func(c *domain.CompanyData) { *field(c) = text }) {
		return "", ErrStale
	}
	return text, nil
}

func (s *ContentService) notice(ctx context.Context, msg string) {
	s.emitter.Emit(ctx, EventNotice, Notice{Level: "error", Message: msg})
}

// Wait blocks until background fills finish or ctx ends.
func (s *ContentService) Wait(ctx context.Context) {
	s.guard.WaitAll(ctx)
}
