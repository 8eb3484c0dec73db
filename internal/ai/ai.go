// Package ai fills company text fields from a generative model.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"proprofile/internal/domain"
)

var (
	ErrMissingInput  = errors.New("company name and industry are required")
	ErrEmptyResponse = errors.New("model returned no content")
	ErrNoAPIKey      = errors.New("no API key configured")
)

type Request struct {
	Name     string
	Industry string
	Language string // BCP 47; empty means English
}

func (r Request) Validate() error {
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Industry) == "" {
		return ErrMissingInput
	}
	return nil
}

// Generator produces about/vision/mission text for a company.
type Generator interface {
	Generate(ctx context.Context, req Request) (domain.GeneratedContent, error)
	// Section writes a short free-form section given some context.
	Section(ctx context.Context, section, hint string) (string, error)
}

func profilePrompt(r Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a professional corporate profile content for a company named %q in the %q industry.\n", r.Name, r.Industry)
	b.WriteString("Provide a Vision statement, a Mission statement, and a short About Us paragraph (approx 50 words).")
	if lang := languageName(r.Language); lang != "" {
		fmt.Fprintf(&b, "\nWrite all text in %s.", lang)
	}
	return b.String()
}

func sectionPrompt(section, hint string) string {
	return fmt.Sprintf("Write a short, professional %q section for a company profile. Context: %s. Keep it under 40 words.", section, hint)
}

func languageName(code string) string {
	switch strings.ToLower(strings.SplitN(code, "-", 2)[0]) {
	case "id":
		return "Indonesian"
	}
	return ""
}

// parseContent decodes the model's JSON answer. All three fields must be
// present for the result to be used.
func parseContent(text string) (domain.GeneratedContent, error) {
	var g domain.GeneratedContent
	text = strings.TrimSpace(text)
	if text == "" {
		return g, ErrEmptyResponse
	}
	if err := json.Unmarshal([]byte(text), &g); err != nil {
		return g, fmt.Errorf("decode model response: %w", err)
	}
	if g.About == "" || g.Vision == "" || g.Mission == "" {
		return g, ErrEmptyResponse
	}
	return g, nil
}
