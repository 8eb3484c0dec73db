package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"proprofile/internal/domain"
)

const DefaultModel = "gemini-2.5-flash"

// GeminiGenerator calls the Gemini API with a JSON response schema.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

var contentSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"vision":  {Type: genai.TypeString},
		"mission": {Type: genai.TypeString},
		"about":   {Type: genai.TypeString},
	},
	Required: []string{"vision", "mission", "about"},
}

func (g *GeminiGenerator) Generate(ctx context.Context, req Request) (domain.GeneratedContent, error) {
	if err := req.Validate(); err != nil {
		return domain.GeneratedContent{}, err
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(profilePrompt(req)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   contentSchema,
	})
	if err != nil {
		return domain.GeneratedContent{}, fmt.Errorf("gemini generate: %w", err)
	}
	return parseContent(resp.Text())
}

func (g *GeminiGenerator) Section(ctx context.Context, section, hint string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(sectionPrompt(section, hint)), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
