package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// TextClient issues one structured-output completion and returns the raw
// JSON text. Implemented by GeminiClient; tests substitute a stub.
type TextClient interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
	Close() error
}

// GeminiClient implements TextClient using Google's Gemini API.
type GeminiClient struct {
	client  *genai.Client
	modelID string
}

// NewGeminiClient creates a new Gemini text client.
func NewGeminiClient(ctx context.Context, apiKey, modelID string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingCredential
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("generation: failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client:  client,
		modelID: modelID,
	}, nil
}

// GenerateJSON sends the prompt with the dataset response schema attached and
// returns the model's JSON text.
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.modelID)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = datasetSchema

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generation: gemini request failed: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", errors.New("generation: gemini returned no candidates")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}

	var out strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}
	if strings.TrimSpace(out.String()) == "" {
		return "", ErrEmptyResponse
	}
	return out.String(), nil
}

// Close releases resources held by the Gemini client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
