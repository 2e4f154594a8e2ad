// Package llm provides the Gemini-backed language-model collaborator.
package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/draftsmith-ai/draftsmith/internal/core"
	"github.com/draftsmith-ai/draftsmith/internal/logging"
)

// GeminiClient implements core.ModelClient on Google's Gemini API.
// The client is constructed by the driver and passed explicitly to the
// pipelines; there is no package-level instance.
type GeminiClient struct {
	client      *genai.Client
	model       string
	temperature float32
	logger      *logging.Logger
}

// Options configures the Gemini client.
type Options struct {
	APIKey      string
	Model       string
	Temperature float64
	Logger      *logging.Logger
}

// NewGeminiClient creates a Gemini model client.
func NewGeminiClient(ctx context.Context, opts Options) (*GeminiClient, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required (set GEMINI_API_KEY)")
	}
	if opts.Model == "" {
		opts.Model = "gemini-2.5-flash"
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: opts.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &GeminiClient{
		client:      client,
		model:       opts.Model,
		temperature: float32(opts.Temperature),
		logger:      opts.Logger.With("model", opts.Model),
	}, nil
}

// Complete sends one prompt and returns the model's text response.
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		Temperature: genai.Ptr(c.temperature),
	})
	if err != nil {
		c.logger.Warn("model call failed", "error", err)
		return "", core.ErrCollaborator(core.CodeModelFailed, "model call failed").WithCause(err)
	}

	text := strings.TrimSpace(resp.Text())
	c.logger.Debug("model call completed", "prompt_len", len(prompt), "response_len", len(text))
	return text, nil
}

// Model returns the configured model name.
func (c *GeminiClient) Model() string {
	return c.model
}
