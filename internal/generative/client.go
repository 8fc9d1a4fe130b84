// Package generative wraps the Gemini SDK behind the one operation the
// itinerary pipeline needs: turn a prompt into raw text.
package generative

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Client calls the Gemini API with a fixed model.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient constructs a Client authenticated with apiKey.
// model selects the generation model (e.g. "gemini-2.0-flash").
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("generative.NewClient: %w", err)
	}
	return &Client{client: c, model: model}, nil
}

// GenerateText sends prompt to the model and returns the text of the first
// candidate. An error or an empty candidate list yields an error; the caller
// decides whether that is fatal.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generative.Client.GenerateText: %w", err)
	}

	text := extractText(resp)
	if text == "" {
		return "", fmt.Errorf("generative.Client.GenerateText: model returned no text")
	}
	return text, nil
}

// extractText pulls the first non-empty text part out of the response
// candidates.
func extractText(resp *genai.GenerateContentResponse) string {
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				return part.Text
			}
		}
	}
	return ""
}
