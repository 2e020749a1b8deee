package sentiment

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"

	"newssense/internal/common"
)

const cohereModel = "command-r"

const coherePrompt = "Classify the sentiment of the following text as exactly one word: positive, negative, or neutral.\n\nText: %s"

// CohereProvider classifies text by asking the Cohere chat API for a one-word
// verdict and normalizing the reply.
type CohereProvider struct {
	client *cohereclient.Client
}

// NewCohereProvider constructs a provider from an API key. The HTTP client
// forces HTTP/1.1 to avoid HTTP/2 protocol errors against the Cohere edge.
func NewCohereProvider(apiKey string) *CohereProvider {
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}
	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(httpClient),
	)
	return &CohereProvider{client: client}
}

// Analyze sends the classification prompt and normalizes the model's reply.
// API failures yield common.ErrUpstream.
func (p *CohereProvider) Analyze(ctx context.Context, text string) (string, error) {
	model := cohereModel
	temperature := 0.0

	resp, err := p.client.Chat(ctx, &cohere.ChatRequest{
		Message:     fmt.Sprintf(coherePrompt, text),
		Model:       &model,
		Temperature: &temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: cohere chat: %v", common.ErrUpstream, err)
	}
	if resp == nil {
		return "", fmt.Errorf("%w: cohere chat returned empty response", common.ErrUpstream)
	}

	return normalizeLabel(resp.Text), nil
}
