package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"newssense/internal/common"
)

// labelMapping translates the classifier's positional labels.
var labelMapping = map[string]string{
	"LABEL_0": LabelNegative,
	"LABEL_1": LabelNeutral,
	"LABEL_2": LabelPositive,
}

// HuggingFaceClient calls a hosted inference endpoint for a sentiment
// classification model that scores each label per input.
type HuggingFaceClient struct {
	apiURL string
	apiKey string
	http   *http.Client
}

// NewHuggingFaceClient constructs a client for the given model endpoint.
func NewHuggingFaceClient(apiURL, apiKey string) *HuggingFaceClient {
	return &HuggingFaceClient{
		apiURL: apiURL,
		apiKey: apiKey,
		http:   &http.Client{Timeout: 15 * time.Second},
	}
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Analyze posts {"inputs": text} and returns the highest-scoring label,
// mapped through labelMapping. Model labels outside the mapping normalize to
// neutral; transport and shape failures yield common.ErrUpstream.
func (c *HuggingFaceClient) Analyze(ctx context.Context, text string) (string, error) {
	payload, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: provider status %d", common.ErrUpstream, resp.StatusCode)
	}

	// The inference API wraps per-label scores in an outer array, one inner
	// array per input.
	var result [][]labelScore
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: decode: %v", common.ErrUpstream, err)
	}
	if len(result) == 0 || len(result[0]) == 0 {
		return "", fmt.Errorf("%w: empty classification result", common.ErrUpstream)
	}

	best := result[0][0]
	for _, item := range result[0][1:] {
		if item.Score > best.Score {
			best = item
		}
	}

	if mapped, ok := labelMapping[best.Label]; ok {
		return mapped, nil
	}
	return normalizeLabel(best.Label), nil
}
