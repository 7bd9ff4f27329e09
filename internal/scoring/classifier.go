package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Classifier is the opaque trained model: it takes a scaled feature vector
// and returns a class label (0=normal, 1=anomaly) plus a probability
// distribution over {normal, anomaly}.
type Classifier interface {
	Predict(ctx context.Context, features []float64) (label int, probabilities [2]float64, err error)
}

// HTTPClassifier calls a model server over REST.
type HTTPClassifier struct {
	endpoint string
	client   *http.Client
}

// NewHTTPClassifier creates a classifier client for the given endpoint.
func NewHTTPClassifier(endpoint string) *HTTPClassifier {
	return &HTTPClassifier{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type classifyRequest struct {
	Features []float64 `json:"features"`
}

type classifyResponse struct {
	Label         int       `json:"label"`
	Probabilities []float64 `json:"probabilities"`
}

// Predict sends the scaled features to the model server and decodes its verdict.
func (c *HTTPClassifier) Predict(ctx context.Context, features []float64) (int, [2]float64, error) {
	body, err := json.Marshal(classifyRequest{Features: features})
	if err != nil {
		return 0, [2]float64{}, fmt.Errorf("failed to marshal classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return 0, [2]float64{}, fmt.Errorf("failed to create classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, [2]float64{}, fmt.Errorf("model server request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, [2]float64{}, fmt.Errorf("model server returned status: %d", resp.StatusCode)
	}

	var out classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, [2]float64{}, fmt.Errorf("failed to decode model response: %w", err)
	}
	if len(out.Probabilities) != 2 {
		return 0, [2]float64{}, fmt.Errorf("model returned %d probabilities, expected 2", len(out.Probabilities))
	}

	return out.Label, [2]float64{out.Probabilities[0], out.Probabilities[1]}, nil
}
