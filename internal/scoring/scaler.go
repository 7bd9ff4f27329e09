package scoring

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jengzang/tourist-safety-go/internal/models"
)

// StandardScaler applies the feature scaling the classifier was trained
// with: x' = (x - mean) / scale per column. Parameters are exported from
// the training run as a JSON file and loaded once at startup.
type StandardScaler struct {
	Columns []string  `json:"columns"`
	Means   []float64 `json:"means"`
	Scales  []float64 `json:"scales"`
}

// LoadScaler reads scaler parameters from a JSON file and validates that
// the column order matches the feature pipeline's output.
func LoadScaler(path string) (*StandardScaler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scaler file: %w", err)
	}

	var scaler StandardScaler
	if err := json.Unmarshal(data, &scaler); err != nil {
		return nil, fmt.Errorf("failed to parse scaler file: %w", err)
	}

	if len(scaler.Means) != len(scaler.Scales) {
		return nil, fmt.Errorf("scaler has %d means but %d scales", len(scaler.Means), len(scaler.Scales))
	}
	if len(scaler.Columns) != len(scaler.Means) {
		return nil, fmt.Errorf("scaler has %d columns but %d means", len(scaler.Columns), len(scaler.Means))
	}
	if len(scaler.Columns) != len(models.FeatureColumns) {
		return nil, fmt.Errorf("scaler has %d columns, expected %d", len(scaler.Columns), len(models.FeatureColumns))
	}
	for i, col := range scaler.Columns {
		if col != models.FeatureColumns[i] {
			return nil, fmt.Errorf("scaler column %d is %q, expected %q", i, col, models.FeatureColumns[i])
		}
	}

	return &scaler, nil
}

// Transform scales a raw feature vector into the classifier's input space.
func (s *StandardScaler) Transform(features []float64) ([]float64, error) {
	if len(features) != len(s.Means) {
		return nil, fmt.Errorf("expected %d features, got %d", len(s.Means), len(features))
	}

	scaled := make([]float64, len(features))
	for i, v := range features {
		scale := s.Scales[i]
		if scale == 0 {
			// Zero-variance column; scikit exports scale=1 here but
			// guard against hand-edited params.
			scale = 1
		}
		scaled[i] = (v - s.Means[i]) / scale
	}
	return scaled, nil
}
