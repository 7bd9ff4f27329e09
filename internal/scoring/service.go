package scoring

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jengzang/tourist-safety-go/internal/features"
	"github.com/jengzang/tourist-safety-go/internal/models"
)

// DefaultTimeout bounds a single classifier call.
const DefaultTimeout = 5 * time.Second

// Service turns a raw trail into an anomaly verdict: feature pipeline,
// scaler transform, classifier call, verdict mapping. Either dependency
// being nil marks the model unavailable; every request checks that before
// doing any work.
type Service struct {
	scaler     *StandardScaler
	classifier Classifier
	timeout    time.Duration
}

// NewService creates a scoring service. A nil scaler or classifier is
// allowed and makes the service report ErrModelUnavailable per request.
func NewService(scaler *StandardScaler, classifier Classifier, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{
		scaler:     scaler,
		classifier: classifier,
		timeout:    timeout,
	}
}

// Available reports whether both the scaler and classifier initialized.
func (s *Service) Available() bool {
	return s != nil && s.scaler != nil && s.classifier != nil
}

// ScoreTrail classifies a raw trail. The verdict is issued for the trail's
// first tourist id.
func (s *Service) ScoreTrail(ctx context.Context, points []models.TrailPoint) (models.Verdict, error) {
	if !s.Available() {
		return models.Verdict{}, ErrModelUnavailable
	}
	if len(points) == 0 {
		return models.Verdict{}, ErrInvalidInput
	}

	touristID := points[0].TouristID
	vector, ok := features.Compute(points)[touristID]
	if !ok {
		return models.Verdict{}, fmt.Errorf("no features computed for tourist %q", touristID)
	}

	return s.Score(ctx, touristID, vector)
}

// Score classifies one tourist's aggregate feature vector.
func (s *Service) Score(ctx context.Context, touristID string, vector models.FeatureVector) (models.Verdict, error) {
	if !s.Available() {
		return models.Verdict{}, ErrModelUnavailable
	}

	scaled, err := s.scaler.Transform(vector.Columns())
	if err != nil {
		return models.Verdict{}, fmt.Errorf("failed to scale features: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	label, probabilities, err := s.classifier.Predict(ctx, scaled)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return models.Verdict{}, fmt.Errorf("%w: %v", ErrScoringTimeout, err)
		}
		return models.Verdict{}, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	return models.Verdict{
		TouristID:         touristID,
		IsAnomaly:         label == 1,
		ConfidenceNormal:  round2(probabilities[0]),
		ConfidenceAnomaly: round2(probabilities[1]),
	}, nil
}

// round2 rounds confidences to 2 decimal places for display.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
