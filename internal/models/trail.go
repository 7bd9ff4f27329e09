package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Timestamp wraps time.Time to accept the timestamp formats clients
// actually send: RFC3339 or "2006-01-02 15:04:05".
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// UnmarshalJSON parses a timestamp from any of the supported layouts.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return errors.New("timestamp is empty")
	}

	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}

	return fmt.Errorf("unrecognized timestamp format: %q", s)
}

// MarshalJSON formats the timestamp as RFC3339.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

// TrailPoint is a single GPS sample from a tourist's trail
type TrailPoint struct {
	TouristID string    `json:"tourist_id"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Timestamp Timestamp `json:"timestamp"`
}

// Valid returns an error if the trail point is out of range or incomplete
func (p TrailPoint) Valid() error {
	if p.TouristID == "" {
		return errors.New("tourist_id required")
	}
	if p.Lat < -90 || p.Lat > 90 {
		return errors.New("lat out of range")
	}
	if p.Lon < -180 || p.Lon > 180 {
		return errors.New("lon out of range")
	}
	if p.Timestamp.IsZero() {
		return errors.New("timestamp required")
	}
	return nil
}

// TrailSegment holds the derived metrics between two consecutive trail
// points of the same tourist. The first point of a trail contributes an
// all-zero segment.
type TrailSegment struct {
	TimeDeltaSeconds float64 `json:"time_delta_seconds"`
	DistanceKm       float64 `json:"distance_km"`
	SpeedKmh         float64 `json:"speed_kmh"`
}

// FeatureColumns is the aggregate feature order the scaler and classifier
// were trained with. Columns() must stay in sync with it.
var FeatureColumns = []string{
	"mean_speed",
	"std_speed",
	"max_speed",
	"total_distance",
	"total_duration_seconds",
	"num_points",
}

// FeatureVector is the fixed-size aggregate computed from one tourist's trail
type FeatureVector struct {
	MeanSpeed            float64 `json:"mean_speed"`
	StdSpeed             float64 `json:"std_speed"`
	MaxSpeed             float64 `json:"max_speed"`
	TotalDistanceKm      float64 `json:"total_distance"`
	TotalDurationSeconds float64 `json:"total_duration_seconds"`
	NumPoints            int     `json:"num_points"`
}

// Columns returns the vector values in FeatureColumns order.
func (v FeatureVector) Columns() []float64 {
	return []float64{
		v.MeanSpeed,
		v.StdSpeed,
		v.MaxSpeed,
		v.TotalDistanceKm,
		v.TotalDurationSeconds,
		float64(v.NumPoints),
	}
}

// Verdict is the classifier's decision for one tourist's trail
type Verdict struct {
	TouristID         string  `json:"tourist_id"`
	IsAnomaly         bool    `json:"is_anomaly"`
	ConfidenceNormal  float64 `json:"confidence_normal"`
	ConfidenceAnomaly float64 `json:"confidence_anomaly"`
}
