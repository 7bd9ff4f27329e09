package models

// Heatmap intensity weights per tracking status
const (
	IntensityNormal  = 0.3
	IntensityAnomaly = 0.6
	IntensitySOS     = 1.0
)

// HeatmapPoint is a single [lat, lon, intensity] triple. It marshals to a
// JSON array, which is the shape heatmap layers consume directly.
type HeatmapPoint [3]float64

// NewHeatmapPoint builds a heatmap point from a log entry's position and status.
func NewHeatmapPoint(lat, lon float64, status Status) HeatmapPoint {
	return HeatmapPoint{lat, lon, IntensityForStatus(status)}
}

// IntensityForStatus maps a tracking status to its heatmap weight.
func IntensityForStatus(status Status) float64 {
	switch status {
	case StatusSOS:
		return IntensitySOS
	case StatusAnomaly:
		return IntensityAnomaly
	default:
		return IntensityNormal
	}
}
