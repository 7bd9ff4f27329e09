package features

import (
	"math"
	"sort"

	"github.com/jengzang/tourist-safety-go/internal/models"
	"github.com/jengzang/tourist-safety-go/internal/spatial"
	"github.com/jengzang/tourist-safety-go/internal/stats"
)

// Compute derives one aggregate feature vector per tourist from a raw,
// possibly unordered trail. Points are grouped by tourist id and sorted by
// timestamp before the per-step deltas are taken; single-point trails
// yield all-zero movement statistics.
func Compute(points []models.TrailPoint) map[string]models.FeatureVector {
	grouped := make(map[string][]models.TrailPoint)
	for _, p := range points {
		grouped[p.TouristID] = append(grouped[p.TouristID], p)
	}

	result := make(map[string]models.FeatureVector, len(grouped))
	for touristID, trail := range grouped {
		result[touristID] = aggregate(Segments(trail))
	}
	return result
}

// Segments computes the derived metrics between consecutive points of one
// tourist's trail, one segment per point. The first point has no
// predecessor and contributes a zero segment. Input order does not matter;
// the trail is stable-sorted by timestamp first (ties keep input order).
func Segments(trail []models.TrailPoint) []models.TrailSegment {
	sorted := make([]models.TrailPoint, len(trail))
	copy(sorted, trail)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp.Time)
	})

	segments := make([]models.TrailSegment, len(sorted))
	for i := 1; i < len(sorted); i++ {
		prev, curr := sorted[i-1], sorted[i]

		timeDelta := curr.Timestamp.Sub(prev.Timestamp.Time).Seconds()
		distance := spatial.Haversine(prev.Lat, prev.Lon, curr.Lat, curr.Lon)

		// Duplicate timestamps give a zero delta; speed is defined as 0
		// there instead of dividing by zero.
		var speed float64
		if timeDelta > 0 {
			speed = distance / (timeDelta / 3600)
		}
		if math.IsNaN(speed) || math.IsInf(speed, 0) {
			speed = 0
		}

		segments[i] = models.TrailSegment{
			TimeDeltaSeconds: timeDelta,
			DistanceKm:       distance,
			SpeedKmh:         speed,
		}
	}
	return segments
}

// aggregate folds a tourist's segments into the fixed feature vector.
func aggregate(segments []models.TrailSegment) models.FeatureVector {
	speeds := make([]float64, len(segments))
	distances := make([]float64, len(segments))
	timeDeltas := make([]float64, len(segments))
	for i, seg := range segments {
		speeds[i] = seg.SpeedKmh
		distances[i] = seg.DistanceKm
		timeDeltas[i] = seg.TimeDeltaSeconds
	}

	return models.FeatureVector{
		MeanSpeed:            stats.Mean(speeds),
		StdSpeed:             stats.PopStdDev(speeds),
		MaxSpeed:             stats.Max(speeds),
		TotalDistanceKm:      stats.Sum(distances),
		TotalDurationSeconds: stats.Sum(timeDeltas),
		NumPoints:            len(segments),
	}
}
