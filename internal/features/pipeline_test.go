package features

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/tourist-safety-go/internal/models"
)

func point(touristID string, lat, lon float64, ts string) models.TrailPoint {
	parsed, err := time.Parse("2006-01-02 15:04:05", ts)
	if err != nil {
		panic(err)
	}
	return models.TrailPoint{
		TouristID: touristID,
		Lat:       lat,
		Lon:       lon,
		Timestamp: models.Timestamp{Time: parsed},
	}
}

func TestComputeSinglePointTrail(t *testing.T) {
	vectors := Compute([]models.TrailPoint{
		point("T001", 27.33, 88.61, "2025-08-30 10:00:00"),
	})

	require.Contains(t, vectors, "T001")
	v := vectors["T001"]
	assert.Zero(t, v.MeanSpeed)
	assert.Zero(t, v.StdSpeed)
	assert.Zero(t, v.MaxSpeed)
	assert.Zero(t, v.TotalDistanceKm)
	assert.Zero(t, v.TotalDurationSeconds)
	assert.Equal(t, 1, v.NumPoints)
}

func TestComputeTwoPointFixture(t *testing.T) {
	// Regression fixture: 27.33,88.61 -> 27.34,88.62 in 5 minutes.
	vectors := Compute([]models.TrailPoint{
		point("T001", 27.33, 88.61, "2025-08-30 10:00:00"),
		point("T001", 27.34, 88.62, "2025-08-30 10:05:00"),
	})

	v := vectors["T001"]
	assert.Equal(t, 2, v.NumPoints)
	assert.InDelta(t, 1.48733, v.TotalDistanceKm, 1e-5)
	assert.InDelta(t, 300, v.TotalDurationSeconds, 1e-9)
	// The first point contributes a zero speed, so the mean over both
	// points is half the segment speed.
	assert.InDelta(t, 17.84796, v.MaxSpeed, 1e-5)
	assert.InDelta(t, 8.92398, v.MeanSpeed, 1e-5)
	assert.InDelta(t, 8.92398, v.StdSpeed, 1e-5)
}

func TestComputeSortsByTimestamp(t *testing.T) {
	ordered := Compute([]models.TrailPoint{
		point("T001", 27.33, 88.61, "2025-08-30 10:00:00"),
		point("T001", 27.34, 88.62, "2025-08-30 10:05:00"),
	})
	shuffled := Compute([]models.TrailPoint{
		point("T001", 27.34, 88.62, "2025-08-30 10:05:00"),
		point("T001", 27.33, 88.61, "2025-08-30 10:00:00"),
	})

	assert.Equal(t, ordered["T001"], shuffled["T001"])
}

func TestComputeDuplicateTimestampsGiveZeroSpeed(t *testing.T) {
	vectors := Compute([]models.TrailPoint{
		point("T001", 27.33, 88.61, "2025-08-30 10:00:00"),
		point("T001", 27.34, 88.62, "2025-08-30 10:00:00"),
	})

	v := vectors["T001"]
	// Distance is covered but the time delta is zero, so speed is
	// defined as 0 rather than infinite.
	assert.Zero(t, v.MaxSpeed)
	assert.Zero(t, v.MeanSpeed)
	assert.Greater(t, v.TotalDistanceKm, 0.0)
	assert.Zero(t, v.TotalDurationSeconds)
}

func TestComputeGroupsByTourist(t *testing.T) {
	vectors := Compute([]models.TrailPoint{
		point("T001", 27.33, 88.61, "2025-08-30 10:00:00"),
		point("T002", 27.35, 88.63, "2025-08-30 10:00:00"),
		point("T001", 27.34, 88.62, "2025-08-30 10:05:00"),
	})

	require.Len(t, vectors, 2)
	assert.Equal(t, 2, vectors["T001"].NumPoints)
	assert.Equal(t, 1, vectors["T002"].NumPoints)
	assert.Zero(t, vectors["T002"].TotalDistanceKm)
}

func TestSegmentsFirstPointIsZero(t *testing.T) {
	segments := Segments([]models.TrailPoint{
		point("T001", 27.33, 88.61, "2025-08-30 10:00:00"),
		point("T001", 27.34, 88.62, "2025-08-30 10:05:00"),
	})

	require.Len(t, segments, 2)
	assert.Zero(t, segments[0].TimeDeltaSeconds)
	assert.Zero(t, segments[0].DistanceKm)
	assert.Zero(t, segments[0].SpeedKmh)
	assert.InDelta(t, 300, segments[1].TimeDeltaSeconds, 1e-9)
	assert.InDelta(t, 17.84796, segments[1].SpeedKmh, 1e-5)
}

func TestComputeEmptyInput(t *testing.T) {
	assert.Empty(t, Compute(nil))
}
