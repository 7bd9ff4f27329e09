package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampAcceptsCommonLayouts(t *testing.T) {
	cases := map[string]string{
		"space separated": `"2025-08-30 10:00:00"`,
		"rfc3339":         `"2025-08-30T10:00:00Z"`,
		"t separated":     `"2025-08-30T10:00:00"`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(raw), &ts))
			assert.Equal(t, 2025, ts.Year())
			assert.Equal(t, time.August, ts.Month())
			assert.Equal(t, 10, ts.Hour())
		})
	}
}

func TestTimestampRejectsGarbage(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`""`), &ts))
}

func TestTrailPointUnmarshal(t *testing.T) {
	raw := `{"tourist_id": "T001", "lat": 27.33, "lon": 88.61, "timestamp": "2025-08-30 10:00:00"}`

	var p TrailPoint
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	assert.Equal(t, "T001", p.TouristID)
	assert.NoError(t, p.Valid())
}

func TestTrailPointValid(t *testing.T) {
	now := Timestamp{Time: time.Now()}

	assert.NoError(t, TrailPoint{TouristID: "T001", Lat: 27.33, Lon: 88.61, Timestamp: now}.Valid())
	assert.Error(t, TrailPoint{Lat: 27.33, Lon: 88.61, Timestamp: now}.Valid())
	assert.Error(t, TrailPoint{TouristID: "T001", Lat: 99, Lon: 88.61, Timestamp: now}.Valid())
	assert.Error(t, TrailPoint{TouristID: "T001", Lat: 27.33, Lon: 190, Timestamp: now}.Valid())
	assert.Error(t, TrailPoint{TouristID: "T001", Lat: 27.33, Lon: 88.61}.Valid())
}

func TestFeatureVectorColumnsOrder(t *testing.T) {
	v := FeatureVector{
		MeanSpeed:            1,
		StdSpeed:             2,
		MaxSpeed:             3,
		TotalDistanceKm:      4,
		TotalDurationSeconds: 5,
		NumPoints:            6,
	}
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, v.Columns())
	assert.Len(t, FeatureColumns, len(v.Columns()))
}

func TestIntensityForStatus(t *testing.T) {
	assert.Equal(t, 0.3, IntensityForStatus(StatusNormal))
	assert.Equal(t, 0.6, IntensityForStatus(StatusAnomaly))
	assert.Equal(t, 1.0, IntensityForStatus(StatusSOS))
	assert.Equal(t, 0.3, IntensityForStatus(Status("unknown")))
}

func TestHeatmapPointMarshalsAsArray(t *testing.T) {
	data, err := json.Marshal(NewHeatmapPoint(27.33, 88.61, StatusSOS))
	require.NoError(t, err)
	assert.JSONEq(t, `[27.33, 88.61, 1.0]`, string(data))
}

func TestRecordedPathGeoJSON(t *testing.T) {
	path := RecordedPath{
		TouristID: "T001",
		PathType:  PathTypeNormal,
		Points:    []PathCoord{{Lat: 27.33, Lon: 88.61}, {Lat: 27.34, Lon: 88.62}},
	}

	data, err := json.Marshal(path.GeoJSON())
	require.NoError(t, err)

	var geo struct {
		Type     string `json:"type"`
		Features []struct {
			Properties map[string]interface{} `json:"properties"`
			Geometry   struct {
				Type        string       `json:"type"`
				Coordinates [][2]float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(data, &geo))

	assert.Equal(t, "FeatureCollection", geo.Type)
	require.Len(t, geo.Features, 1)
	assert.Equal(t, "LineString", geo.Features[0].Geometry.Type)
	// GeoJSON coordinates are [lon, lat].
	assert.Equal(t, [2]float64{88.61, 27.33}, geo.Features[0].Geometry.Coordinates[0])
	assert.Equal(t, "T001", geo.Features[0].Properties["tourist_id"])
}
