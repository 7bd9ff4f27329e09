package models

// PathCoord is one coordinate of a recorded simulation path
type PathCoord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// RecordedPath is a stored simulation path for one tourist
type RecordedPath struct {
	TouristID string      `json:"tourist_id"`
	PathType  PathType    `json:"path_type"`
	Points    []PathCoord `json:"path"`
}

// GeoJSON returns the path as a GeoJSON FeatureCollection with a single
// styled LineString (coordinates are [lon, lat] per the GeoJSON spec).
func (p RecordedPath) GeoJSON() map[string]interface{} {
	coordinates := make([][2]float64, len(p.Points))
	for i, c := range p.Points {
		coordinates[i] = [2]float64{c.Lon, c.Lat}
	}

	return map[string]interface{}{
		"type": "FeatureCollection",
		"features": []map[string]interface{}{
			{
				"type": "Feature",
				"properties": map[string]interface{}{
					"tourist_id": p.TouristID,
					"path_type":  p.PathType,
					// Styling hints for viewers like geojson.io
					"stroke":           "#FF5733",
					"stroke-width":     2,
					"stroke-opacity":   1,
					"stroke-dasharray": "10, 5",
				},
				"geometry": map[string]interface{}{
					"type":        "LineString",
					"coordinates": coordinates,
				},
			},
		},
	}
}
