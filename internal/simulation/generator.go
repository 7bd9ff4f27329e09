// Package simulation seeds the recorded-path store with plausible tourist
// movement around the pilot deployment area, so the mock tracker can serve
// replays without a captured dataset on disk.
package simulation

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/jengzang/tourist-safety-go/internal/models"
	"github.com/jengzang/tourist-safety-go/internal/repository"
	"github.com/jengzang/tourist-safety-go/internal/spatial"
)

// Pilot area around Gangtok, Sikkim, matching the recorded trails the
// classifier was trained on.
const (
	BaseLat = 27.33
	BaseLon = 88.61
)

// DefaultPathPoints is the number of samples per generated path.
const DefaultPathPoints = 120

// Generator produces synthetic tourist paths with a seeded source, so the
// same seed always yields the same dataset.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator with the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// loiterRadiusKm bounds how far a normal path wanders from its anchor
// before the heading turns back.
const loiterRadiusKm = 1.2

// NormalPath generates a wandering walking-pace path: short steps with a
// slowly drifting heading, anchored so the tourist loiters in the area
// instead of drifting away.
func (g *Generator) NormalPath(touristID string, numPoints int) models.RecordedPath {
	lat := BaseLat + (g.rng.Float64()-0.5)*0.01
	lon := BaseLon + (g.rng.Float64()-0.5)*0.01
	heading := g.rng.Float64() * 360
	anchorLat, anchorLon := spatial.Midpoint(lat, lon, BaseLat, BaseLon)

	points := make([]models.PathCoord, 0, numPoints)
	points = append(points, models.PathCoord{Lat: lat, Lon: lon})

	for i := 1; i < numPoints; i++ {
		heading += (g.rng.Float64() - 0.5) * 40
		if spatial.Haversine(lat, lon, anchorLat, anchorLon) > loiterRadiusKm {
			heading = spatial.Bearing(lat, lon, anchorLat, anchorLon) + (g.rng.Float64()-0.5)*30
		}
		step := 25 + g.rng.Float64()*35 // meters per sample, walking pace
		lat, lon = spatial.DestinationPoint(lat, lon, heading, step)
		points = append(points, models.PathCoord{Lat: lat, Lon: lon})
	}

	return models.RecordedPath{
		TouristID: touristID,
		PathType:  models.PathTypeNormal,
		Points:    points,
	}
}

// AnomalyPath generates a path that starts at walking pace and then
// diverges in a fast straight run away from the start area, the movement
// signature the classifier flags.
func (g *Generator) AnomalyPath(touristID string, numPoints int) models.RecordedPath {
	normalLeg := numPoints / 3
	path := g.NormalPath(touristID, normalLeg)
	path.PathType = models.PathTypeAnomaly

	last := path.Points[len(path.Points)-1]
	lat, lon := last.Lat, last.Lon
	escapeHeading := spatial.Bearing(BaseLat, BaseLon, lat, lon)

	for i := normalLeg; i < numPoints; i++ {
		escapeHeading += (g.rng.Float64() - 0.5) * 10
		step := 300 + g.rng.Float64()*200 // meters per sample, vehicle pace
		lat, lon = spatial.DestinationPoint(lat, lon, escapeHeading, step)
		path.Points = append(path.Points, models.PathCoord{Lat: lat, Lon: lon})
	}

	return path
}

// Seed populates the path store with a fixed roster of normal and anomaly
// tourists if it is empty. Re-running against a seeded store is a no-op.
func Seed(repo *repository.PathRepository, seed int64) error {
	count, err := repo.Count()
	if err != nil {
		return fmt.Errorf("failed to check path store: %w", err)
	}
	if count > 0 {
		return nil
	}

	g := NewGenerator(seed)

	var paths []models.RecordedPath
	for i := 1; i <= 5; i++ {
		paths = append(paths, g.NormalPath(fmt.Sprintf("T%03d", i), DefaultPathPoints))
	}
	for i := 1; i <= 3; i++ {
		paths = append(paths, g.AnomalyPath(fmt.Sprintf("A%03d", i), DefaultPathPoints))
	}

	for _, p := range paths {
		if err := repo.InsertPath(p); err != nil {
			return fmt.Errorf("failed to seed path for %s: %w", p.TouristID, err)
		}
	}

	log.Printf("[simulation] Seeded %d paths into the store", len(paths))
	return nil
}
