package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jengzang/tourist-safety-go/internal/database"
	"github.com/jengzang/tourist-safety-go/internal/models"
)

// ErrPathNotFound means no recorded path exists for the tourist id.
var ErrPathNotFound = errors.New("path not found")

// PathRepository handles database operations for recorded simulation paths
type PathRepository struct {
	db *sql.DB
}

// NewPathRepository creates a new path repository
func NewPathRepository(db *sql.DB) *PathRepository {
	return &PathRepository{db: db}
}

// InitSchema creates the simulation paths table if it does not exist
func (r *PathRepository) InitSchema() error {
	table := `
		CREATE TABLE IF NOT EXISTS simulation_paths (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			tourist_id TEXT NOT NULL,
			path_type TEXT NOT NULL,
			seq INTEGER NOT NULL,
			lat REAL NOT NULL,
			lon REAL NOT NULL
		)
	`
	if _, err := r.db.Exec(table); err != nil {
		return fmt.Errorf("failed to create simulation_paths table: %w", err)
	}

	index := `
		CREATE INDEX IF NOT EXISTS idx_simulation_paths_tourist
			ON simulation_paths (tourist_id, seq)
	`
	if _, err := r.db.Exec(index); err != nil {
		return fmt.Errorf("failed to create simulation_paths index: %w", err)
	}
	return nil
}

// Count returns the number of stored path points
func (r *PathRepository) Count() (int64, error) {
	var count int64
	err := r.db.QueryRow("SELECT COUNT(*) FROM simulation_paths").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count simulation paths: %w", err)
	}
	return count, nil
}

// InsertPath stores one tourist's recorded path in a single transaction
func (r *PathRepository) InsertPath(path models.RecordedPath) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO simulation_paths (tourist_id, path_type, seq, lat, lon)
			VALUES (?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare path insert: %w", err)
		}
		defer stmt.Close()

		for i, c := range path.Points {
			if _, err := stmt.Exec(path.TouristID, string(path.PathType), i, c.Lat, c.Lon); err != nil {
				return fmt.Errorf("failed to insert path point %d: %w", i, err)
			}
		}
		return nil
	})
}

// ListTouristIDs returns the distinct tourist ids grouped by path type
func (r *PathRepository) ListTouristIDs() (normal []string, anomaly []string, err error) {
	rows, err := r.db.Query(`
		SELECT DISTINCT tourist_id, path_type
		FROM simulation_paths
		ORDER BY tourist_id
	`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query tourist ids: %w", err)
	}
	defer rows.Close()

	normal = []string{}
	anomaly = []string{}
	for rows.Next() {
		var id, pathType string
		if err := rows.Scan(&id, &pathType); err != nil {
			return nil, nil, fmt.Errorf("failed to scan tourist id: %w", err)
		}
		switch models.PathType(pathType) {
		case models.PathTypeAnomaly:
			anomaly = append(anomaly, id)
		default:
			normal = append(normal, id)
		}
	}

	return normal, anomaly, rows.Err()
}

// GetPath returns one tourist's full recorded path in sequence order.
// Returns ErrPathNotFound for unknown tourist ids.
func (r *PathRepository) GetPath(touristID string) (models.RecordedPath, error) {
	rows, err := r.db.Query(`
		SELECT path_type, lat, lon
		FROM simulation_paths
		WHERE tourist_id = ?
		ORDER BY seq
	`, touristID)
	if err != nil {
		return models.RecordedPath{}, fmt.Errorf("failed to query path: %w", err)
	}
	defer rows.Close()

	path := models.RecordedPath{TouristID: touristID}
	for rows.Next() {
		var pathType string
		var coord models.PathCoord
		if err := rows.Scan(&pathType, &coord.Lat, &coord.Lon); err != nil {
			return models.RecordedPath{}, fmt.Errorf("failed to scan path point: %w", err)
		}
		path.PathType = models.PathType(pathType)
		path.Points = append(path.Points, coord)
	}
	if err := rows.Err(); err != nil {
		return models.RecordedPath{}, err
	}

	if len(path.Points) == 0 {
		return models.RecordedPath{}, ErrPathNotFound
	}
	return path, nil
}
