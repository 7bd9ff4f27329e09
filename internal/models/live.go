package models

import "time"

// Status is a tourist's live tracking status
type Status string

const (
	StatusNormal  Status = "normal"
	StatusAnomaly Status = "anomaly"
	StatusSOS     Status = "sos"
)

// PathType classifies a recorded simulation path
type PathType string

const (
	PathTypeNormal  PathType = "normal"
	PathTypeAnomaly PathType = "anomaly"
)

// LiveTouristState is the current tracked state of one tourist. SOS status
// is sticky: routine updates cannot overwrite it, only an explicit resolve.
type LiveTouristState struct {
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
	Status     Status    `json:"status"`
	PathType   PathType  `json:"path_type,omitempty"`
	LastUpdate time.Time `json:"timestamp"`
}

// MaxLogEntries caps each tourist's movement log; oldest entries are
// evicted first.
const MaxLogEntries = 1000

// LogEntry is one recorded movement log line for a tourist
type LogEntry struct {
	TouristID string    `json:"tourist_id"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Timestamp time.Time `json:"timestamp"`
	Status    Status    `json:"status"`
}

// AlertType classifies a safety alert
type AlertType string

const (
	AlertTypeAnomaly AlertType = "anomaly"
	AlertTypeSOS     AlertType = "sos"
)

// SafetyAlert is one entry in the global safety alert feed
type SafetyAlert struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Type      AlertType `json:"type"`
	TouristID string    `json:"tourist_id"`
}
