package service

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jengzang/tourist-safety-go/internal/models"
)

// AnomalyChunkThreshold is the minimum chunk length (exclusive) for an
// anomaly-typed prediction event to flip a tourist's status to anomaly.
const AnomalyChunkThreshold = 30

// Alert messages shown to the tourist's companion app.
const (
	anomalyAlertMessage = "You are on a wrong anomalous path. Return to the correct path immediately."
	sosAlertMessage     = "You raised an SOS. Help is on the way! Stay where you are."
)

// LiveService owns the in-memory live-tracking state: the tourist
// registry, per-tourist movement logs, the global safety alert feed and
// the anomaly-alerted marker set. All mutations are serialized behind one
// lock; the state lives for the process lifetime and is only cleared by
// Reset.
//
// SOS is sticky: once set, routine location updates and prediction events
// cannot overwrite it, only ResolveSOS can. A tourist alerts at most once
// per anomaly; the marker survives a return to normal and is only cleared
// by Reset.
type LiveService struct {
	mu             sync.RWMutex
	tourists       map[string]models.LiveTouristState
	logs           map[string][]models.LogEntry
	alerts         []models.SafetyAlert
	anomalyAlerted map[string]bool
}

// NewLiveService creates an empty live-tracking service.
func NewLiveService() *LiveService {
	s := &LiveService{}
	s.resetLocked()
	return s
}

// resetLocked reinitializes all state. Callers must hold the write lock
// (or be the constructor).
func (s *LiveService) resetLocked() {
	s.tourists = make(map[string]models.LiveTouristState)
	s.logs = make(map[string][]models.LogEntry)
	s.alerts = []models.SafetyAlert{}
	s.anomalyAlerted = make(map[string]bool)
}

// Reset atomically clears all tourists, logs, alerts and anomaly markers.
func (s *LiveService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// AssignPath registers (or re-registers) a tourist at the head of a
// recorded path with status normal, and writes the initial log entry.
func (s *LiveService) AssignPath(touristID string, lat, lon float64, pathType models.PathType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tourists[touristID] = models.LiveTouristState{
		Lat:        lat,
		Lon:        lon,
		Status:     models.StatusNormal,
		PathType:   pathType,
		LastUpdate: time.Now(),
	}
	s.appendLogLocked(touristID, lat, lon, models.StatusNormal)
}

// UpdateLocation moves a tracked tourist. Unknown tourists are silently
// ignored. The supplied status is applied unless the current status is
// SOS, which only ResolveSOS clears; the log entry records the status that
// actually resulted.
func (s *LiveService) UpdateLocation(touristID string, lat, lon float64, status models.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.tourists[touristID]
	if !ok {
		return
	}
	if status == "" {
		status = models.StatusNormal
	}

	state.Lat = lat
	state.Lon = lon
	if state.Status != models.StatusSOS {
		state.Status = status
	}
	state.LastUpdate = time.Now()
	s.tourists[touristID] = state

	s.appendLogLocked(touristID, lat, lon, state.Status)
}

// ApplyPrediction applies a prediction event carrying a trail chunk and
// its declared path type. Tourists in SOS state ignore the event entirely.
// An anomaly-typed chunk longer than AnomalyChunkThreshold flips the
// status to anomaly and emits one alert per tourist; anything else sets
// the status back to normal.
func (s *LiveService) ApplyPrediction(touristID string, pathType models.PathType, chunkLen int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.tourists[touristID]
	if !ok || state.Status == models.StatusSOS {
		return
	}

	if pathType == models.PathTypeAnomaly && chunkLen > AnomalyChunkThreshold {
		state.Status = models.StatusAnomaly
		if !s.anomalyAlerted[touristID] {
			s.appendAlertLocked(touristID, models.AlertTypeAnomaly, anomalyAlertMessage)
			s.anomalyAlerted[touristID] = true
		}
	} else {
		state.Status = models.StatusNormal
	}

	state.LastUpdate = time.Now()
	s.tourists[touristID] = state
	s.appendLogLocked(touristID, state.Lat, state.Lon, state.Status)
}

// SOS unconditionally puts a tourist into SOS state, creating the entry if
// the tourist is unknown, and appends a fresh alert on every call.
func (s *LiveService) SOS(touristID string, lat, lon float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log.Printf("[LiveService] SOS received from tourist %s at %.5f, %.5f", touristID, lat, lon)

	state, ok := s.tourists[touristID]
	if !ok {
		state = models.LiveTouristState{Lat: lat, Lon: lon}
	} else if lat != 0 && lon != 0 {
		// Position moves only when both coordinates are supplied.
		state.Lat = lat
		state.Lon = lon
	}
	state.Status = models.StatusSOS
	state.LastUpdate = time.Now()
	s.tourists[touristID] = state

	s.appendLogLocked(touristID, lat, lon, models.StatusSOS)
	s.appendAlertLocked(touristID, models.AlertTypeSOS, sosAlertMessage)
}

// ResolveSOS returns a tracked tourist from SOS to normal. The
// anomaly-alerted marker is deliberately left in place.
func (s *LiveService) ResolveSOS(touristID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.tourists[touristID]
	if !ok {
		return
	}

	log.Printf("[LiveService] Resolving SOS for tourist %s", touristID)

	state.Status = models.StatusNormal
	state.LastUpdate = time.Now()
	s.tourists[touristID] = state

	s.appendLogLocked(touristID, state.Lat, state.Lon, models.StatusNormal)
}

// Statuses returns a snapshot of every tracked tourist's current state.
func (s *LiveService) Statuses() map[string]models.LiveTouristState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string]models.LiveTouristState, len(s.tourists))
	for id, state := range s.tourists {
		snapshot[id] = state
	}
	return snapshot
}

// Log returns a copy of one tourist's movement log, oldest first. Unknown
// tourists get an empty list.
func (s *LiveService) Log(touristID string) []models.LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.logs[touristID]
	out := make([]models.LogEntry, len(entries))
	copy(out, entries)
	return out
}

// Alerts returns a copy of the global safety alert feed, oldest first.
func (s *LiveService) Alerts() []models.SafetyAlert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.SafetyAlert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

// ClearAlerts empties the alert feed. Tourist state, logs and the
// anomaly-alerted markers are untouched.
func (s *LiveService) ClearAlerts() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts = []models.SafetyAlert{}
}

// Heatmap flattens every log entry into an intensity-weighted point list:
// arbitrary order across tourists, chronological within one tourist.
func (s *LiveService) Heatmap() []models.HeatmapPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	points := []models.HeatmapPoint{}
	for _, entries := range s.logs {
		for _, entry := range entries {
			points = append(points, models.NewHeatmapPoint(entry.Lat, entry.Lon, entry.Status))
		}
	}
	return points
}

// appendLogLocked records one movement log line for a tourist and trims
// the log to its cap, dropping the oldest entries first. Callers must hold
// the write lock.
func (s *LiveService) appendLogLocked(touristID string, lat, lon float64, status models.Status) {
	entries := append(s.logs[touristID], models.LogEntry{
		TouristID: touristID,
		Lat:       lat,
		Lon:       lon,
		Timestamp: time.Now(),
		Status:    status,
	})
	if len(entries) > models.MaxLogEntries {
		entries = entries[len(entries)-models.MaxLogEntries:]
	}
	s.logs[touristID] = entries
}

// appendAlertLocked pushes one alert onto the global feed. Callers must
// hold the write lock.
func (s *LiveService) appendAlertLocked(touristID string, alertType models.AlertType, message string) {
	s.alerts = append(s.alerts, models.SafetyAlert{
		ID:        uuid.NewString(),
		Message:   message,
		Timestamp: time.Now(),
		Type:      alertType,
		TouristID: touristID,
	})
}
