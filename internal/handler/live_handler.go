package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/tourist-safety-go/internal/models"
	"github.com/jengzang/tourist-safety-go/internal/repository"
	"github.com/jengzang/tourist-safety-go/internal/service"
	"github.com/jengzang/tourist-safety-go/pkg/response"
)

// LiveHandler handles HTTP requests for the mock live-tracking service
type LiveHandler struct {
	live  *service.LiveService
	paths *repository.PathRepository
}

// NewLiveHandler creates a new live-tracking handler
func NewLiveHandler(live *service.LiveService, paths *repository.PathRepository) *LiveHandler {
	return &LiveHandler{
		live:  live,
		paths: paths,
	}
}

// Home handles GET /
func (h *LiveHandler) Home(c *gin.Context) {
	c.String(200, "Mock API Server is Running (Multi-Tourist)")
}

// ResetSimulation handles GET /reset_simulation
func (h *LiveHandler) ResetSimulation(c *gin.Context) {
	h.live.Reset()
	response.Status(c, "Simulation reset")
}

// GetTouristIDs handles GET /get_tourist_ids
func (h *LiveHandler) GetTouristIDs(c *gin.Context) {
	normal, anomaly, err := h.paths.ListTouristIDs()
	if err != nil {
		response.InternalError(c, "Dataset not loaded")
		return
	}

	c.JSON(200, gin.H{"normal": normal, "anomaly": anomaly})
}

// GetPath handles GET /get_path?id=&type= — returns a tourist's full
// recorded path and registers the tourist at the path head.
func (h *LiveHandler) GetPath(c *gin.Context) {
	touristID := c.Query("id")
	reqType := c.Query("type")

	path, err := h.paths.GetPath(touristID)
	if err != nil {
		if errors.Is(err, repository.ErrPathNotFound) {
			response.NotFound(c, "Tourist ID not found")
		} else {
			response.InternalError(c, "Internal server error")
		}
		return
	}

	if reqType != "" && models.PathType(reqType) != path.PathType {
		response.BadRequest(c, "Path type mismatch")
		return
	}

	first := path.Points[0]
	h.live.AssignPath(touristID, first.Lat, first.Lon, path.PathType)

	c.JSON(200, path)
}

// ExportPath handles GET /export_path?id= — one recorded path as GeoJSON
func (h *LiveHandler) ExportPath(c *gin.Context) {
	path, err := h.paths.GetPath(c.Query("id"))
	if err != nil {
		if errors.Is(err, repository.ErrPathNotFound) {
			response.NotFound(c, "Tourist ID not found")
		} else {
			response.InternalError(c, "Internal server error")
		}
		return
	}

	c.JSON(200, path.GeoJSON())
}

// UpdateLocationRequest is the body of POST /update_location
type UpdateLocationRequest struct {
	TouristID string  `json:"tourist_id"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Status    string  `json:"status"`
}

// UpdateLocation handles POST /update_location
func (h *LiveHandler) UpdateLocation(c *gin.Context) {
	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	h.live.UpdateLocation(req.TouristID, req.Lat, req.Lon, models.Status(req.Status))
	response.Status(c, "updated")
}

// MockPredictRequest is the body of the mock POST /predict: a trail chunk
// plus the declared path type.
type MockPredictRequest struct {
	TouristID string             `json:"tourist_id"`
	PathType  string             `json:"path_type"`
	Path      []models.PathCoord `json:"path"`
}

// Predict handles the mock POST /predict: applies the status transition
// instead of calling a real model.
func (h *LiveHandler) Predict(c *gin.Context) {
	var req MockPredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	h.live.ApplyPrediction(req.TouristID, models.PathType(req.PathType), len(req.Path))
	response.Status(c, "prediction processed")
}

// SOSRequest is the body of POST /sos
type SOSRequest struct {
	TouristID string  `json:"tourist_id"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
}

// SOS handles POST /sos
func (h *LiveHandler) SOS(c *gin.Context) {
	var req SOSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	h.live.SOS(req.TouristID, req.Lat, req.Lon)
	response.Status(c, "SOS Signal Received")
}

// ResolveSOSRequest is the body of POST /resolve_sos
type ResolveSOSRequest struct {
	TouristID string `json:"tourist_id"`
}

// ResolveSOS handles POST /resolve_sos
func (h *LiveHandler) ResolveSOS(c *gin.Context) {
	var req ResolveSOSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	h.live.ResolveSOS(req.TouristID)
	response.Status(c, "SOS Resolved")
}

// GetLiveStatuses handles GET /get_live_statuses
func (h *LiveHandler) GetLiveStatuses(c *gin.Context) {
	c.JSON(200, h.live.Statuses())
}

// GetLogs handles GET /get_logs/:tourist_id
func (h *LiveHandler) GetLogs(c *gin.Context) {
	c.JSON(200, h.live.Log(c.Param("tourist_id")))
}

// GetSafetyAlerts handles GET /get_safety_alerts
func (h *LiveHandler) GetSafetyAlerts(c *gin.Context) {
	c.JSON(200, h.live.Alerts())
}

// ClearSafetyAlerts handles POST /clear_safety_alerts
func (h *LiveHandler) ClearSafetyAlerts(c *gin.Context) {
	h.live.ClearAlerts()
	response.Status(c, "Alerts cleared")
}

// GetHeatmapData handles GET /get_heatmap_data
func (h *LiveHandler) GetHeatmapData(c *gin.Context) {
	c.JSON(200, h.live.Heatmap())
}
