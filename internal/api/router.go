package api

import (
	"github.com/gin-gonic/gin"

	"github.com/jengzang/tourist-safety-go/internal/handler"
	"github.com/jengzang/tourist-safety-go/internal/middleware"
	"github.com/jengzang/tourist-safety-go/pkg/response"
)

// newEngine 公共引擎配置：日志、异常恢复、CORS、统一 404/500
func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		response.InternalError(c, "Internal server error")
	}))
	r.Use(middleware.CORS())

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Endpoint not found")
	})

	return r
}

// SetupPredictorRouter 预测服务路由
func SetupPredictorRouter(h *handler.PredictHandler) *gin.Engine {
	r := newEngine()

	r.GET("/", h.Home)
	r.POST("/predict", h.Predict)

	return r
}

// SetupMockRouter 模拟追踪服务路由
func SetupMockRouter(h *handler.LiveHandler) *gin.Engine {
	r := newEngine()

	r.GET("/", h.Home)
	r.GET("/reset_simulation", h.ResetSimulation)
	r.GET("/get_tourist_ids", h.GetTouristIDs)
	r.GET("/get_path", h.GetPath)
	r.GET("/export_path", h.ExportPath)
	r.POST("/update_location", h.UpdateLocation)
	r.POST("/predict", h.Predict)
	r.POST("/sos", h.SOS)
	r.POST("/resolve_sos", h.ResolveSOS)
	r.GET("/get_live_statuses", h.GetLiveStatuses)
	r.GET("/get_logs/:tourist_id", h.GetLogs)
	r.GET("/get_safety_alerts", h.GetSafetyAlerts)
	r.POST("/clear_safety_alerts", h.ClearSafetyAlerts)
	r.GET("/get_heatmap_data", h.GetHeatmapData)

	return r
}
