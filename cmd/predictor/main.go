package main

import (
	"log"

	"github.com/jengzang/tourist-safety-go/internal/api"
	"github.com/jengzang/tourist-safety-go/internal/config"
	"github.com/jengzang/tourist-safety-go/internal/handler"
	"github.com/jengzang/tourist-safety-go/internal/scoring"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 加载缩放参数与分类模型客户端；失败时服务照常启动，
	// 打分请求会返回模型不可用
	scaler, err := scoring.LoadScaler(cfg.ScalerPath)
	if err != nil {
		log.Printf("Error loading scaler: %v", err)
		scaler = nil
	}

	var classifier scoring.Classifier
	if cfg.ModelEndpoint != "" {
		classifier = scoring.NewHTTPClassifier(cfg.ModelEndpoint)
	} else {
		log.Printf("MODEL_ENDPOINT not set; predictions will report model unavailable")
	}

	if scaler != nil && classifier != nil {
		log.Printf("Model and scaler loaded successfully")
	}

	scorer := scoring.NewService(scaler, classifier, cfg.ScoreTimeout)

	// 初始化路由
	router := api.SetupPredictorRouter(handler.NewPredictHandler(scorer))

	// 启动服务器
	log.Printf("Prediction server starting on port %s", cfg.PredictPort)
	if err := router.Run(cfg.PredictPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
