package main

import (
	"log"

	"github.com/jengzang/tourist-safety-go/internal/api"
	"github.com/jengzang/tourist-safety-go/internal/config"
	"github.com/jengzang/tourist-safety-go/internal/database"
	"github.com/jengzang/tourist-safety-go/internal/handler"
	"github.com/jengzang/tourist-safety-go/internal/repository"
	"github.com/jengzang/tourist-safety-go/internal/service"
	"github.com/jengzang/tourist-safety-go/internal/simulation"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化数据库与路径数据
	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	paths := repository.NewPathRepository(db)
	if err := paths.InitSchema(); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}
	if err := simulation.Seed(paths, cfg.SimulationSeed); err != nil {
		log.Fatal("Failed to seed simulation paths:", err)
	}

	// 实时追踪状态
	live := service.NewLiveService()

	// 初始化路由
	router := api.SetupMockRouter(handler.NewLiveHandler(live, paths))

	// 启动服务器
	log.Printf("Mock tracking server starting on port %s", cfg.MockPort)
	if err := router.Run(cfg.MockPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
