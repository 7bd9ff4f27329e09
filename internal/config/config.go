package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config 应用配置
type Config struct {
	PredictPort    string        // 预测服务端口
	MockPort       string        // 模拟追踪服务端口
	DBPath         string        // 模拟路径数据库
	ScalerPath     string        // 特征缩放参数文件
	ModelEndpoint  string        // 外部分类模型地址
	ScoreTimeout   time.Duration // 单次打分超时
	SimulationSeed int64         // 路径生成种子
}

// Load 加载配置（.env 可选）
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		PredictPort:    getEnv("PREDICT_PORT", ":5000"),
		MockPort:       getEnv("MOCK_PORT", ":5001"),
		DBPath:         getEnv("DB_PATH", "./data/simulation_paths.db"),
		ScalerPath:     getEnv("SCALER_PATH", "./data/scaler_params.json"),
		ModelEndpoint:  getEnv("MODEL_ENDPOINT", ""),
		ScoreTimeout:   getDuration("SCORE_TIMEOUT", 5*time.Second),
		SimulationSeed: getInt64("SIMULATION_SEED", 42),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
