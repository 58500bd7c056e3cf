// @title SOLO 情境学习后端 API
// @version 1.0
// @description 基于 SOLO 分类与位置上下文的学习任务推荐后端。

// @host localhost:8080
// @BasePath /

package main

import (
	"flag"
	"log"

	"solo_edu_backend/internal/app"
	"solo_edu_backend/internal/config"
	"solo_edu_backend/pkg/logger"
)

func main() {
	configPath := flag.String("config", "configs", "配置文件目录")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
