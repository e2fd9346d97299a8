package main

import (
	"venuequote/config"
	"venuequote/di"
	"venuequote/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
