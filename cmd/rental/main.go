// @title           Video Rental API
// @version         1.0
// @description     Video rental management service: customers, videos, rentals and inventory reports.
// @BasePath        /api/v1
// @schemes         http
package main

import (
	stdLog "log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	_ "github.com/infosoft-ph/video-rental-service/docs"
	"github.com/infosoft-ph/video-rental-service/internal/app"
	"github.com/infosoft-ph/video-rental-service/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Print("load envs from .env: ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.InfoLevel),
		config.WithWriteTimeout(time.Minute),
	)

	if err := app.Run(cfg); err != nil {
		stdLog.Fatal("app run ", err)
	}
}
