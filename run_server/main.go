package main

import (
	"flag"
	"log"
	"time"

	"pewpew/logger"
	"pewpew/server"
	"pewpew/utils"

	"github.com/getsentry/sentry-go"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the TOML config")
	flag.Parse()

	cfg, err := utils.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := logger.Init(logger.Options{File: cfg.Log.File, Level: cfg.Log.Level}); err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			logger.Log.Fatal(err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	if err := server.Run(cfg); err != nil {
		logger.Log.Fatal(err)
	}
}
