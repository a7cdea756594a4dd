package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"pewpew/client"
	"pewpew/logger"
	"pewpew/server"
	"pewpew/utils"

	"github.com/getsentry/sentry-go"
	"github.com/hajimehoshi/ebiten/v2"
)

func setup(configPath string) (*utils.Config, error) {
	cfg, err := utils.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if err := logger.Init(logger.Options{File: cfg.Log.File, Level: cfg.Log.Level}); err != nil {
		return nil, err
	}
	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
			return nil, fmt.Errorf("sentry: %w", err)
		}
	}
	return cfg, nil
}

func main() {
	configPath := flag.String("config", "config.toml", "path to the TOML config")
	flag.Parse()

	cfg, err := setup(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	defer sentry.Flush(2 * time.Second)
	defer sentry.Recover()

	if flag.Arg(0) == "server" {
		if err := server.Run(cfg); err != nil {
			logger.Log.Fatal(err)
		}
		return
	}

	resolution := cfg.UI.Resolution
	logger.Log.Debugf("%+v", resolution)
	ebiten.SetWindowSize(resolution.X, resolution.Y)
	ebiten.SetWindowTitle(cfg.UI.Title)

	game := client.NewGame(cfg, logger.Log)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, client.ErrQuit) {
		logger.Log.Fatal(err)
	}
}
