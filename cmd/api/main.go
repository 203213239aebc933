package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/berezovskyivalerii/refdatasvc/internal/app"
	"github.com/berezovskyivalerii/refdatasvc/internal/config"
	"github.com/berezovskyivalerii/refdatasvc/internal/infra/logx"
	"github.com/berezovskyivalerii/refdatasvc/internal/infra/scheduler"
)

func main() {
	log := logx.New()
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("config", "err", err)
		os.Exit(1)
	}

	a, err := app.Build(cfg, log)
	if err != nil {
		log.Error("wire", "err", err)
		os.Exit(1)
	}
	defer a.DB.Close()

	if cfg.Sync.Auto {
		up := &scheduler.AutoUpdater{
			Sync:     a.Sync,
			Interval: cfg.Sync.Interval,
			Logger:   log,
		}
		up.Start(context.Background())
	}

	if err := a.Router.Run(":" + cfg.HTTP.Port); err != nil {
		log.Error("http server", "err", err)
		os.Exit(1)
	}
}
