package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/berezovskyivalerii/refdatasvc/internal/app"
	"github.com/berezovskyivalerii/refdatasvc/internal/config"
	"github.com/berezovskyivalerii/refdatasvc/internal/infra/logx"
)

// One-shot mode: fetch reference data from all exchanges, upsert it into
// the local store and exit.
func main() {
	log := logx.New()
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		log.Error("config", "err", err)
		os.Exit(1)
	}

	orc, db, err := app.BuildSync(cfg, log)
	if err != nil {
		log.Error("wire", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	sum, err := orc.Run(context.Background())
	if err != nil {
		log.Error("sync failed", "err", err)
		os.Exit(1)
	}
	log.Info("data saved",
		"fetched", sum.Fetched, "added", sum.Added, "updated", sum.Updated)
}
