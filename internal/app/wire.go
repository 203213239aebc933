package app

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	httpctrl "github.com/berezovskyivalerii/refdatasvc/internal/adapter/controller/http"
	"github.com/berezovskyivalerii/refdatasvc/internal/adapter/gateway/dbping"
	"github.com/berezovskyivalerii/refdatasvc/internal/adapter/gateway/exchange/binance"
	"github.com/berezovskyivalerii/refdatasvc/internal/adapter/gateway/exchange/okx"
	pgrepo "github.com/berezovskyivalerii/refdatasvc/internal/adapter/gateway/postgres"
	sqliterepo "github.com/berezovskyivalerii/refdatasvc/internal/adapter/gateway/sqlite"
	"github.com/berezovskyivalerii/refdatasvc/internal/config"
	healthdom "github.com/berezovskyivalerii/refdatasvc/internal/domain/health"
	"github.com/berezovskyivalerii/refdatasvc/internal/domain/refdata"
	httpinfra "github.com/berezovskyivalerii/refdatasvc/internal/infra/http"
	"github.com/berezovskyivalerii/refdatasvc/internal/infra/http/mw/adminauth"
	"github.com/berezovskyivalerii/refdatasvc/internal/infra/store"
	usehealth "github.com/berezovskyivalerii/refdatasvc/internal/usecase/health"
	refdatauc "github.com/berezovskyivalerii/refdatasvc/internal/usecase/refdata"
)

type App struct {
	Router *gin.Engine
	Sync   *refdatauc.Orchestrator
	DB     *sql.DB
}

// BuildSync wires the one-shot synchronizer: store, repository, the two
// exchange clients and the orchestrator.
func BuildSync(cfg config.Config, log *slog.Logger) (*refdatauc.Orchestrator, *sql.DB, error) {
	mode, err := refdata.ParseSymbolMode(cfg.SymbolMode)
	if err != nil {
		return nil, nil, err
	}

	db, err := store.Open(cfg.Database.Driver, cfg.Database.Path, cfg.Database.DSN)
	if err != nil {
		return nil, nil, err
	}

	var repo refdata.Repo
	if cfg.Database.Driver == "postgres" {
		repo = pgrepo.NewRefDataRepo(db, log)
	} else {
		repo = sqliterepo.NewRefDataRepo(db, log)
	}

	allow := refdata.NewAllowList(cfg.Symbols)
	orc := &refdatauc.Orchestrator{
		Repo: repo,
		Fetchers: []refdata.Fetcher{
			binance.New(allow, mode),
			okx.New(allow, mode),
		},
		Timeout: cfg.Sync.Timeout,
		Logger:  log,
	}
	return orc, db, nil
}

// Build wires the full service: synchronizer plus the HTTP surface.
func Build(cfg config.Config, log *slog.Logger) (*App, error) {
	orc, db, err := BuildSync(cfg, log)
	if err != nil {
		return nil, err
	}

	build := config.NewBuildInfo()
	uc := &usehealth.ReadinessInteractor{
		Pingers:   []healthdom.Pinger{dbping.DBPing{DB: db}},
		Version:   build.Version,
		Commit:    build.Commit,
		BuildTime: build.BuildTime,
		StartedAt: build.StartedAt,
		Clock:     usehealth.SysClock{},
		Timeout:   500 * time.Millisecond,
	}

	router := httpinfra.NewRouter()
	httpctrl.NewHealthController(httpctrl.ReadinessRunner{UC: uc}).Register(router)
	httpctrl.NewRefDataController(orc.Repo).Register(router)

	auth := adminauth.New(cfg.HTTP.AdminAPIKey)
	httpctrl.NewSyncController(orc).Register(router, auth.Handler())

	return &App{Router: router, Sync: orc, DB: db}, nil
}
