package utils

import (
	"database/sql"
	"log/slog"
	"os"
	"sync"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// AppState owns everything the routes and metrics share: config, the
// SQLite-backed durable slot connection, the natural-language date parser
// and the in-memory event store guarded by StoreMu (one logical writer;
// HTTP handlers are the only mutators).
type AppState struct {
	Config *Config
	RawDB  *sql.DB
	BunDB  *bun.DB
	When   *when.Parser

	storeState

	MetricChans *Metric

	AppCloseSignalChan chan os.Signal

	gracefulShutdownChans   []chan struct{}
	gracefulShutdownChansMu sync.Mutex
}

func NewAppState() *AppState {
	as := &AppState{}

	as.MetricChans = NewMetric()
	as.AppCloseSignalChan = make(chan os.Signal, 1)

	// date parser
	as.When = when.New(nil)
	as.When.Add(en.All...)
	as.When.Add(common.All...)

	// env
	as.Config = NewConfig()

	// database
	var err error
	as.RawDB, err = sql.Open(sqliteshim.ShimName, as.Config.GetSqlitePath()+"?mode=rwc")
	if err != nil {
		slog.Error("cannot open sqlite database", "error", err)
		os.Exit(1)
	}
	as.RawDB.SetMaxIdleConns(8)

	as.BunDB = bun.NewDB(as.RawDB, sqlitedialect.New())

	return as
}

// CreateGracefulShutdownChan hands out a channel that gets closed when the
// app shuts down, so background goroutines can unregister their metrics.
func (as *AppState) CreateGracefulShutdownChan() *chan struct{} {
	as.gracefulShutdownChansMu.Lock()
	defer as.gracefulShutdownChansMu.Unlock()

	ch := make(chan struct{})
	as.gracefulShutdownChans = append(as.gracefulShutdownChans, ch)
	return &ch
}

func (as *AppState) GracefulShutdown() {
	as.gracefulShutdownChansMu.Lock()
	defer as.gracefulShutdownChansMu.Unlock()

	for _, ch := range as.gracefulShutdownChans {
		close(ch)
	}
	as.gracefulShutdownChans = nil

	if err := as.BunDB.Close(); err != nil {
		slog.Warn("can't close database", "error", err)
	}
}
