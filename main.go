package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moncal/src-server/metric"
	"moncal/src-server/model"
	"moncal/src-server/persist"
	"moncal/src-server/route"
	"moncal/src-server/utils"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	if err := godotenv.Load(); err != nil {
		slog.Info(err.Error())
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.RFC1123Z,
		}),
	))
}

func main() {
	as := utils.NewAppState()

	if err := model.CreateSchema(as.BunDB); err != nil {
		slog.Error("can't create database schema", "error", err)
		os.Exit(1)
	}

	// the durable slot and the in-memory store it feeds; a corrupt slot
	// logs and starts empty instead of failing startup
	as.Slot = persist.NewSqliteSlot(as.BunDB)
	as.LoadStore(context.Background())
	slog.Info("event store loaded", "events", as.Store.Len(), "days", len(as.Store.Days()))

	go metric.Init(as)

	// http server
	go func() {
		muxer := http.NewServeMux()
		muxer.Handle("GET /metrics", promhttp.Handler())
		route.Calendar(muxer, as)
		route.Event(muxer, as)
		route.Transfer(muxer, as)
		route.Ical(muxer, as)
		route.SPA(muxer, as)
		if err := http.ListenAndServe(":"+as.Config.GetPort(), muxer); err != nil {
			slog.Error("cannot start HTTP server", "error", err)
			as.AppCloseSignalChan <- syscall.SIGTERM
		}
	}()

	slog.Info("app is now running, press Ctrl+C to exit", "port", as.Config.GetPort())

	signal.Notify(as.AppCloseSignalChan, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-as.AppCloseSignalChan
	as.GracefulShutdown()

	slog.Info("Gracefully shutting down...")
}
