package metric

import (
	"log/slog"
	"time"

	"moncal/src-server/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func eventCount(as *utils.AppState, tickerInterval *time.Duration) {
	eventCount := promauto.NewGauge(prometheus.GaugeOpts{
		Name: "moncal_event_count",
		Help: "Total events across all date buckets in the store",
	})
	good := true
	if err := prometheus.Register(eventCount); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			slog.Error("can't register moncal_event_count metric", "error", err)
			good = false
		}
	}
	if good {
		slog.Debug("moncal_event_count metric registered")
		eventCount.Set(0)
	}
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		ticker := time.NewTicker(*tickerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-*gracefulShutdownCh:
				switch prometheus.Unregister(eventCount) {
				case true:
					slog.Debug("moncal_event_count metric unregistered")
				case false:
					slog.Warn("moncal_event_count metric not registered")
				}
				return
			case <-ticker.C:
				as.StoreMu.Lock()
				count := as.Store.Len()
				as.StoreMu.Unlock()
				eventCount.Set(float64(count))
			}
		}
	}()
}

func storeSave(as *utils.AppState, clearTickerInterval *time.Duration) {
	storeSave := promauto.NewGauge(prometheus.GaugeOpts{
		Name: "moncal_store_save_microsec",
		Help: "The latency of the last event store save in microseconds",
	})
	good := true
	if err := prometheus.Register(storeSave); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			slog.Error("can't register moncal_store_save_microsec metric", "error", err)
			good = false
		}
	}
	if good {
		slog.Debug("moncal_store_save_microsec metric registered")
		storeSave.Set(0)
	}
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		clearTicker := time.NewTicker(*clearTickerInterval)
		defer clearTicker.Stop()
		for {
			select {
			case <-*gracefulShutdownCh:
				switch prometheus.Unregister(storeSave) {
				case true:
					slog.Debug("moncal_store_save_microsec metric unregistered")
				case false:
					slog.Warn("moncal_store_save_microsec metric not registered")
				}
				return
			case latency := <-as.MetricChans.StoreSave:
				storeSave.Set(latency)
				clearTicker.Reset(*clearTickerInterval)
			case <-clearTicker.C:
				storeSave.Set(0)
			}
		}
	}()
}

func storeLoad(as *utils.AppState, clearTickerInterval *time.Duration) {
	storeLoad := promauto.NewGauge(prometheus.GaugeOpts{
		Name: "moncal_store_load_microsec",
		Help: "The latency of the last event store load in microseconds",
	})
	good := true
	if err := prometheus.Register(storeLoad); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			slog.Error("can't register moncal_store_load_microsec metric", "error", err)
			good = false
		}
	}
	if good {
		slog.Debug("moncal_store_load_microsec metric registered")
		storeLoad.Set(0)
	}
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		clearTicker := time.NewTicker(*clearTickerInterval)
		defer clearTicker.Stop()
		for {
			select {
			case <-*gracefulShutdownCh:
				switch prometheus.Unregister(storeLoad) {
				case true:
					slog.Debug("moncal_store_load_microsec metric unregistered")
				case false:
					slog.Warn("moncal_store_load_microsec metric not registered")
				}
				return
			case latency := <-as.MetricChans.StoreLoad:
				storeLoad.Set(latency)
				clearTicker.Reset(*clearTickerInterval)
			case <-clearTicker.C:
				storeLoad.Set(0)
			}
		}
	}()
}

func httpRequest(as *utils.AppState, clearTickerInterval *time.Duration) {
	httpRequest := promauto.NewGauge(prometheus.GaugeOpts{
		Name: "moncal_http_request_microsec",
		Help: "The latency of the last HTTP request in microseconds",
	})
	good := true
	if err := prometheus.Register(httpRequest); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
			slog.Error("can't register moncal_http_request_microsec metric", "error", err)
			good = false
		}
	}
	if good {
		slog.Debug("moncal_http_request_microsec metric registered")
		httpRequest.Set(0)
	}
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		clearTicker := time.NewTicker(*clearTickerInterval)
		defer clearTicker.Stop()
		for {
			select {
			case <-*gracefulShutdownCh:
				switch prometheus.Unregister(httpRequest) {
				case true:
					slog.Debug("moncal_http_request_microsec metric unregistered")
				case false:
					slog.Warn("moncal_http_request_microsec metric not registered")
				}
				return
			case latency := <-as.MetricChans.HTTPRequest:
				httpRequest.Set(latency)
				clearTicker.Reset(*clearTickerInterval)
			case <-clearTicker.C:
				httpRequest.Set(0)
			}
		}
	}()
}

func Init(as *utils.AppState) {
	tickerInterval := as.Config.GetMetricCollectionInterval()
	clearTickerInterval := as.Config.GetMetricCollectionInterval() * 2

	eventCount(as, &tickerInterval)
	storeSave(as, &clearTickerInterval)
	storeLoad(as, &clearTickerInterval)
	httpRequest(as, &clearTickerInterval)
}
