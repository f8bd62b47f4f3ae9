// Package debug logs runtime stats while the app runs with the debug flag.
// Decoded photos and the full-size surface dominate memory, so heap and RSS
// are the numbers to watch.
package debug

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"

	"github.com/dustin/go-humanize"
)

// StartStatsLogger logs goroutine count, heap and resident memory every
// interval until ctx is done.
func StartStatsLogger(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if logger == nil {
		return
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		var rssErrLogged bool
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}
			metrics.Read(samples)
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			attrs := []any{
				slog.Uint64("goroutines", samples[0].Value.Uint64()),
				slog.String("heap_alloc", humanize.IBytes(ms.HeapAlloc)),
				slog.String("heap_sys", humanize.IBytes(ms.HeapSys)),
				slog.String("stack_inuse", humanize.IBytes(ms.StackInuse)),
				slog.Uint64("num_gc", uint64(ms.NumGC)),
			}
			rss, err := residentBytes()
			switch {
			case err == nil:
				attrs = append(attrs, slog.String("rss", humanize.IBytes(rss)))
			case !rssErrLogged:
				logger.Warn("stats: resident memory unavailable", slog.String("err", err.Error()))
				rssErrLogged = true
			}
			logger.Info("runtime-stats", attrs...)
		}
	}()
}
