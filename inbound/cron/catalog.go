package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"post-catering/catalog"
	"post-catering/common"
	"post-catering/common/constant"
)

// CatalogCron keeps the redis copy of the storefront payload warm so the
// first request after a TTL expiry never pays for a full reassembly.
type CatalogCron struct {
	Cfg   *viper.Viper
	Store *catalog.PayloadStore
}

func (in CatalogCron) Start(ctx context.Context) {
	in.Cfg.SetDefault("cron.catalog.refresh.interval", 4*time.Minute)
	in.Cfg.SetDefault("cron.catalog.refresh.timeout", 30*time.Second)

	refreshTicker := time.NewTicker(in.Cfg.GetDuration("cron.catalog.refresh.interval"))
	defer refreshTicker.Stop()

	// Run initial refresh
	in.warm(ctx)

	slog.Info("catalog cron started")

	// Block in the main function, not in a goroutine
	for {
		select {
		case <-refreshTicker.C:
			in.warm(ctx)
		case <-ctx.Done():
			slog.Info("catalog cron stopped")
			return
		}
	}
}

func (in CatalogCron) warm(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, in.Cfg.GetDuration("cron.catalog.refresh.timeout"))
	defer cancel()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	slog.DebugContext(ctx, "warming catalog payload cache", traceIdAttr)

	payload, err := in.Store.Load(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to warm catalog payload cache", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		return
	}
	if payload == nil {
		slog.WarnContext(ctx, "catalog payload unavailable, nothing to cache", traceIdAttr)
		return
	}

	slog.DebugContext(ctx, "catalog payload cache warmed", traceIdAttr)
}
