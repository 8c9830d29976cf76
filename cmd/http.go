package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"time"

	"github.com/go-playground/validator/v10"

	"post-catering/catalog"
	"post-catering/common/otel"
	"post-catering/guard"
	inboundCron "post-catering/inbound/cron"
	inboundHttp "post-catering/inbound/http"
	"post-catering/outbound/email"
	"post-catering/outbound/sqlgen"
)

func runHttpServerCmd(ctx context.Context) {
	cfg := newCfg("env")

	if cfg.GetString("env") == "dev" {
		cpu, err := os.Create("http-cpu.prof")
		if err != nil {
			log.Fatalf("could not create CPU profile: %v", err)
		}
		defer cpu.Close()

		err = pprof.StartCPUProfile(cpu)
		if err != nil {
			log.Fatalf("could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()

		mem, err := os.Create("http-mem.prof")
		if err != nil {
			log.Fatalf("could not create memory profile: %v", err)
		}
		defer mem.Close()

		err = pprof.WriteHeapProfile(mem)
		if err != nil {
			log.Fatalf("could not write memory profile: %v", err)
		}
		defer mem.Close()
	}

	if endpoint := cfg.GetString("otel.endpoint"); endpoint != "" {
		shutdownTracer := otel.InitTracerProvider(ctx, endpoint)
		defer shutdownTracer()
	}

	validate := validator.New()

	db := newDb(cfg)
	defer db.Close()

	cacheClient := newRedis(cfg)
	defer cacheClient.Close()

	querier := sqlgen.New(db)

	itemColumns, err := querier.ColumnExists(ctx, "menu_items", "item_type")
	if err != nil {
		log.Fatalln("unable to probe menu_items schema", err)
	}
	tierMinMax, err := querier.ColumnExists(ctx, "menu_section_tier_constraints", "min_select")
	if err != nil {
		log.Fatalln("unable to probe tier constraint schema", err)
	}

	guardStore := newGuardStore(cfg, cacheClient)
	abuseGuard := guard.NewGuard(cfg, guardStore, net.DefaultResolver)

	assembler := catalog.NewAssembler(querier, itemColumns)
	payloadStore := catalog.NewPayloadStore(cfg, assembler, querier, cacheClient)
	resolver := catalog.NewConstraintResolver(querier, tierMinMax)
	menuAdmin := catalog.NewAdmin(querier, payloadStore, itemColumns)

	notifier := email.NewNotifier(cfg, nil, querier)

	mux := http.NewServeMux()

	timeoutMiddleware := inboundHttp.TimeoutMiddleware(20 * time.Second)

	inboundHttp.RegisterHealthHttp(mux)
	inboundHttp.RegisterInquiryHttp(mux, db, querier, abuseGuard, resolver, notifier)
	inboundHttp.RegisterMenuHttp(mux, cfg, payloadStore)
	inboundHttp.RegisterMenuAdminHttp(mux, cfg, querier, menuAdmin, validate, itemColumns)

	catalogCron := &inboundCron.CatalogCron{
		Cfg:   cfg,
		Store: payloadStore,
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.GetInt("server.port")),
		Handler:           timeoutMiddleware(inboundHttp.CorsMiddleware(mux)),
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalln("unable to start server", err)
		}
	}()

	slog.Info("http server started")

	go func() {
		catalogCron.Start(ctx)
	}()

	<-ctx.Done()

	ctxShutDown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutDown); err != nil {
		log.Fatalln("unable to shutdown server", err)
	}

	slog.Info("http server stopped")
}
