package main

import (
	"context"
	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"go-money-expression/config"
	"go-money-expression/http"
	"go-money-expression/rates"
	"go-money-expression/reduce"
	"golang.org/x/sync/errgroup"
	"os"
	"os/signal"
	"syscall"
	"time"

	nhttp "net/http"
)

func main() {
	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	cfg, err := config.Load("./configs")
	if err != nil {
		logger.Log("msg", "cannot load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ratesService := rates.NewFileService(cfg.RatesFile)
	ratesService = rates.NewLoggingService(log.With(logger, "component", "rates_file"), ratesService)
	ratesService = rates.NewCachingService(ctx, cfg.RatesRefresh, log.With(logger, "component", "rates_cache"), ratesService)

	reduceService := reduce.NewService(ratesService, cfg.StrictRates)
	reduceService = reduce.NewLoggingService(log.With(logger, "component", "reduce"), reduceService)
	reduceService = reduce.NewInstrumentingService(prometheus.DefaultRegisterer, reduceService)

	server := &nhttp.Server{
		Addr:        cfg.ServerAddress,
		Handler:     http.NewServer(reduceService, log.With(logger, "component", "http")),
		ReadTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Log("msg", "listening", "addr", cfg.ServerAddress, "strict_rates", cfg.StrictRates)
		if err := server.ListenAndServe(); err != nil && err != nhttp.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Log("msg", "server stopped", "err", err)
		os.Exit(1)
	}
}
