package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	apiserver "github.com/dx3mirror/IntegralCalculator/internal/api_server"
	"github.com/dx3mirror/IntegralCalculator/internal/config"
	"github.com/dx3mirror/IntegralCalculator/internal/events"
	"github.com/dx3mirror/IntegralCalculator/internal/store"
	"github.com/dx3mirror/IntegralCalculator/pkg/log"
	"github.com/dx3mirror/IntegralCalculator/pkg/metrics"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the integral calculator api",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.New()
		if err != nil {
			zap.S().Fatalw("reading configuration", "error", err)
		}

		logLvl, err := zap.ParseAtomicLevel(cfg.Service.LogLevel)
		if err != nil {
			logLvl = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		}

		logger := log.InitLog(logLvl)
		defer func() { _ = logger.Sync() }()

		undo := zap.ReplaceGlobals(logger)
		defer undo()

		zap.S().Info("Starting API service")
		defer zap.S().Info("API service stopped")

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)
		defer cancel()

		zap.S().Info("Initializing data store")
		db, err := store.InitDB(cfg)
		if err != nil {
			zap.S().Fatalw("initializing data store", "error", err)
		}

		s := store.NewStore(db)
		defer s.Close()

		if err := s.InitialMigration(ctx); err != nil {
			zap.S().Fatalw("running initial migration", "error", err)
		}

		eventProducer := events.NewEventProducer(&events.StdoutWriter{}, events.WithOutputTopic(cfg.Service.EventTopic))
		defer func() { _ = eventProducer.Close() }()

		metrics.RegisterCalculationStatsCollector(s)

		go func() {
			defer cancel()
			listener, err := newListener(cfg.Service.Address)
			if err != nil {
				zap.S().Fatalw("creating listener", "error", err)
			}

			server := apiserver.New(cfg, s, eventProducer, listener)
			if err := server.Run(ctx); err != nil {
				zap.S().Fatalw("running the api server", "error", err)
			}
		}()

		go func() {
			defer cancel()
			listener, err := newListener(cfg.Service.MetricsAddress)
			if err != nil {
				zap.S().Fatalw("creating metrics listener", "error", err)
			}

			metricsServer := apiserver.NewMetricServer(cfg.Service.MetricsAddress, listener)
			if err := metricsServer.Run(ctx); err != nil {
				zap.S().Fatalw("running the metrics server", "error", err)
			}
		}()

		<-ctx.Done()
		return nil
	},
}

func newListener(address string) (net.Listener, error) {
	if address == "" {
		address = "localhost:0"
	}
	return net.Listen("tcp", address)
}
