package apiserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/lthibault/jitterbug/v2"
	"go.uber.org/zap"

	"github.com/dx3mirror/IntegralCalculator/internal/config"
	"github.com/dx3mirror/IntegralCalculator/internal/events"
	handlers "github.com/dx3mirror/IntegralCalculator/internal/handlers/v1alpha1"
	"github.com/dx3mirror/IntegralCalculator/internal/service"
	"github.com/dx3mirror/IntegralCalculator/internal/store"
	"github.com/dx3mirror/IntegralCalculator/pkg/metrics"
	"github.com/dx3mirror/IntegralCalculator/pkg/middleware"
)

const (
	gracefulShutdownTimeout = 5 * time.Second
	statisticsInterval      = 30 * time.Minute
)

type Server struct {
	cfg           *config.Config
	store         store.Store
	eventProducer *events.EventProducer
	listener      net.Listener
}

// New returns a new instance of the integral calculator api server.
func New(
	cfg *config.Config,
	store store.Store,
	eventProducer *events.EventProducer,
	listener net.Listener,
) *Server {
	return &Server{
		cfg:           cfg,
		store:         store,
		eventProducer: eventProducer,
		listener:      listener,
	}
}

func (s *Server) Run(ctx context.Context) error {
	zap.S().Named("api_server").Info("Initializing API server")

	router := chi.NewRouter()

	metricMiddleware := metrics.NewMiddleware("api_server")
	metricMiddleware.MustRegisterDefault()

	router.Use(
		metricMiddleware.Handler,
		cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "PUT", "POST", "DELETE", "HEAD", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: false,
			MaxAge:           300,
		}),
		middleware.RequestID,
		middleware.Logger(),
		chiMiddleware.Recoverer,
	)

	h := handlers.NewServiceHandler(service.NewCalculationService(s.store, s.eventProducer))

	router.Get("/health", h.Health)
	router.Route("/api/v1alpha1", func(r chi.Router) {
		r.Post("/calculations", h.CreateCalculation)
		r.Get("/calculations", h.ListCalculations)
		r.Get("/calculations/{id}", h.GetCalculation)
		r.Delete("/calculations/{id}", h.DeleteCalculation)
		r.Get("/rules", h.ListRules)
		r.Get("/info", h.GetInfo)
	})

	srv := http.Server{Addr: s.cfg.Service.Address, Handler: router}

	go s.reportStatistics(ctx)

	go func() {
		<-ctx.Done()
		zap.S().Named("api_server").Infof("Shutdown signal received: %s", ctx.Err())
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		zap.S().Named("api_server").Info("api server terminated")
	}()

	zap.S().Named("api_server").Infof("Listening on %s...", s.listener.Addr().String())
	if err := srv.Serve(s.listener); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}

	return nil
}

// reportStatistics periodically logs aggregates over the stored calculations.
// The interval is jittered so replicas sharing a database don't report in
// lockstep.
func (s *Server) reportStatistics(ctx context.Context) {
	ticker := jitterbug.New(statisticsInterval, &jitterbug.Norm{Stdev: 30 * time.Second, Mean: 0})
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		stats, err := s.store.Statistics(ctx)
		if err != nil {
			zap.S().Named("api_server").Errorw("failed to collect store statistics", "error", err)
			continue
		}

		zap.S().Named("api_server").Infow("store statistics",
			"total", stats.Total,
			"by_rule", stats.TotalByRule,
			"by_function", stats.TotalByFunction,
		)
	}
}
