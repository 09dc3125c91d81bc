package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"daynix/internal/planner"
	"daynix/pkg/clock"
	"daynix/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	plannerUC       planner.UseCase
	clock           clock.Clock
	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PlannerUseCase  planner.UseCase
	Clock           clock.Clock
	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		plannerUC:       cfg.PlannerUseCase,
		clock:           cfg.Clock,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.plannerUC == nil {
		return errors.New("planner use case is required")
	}
	return nil
}

// Run starts the server and blocks until ctx is cancelled, then shuts down
// gracefully with a bounded drain window.
func (srv *HTTPServer) Run(ctx context.Context) error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", srv.port),
		Handler: srv.gin,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on :%d", srv.port)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	srv.l.Info(shutdownCtx, "Shutting down HTTP server...")
	return httpSrv.Shutdown(shutdownCtx)
}
