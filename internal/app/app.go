package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/refledger/internal/config"
	"github.com/GlebRadaev/refledger/internal/handlers"
	"github.com/GlebRadaev/refledger/internal/repo"
	"github.com/GlebRadaev/refledger/internal/service"
	"github.com/GlebRadaev/refledger/internal/storage"
	"github.com/GlebRadaev/refledger/pkg/logger"
	"github.com/GlebRadaev/refledger/pkg/ratelimit"
)

const limiterCleanupInterval = time.Minute

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	limiter *ratelimit.Limiter

	errCh chan error
	group errgroup.Group
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	return a.run(ctx, cfg)
}

func (a *Application) run(ctx context.Context, cfg *config.Config) error {
	a.cfg = cfg
	a.repo = repo.New(storage.NewTXManager())
	a.srv = service.New(a.repo, cfg.StrictWithdraw)
	if cfg.RateLimit > 0 {
		a.limiter = ratelimit.New(cfg.RateLimit, cfg.RateBurst)
	}
	a.api = handlers.New(a.srv, a.limiter)

	if err := a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startLimiterCleanup(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully",
		zap.Bool("strict_withdraw", cfg.StrictWithdraw),
		zap.Float64("rate_limit", cfg.RateLimit),
	)
	return nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := &http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	a.group.Go(func() error {
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		zap.L().Info("http server stopped")
		return nil
	})

	a.group.Go(func() error {
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
		return nil
	})

	return nil
}

func (a *Application) startLimiterCleanup(ctx context.Context) {
	if !a.limiter.Enabled() {
		return
	}
	a.group.Go(func() error {
		return a.limiter.Run(ctx, limiterCleanupInterval)
	})
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	groupErr := a.group.Wait()
	close(a.errCh)
	wg.Wait()

	if appErr != nil {
		return appErr
	}
	return groupErr
}
