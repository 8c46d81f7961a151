package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/MikeMC777/cornerstore/internal/cashier"
	"github.com/MikeMC777/cornerstore/internal/config"
	"github.com/MikeMC777/cornerstore/internal/database"
	"github.com/MikeMC777/cornerstore/internal/grpcx"
	"github.com/MikeMC777/cornerstore/internal/order"
	"github.com/MikeMC777/cornerstore/internal/product"
)

// @title       CornerStore API
// @version     1.0
// @description Point-of-sale backend: cashiers, products, categories and orders.
// @host        localhost:8080
// @BasePath    /
func main() {
	cfg := config.Load()
	log := newLogger(cfg)
	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("cornerstore stopped")
	}
}

func newLogger(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	var log zerolog.Logger
	if cfg.Development() {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		log = zerolog.New(os.Stdout)
	}
	return log.Level(level).With().Timestamp().Str("svc", grpcx.ServiceName).Logger()
}

func run(cfg config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.MigrateOnStart {
		if err := database.Migrate(cfg.PostgresDSN); err != nil {
			return err
		}
		log.Info().Msg("migrations applied")
	}

	pool, err := database.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	health := grpcx.NewHealth()
	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return err
	}
	go func() {
		if err := health.Server.Serve(lis); err != nil {
			log.Error().Err(err).Msg("grpc health stopped")
		}
	}()
	log.Info().Str("addr", cfg.GRPCAddr).Msg("grpc health listening")

	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}
	rp := repos{
		Cashiers: cashier.NewPGRepo(pool),
		Products: product.NewPGRepo(pool),
		Orders:   order.NewPGRepo(pool),
	}
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           newRouter(rp, log, cfg.Development()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()
	health.SetServing(true)
	log.Info().Str("addr", cfg.HTTPAddr).Msg("cornerstore listening")

	select {
	case <-ctx.Done():
	case err := <-errc:
		health.Stop()
		return err
	}

	log.Info().Msg("shutting down")
	health.SetServing(false)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = srv.Shutdown(shutdownCtx)
	health.Stop()
	return err
}
