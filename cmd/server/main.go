package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ihsanfarabi/StreetEatsHub/internal/config"
	"github.com/ihsanfarabi/StreetEatsHub/internal/db"
	"github.com/ihsanfarabi/StreetEatsHub/internal/es"
	"github.com/ihsanfarabi/StreetEatsHub/internal/events"
	"github.com/ihsanfarabi/StreetEatsHub/internal/httpserver"
	"github.com/ihsanfarabi/StreetEatsHub/internal/logging"
	loggingmw "github.com/ihsanfarabi/StreetEatsHub/internal/middleware/logging"
	"github.com/ihsanfarabi/StreetEatsHub/internal/repo"
	"github.com/ihsanfarabi/StreetEatsHub/internal/service"
)

const vendorIndex = "vendors"

func main() {
	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)

	gdb, err := db.Open(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)

	var esClient *elasticsearch.Client
	if cfg.ESURL != "" {
		esClient, err = es.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch init failed: %v", err)
		}
	}

	r := repo.New(gdb)

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		AuthHandler: &httpserver.AuthHTTP{
			Svc:      &service.AuthService{Repo: r, JWTSecret: cfg.JWTSecret, TokenTTL: cfg.TokenTTL},
			Producer: producer,
			ES:       esClient,
			ESIndex:  vendorIndex,
		},
		VendorHandler: &httpserver.VendorHTTP{
			Svc:      &service.VendorService{Repo: r},
			Producer: producer,
			ES:       esClient,
			ESIndex:  vendorIndex,
		},
		MenuHandler: &httpserver.MenuHTTP{
			Svc:      &service.MenuService{Repo: r},
			Producer: producer,
		},
		JWTSecret: cfg.JWTSecret,
	}
	if esClient != nil {
		deps.SearchHandler = &httpserver.SearchHTTP{ES: esClient, Index: vendorIndex}
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := gdb.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
