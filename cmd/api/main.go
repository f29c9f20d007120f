package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/rakapradana/go-bookshop/internal/catalog"
	"github.com/rakapradana/go-bookshop/internal/checkout"
	"github.com/rakapradana/go-bookshop/internal/config"
	"github.com/rakapradana/go-bookshop/internal/events"
	"github.com/rakapradana/go-bookshop/internal/httpx"
	kafkax "github.com/rakapradana/go-bookshop/internal/kafka"
	"github.com/rakapradana/go-bookshop/internal/logx"
	"github.com/rakapradana/go-bookshop/internal/postgres"
	"github.com/rakapradana/go-bookshop/internal/redisx"
	"github.com/rakapradana/go-bookshop/internal/users"
)

func main() {
	_ = godotenv.Load()
	logx.Init()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logx.L.Fatalf("db connect: %v", err)
	}
	defer db.Close()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producer
	prod := kafkax.NewProducer(cfg.KafkaBrokers, events.TopicOrderPlaced, 1024)
	prod.Start(ctx)

	// Repos & handlers
	router := httpx.NewRouter()
	ah := &httpx.AuthHandler{
		Users:  &users.Repo{DB: db},
		Secret: cfg.JWTSecret,
		TTL:    cfg.TokenTTL,
	}
	ah.Register(router)

	cat := &catalog.Repo{DB: db}
	gh := &httpx.GenresHandler{Catalog: cat, Secret: cfg.JWTSecret}
	gh.Register(router)
	bh := &httpx.BooksHandler{Catalog: cat, Secret: cfg.JWTSecret}
	bh.Register(router)

	th := &httpx.TransactionsHandler{
		Checkout: &checkout.Repo{DB: db},
		Redis:    rdb,
		Producer: prod,
		Secret:   cfg.JWTSecret,
		Service:  cfg.ServiceName,
	}
	th.Register(router)

	// HTTP server
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		logx.L.Infof("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.L.Fatalf("listen: %v", err)
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logx.L.Info("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close()      // stop intake, flush & close writer
	cancel()          // stop producer loop
	prod.WaitClosed() // drain
}
