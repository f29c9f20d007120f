package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/rakapradana/go-bookshop/internal/config"
	"github.com/rakapradana/go-bookshop/internal/events"
	kafkax "github.com/rakapradana/go-bookshop/internal/kafka"
	"github.com/rakapradana/go-bookshop/internal/logx"
	"github.com/rakapradana/go-bookshop/internal/postgres"
	"github.com/rakapradana/go-bookshop/internal/redisx"
	"github.com/rakapradana/go-bookshop/internal/stockwatch"
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
		logx.L.Fatalf("db: %v", err)
	}
	defer db.Close()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Producer for low-stock alerts
	prod := kafkax.NewProducer(cfg.KafkaBrokers, events.TopicStockLow, 1024)
	prod.Start(ctx)

	svc := &stockwatch.Service{
		DB:          db,
		Redis:       rdb,
		Producer:    prod,
		ServiceName: cfg.ServiceName + "-stockwatch",
		Threshold:   cfg.LowStockThreshold,
	}

	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.StockwatchGroup, events.TopicOrderPlaced, cfg.StockwatchWorkers)

	go func() {
		logx.L.Infof("stockwatch consumer started: group=%s topic=%s workers=%d",
			cfg.StockwatchGroup, events.TopicOrderPlaced, cfg.StockwatchWorkers)
		if err := cons.Start(ctx, svc.HandleOrderPlaced); err != nil {
			logx.L.Errorf("consumer exit: %v", err)
			cancel()
		}
	}()

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logx.L.Info("shutting down consumer...")
	cancel()
	time.Sleep(500 * time.Millisecond)
	prod.Close()
	prod.WaitClosed()
}
