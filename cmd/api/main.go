package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weblarek/internal/application/catalog"
	"weblarek/internal/application/order"
	"weblarek/internal/config"
	"weblarek/internal/domain/repository"
	"weblarek/internal/infrastructure/encoding/avro"
	ginserver "weblarek/internal/infrastructure/http/gin"
	kafkainfra "weblarek/internal/infrastructure/messaging/kafka"
	"weblarek/internal/infrastructure/persistence/memory"
	"weblarek/internal/infrastructure/persistence/postgres"
	"weblarek/internal/infrastructure/persistence/sqlite"
	"weblarek/internal/interfaces/http/handler"
	"weblarek/internal/interfaces/http/router"
	"weblarek/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	appLogger, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("create logger failed: %v", err)
	}
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	products, err := memory.LoadProductRepository(cfg.Catalog.SeedPath)
	if err != nil {
		appLogger.Fatal("load catalog failed", logger.Error(err))
	}

	orderRepo, closeStore, err := openOrderStore(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("open order store failed", logger.String("driver", cfg.Store.Driver), logger.Error(err))
	}
	defer closeStore()

	var publisher order.Publisher
	var consumer *kafkainfra.OrderConsumer
	if cfg.Kafka.Enabled {
		codec, err := avro.NewOrderCodec()
		if err != nil {
			appLogger.Fatal("create avro codec failed", logger.Error(err))
		}
		producer, err := kafkainfra.NewOrderProducer(cfg.Kafka, codec, appLogger)
		if err != nil {
			appLogger.Fatal("create kafka producer failed", logger.Error(err))
		}
		defer producer.Close(context.Background())
		publisher = producer

		// the consumer side saves what the producer side published
		storeService := order.NewService(products, orderRepo, nil, appLogger)
		consumer = kafkainfra.NewOrderConsumer(cfg.Kafka, codec, storeService, appLogger)
		defer consumer.Close()
	}

	orderService := order.NewService(products, orderRepo, publisher, appLogger)
	if consumer != nil {
		go func() {
			if err := consumer.Start(ctx); err != nil {
				appLogger.Error("kafka consumer stopped", logger.Error(err))
			}
		}()
	}

	engine := ginserver.NewEngine(cfg.App.Env, appLogger)
	router.RegisterRoutes(engine,
		router.Paths{API: cfg.Larek.APIPath, CDN: cfg.Larek.CDNPath, ImagesDir: cfg.Catalog.ImagesDir},
		handler.NewProductHandler(catalog.NewService(products)),
		handler.NewOrderHandler(orderService),
	)

	server := ginserver.NewServer(cfg.Server, engine, appLogger)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("server shutdown failed", logger.Error(err))
		}
	}()

	if err := server.Run(); err != nil {
		appLogger.Fatal("server run failed", logger.Error(err))
	}
}

func openOrderStore(ctx context.Context, cfg *config.Config, log logger.Logger) (repository.OrderRepository, func(), error) {
	switch cfg.Store.Driver {
	case config.StoreSQLite:
		db, err := sqlite.Open(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewOrderRepository(db), func() { closeDB(db, log) }, nil
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB, log)
		if err != nil {
			return nil, nil, err
		}
		repo := postgres.NewOrderRepository(pool)
		if err := repo.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo, pool.Close, nil
	default:
		return memory.NewOrderRepository(), func() {}, nil
	}
}

func closeDB(db *sql.DB, log logger.Logger) {
	if err := db.Close(); err != nil {
		log.Warn("close sqlite failed", logger.Error(err))
	}
}
