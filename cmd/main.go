package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/erikm/ecommerce-orders/internal/app"
	"github.com/erikm/ecommerce-orders/internal/config"
	"github.com/erikm/ecommerce-orders/internal/events"
	"github.com/erikm/ecommerce-orders/internal/handler"
	"github.com/erikm/ecommerce-orders/internal/inventory"
	"github.com/erikm/ecommerce-orders/internal/postgres"
	"github.com/erikm/ecommerce-orders/internal/repo"
	"github.com/erikm/ecommerce-orders/internal/service"
	"github.com/erikm/ecommerce-orders/pkg/cache"
	"github.com/erikm/ecommerce-orders/pkg/trm"

	_ "github.com/erikm/ecommerce-orders/docs"
	"github.com/joho/godotenv"
)

// @title           Ecommerce Orders API
// @version         1.0
// @description     Документация HTTP API сервиса заказов
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ordersRepo := repo.NewOrdersRepo(db)
	customersRepo := repo.NewCustomersRepo(db)
	productsRepo := repo.NewProductsRepo(db)

	txManager := trm.NewManager(db)

	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	orderCache.StartJanitor(ctx)

	ledger := inventory.NewLedger(logger, productsRepo)
	producer := events.NewProducer(logger, conf.Kafka)

	orderService := service.NewOrderService(
		logger, txManager, ordersRepo, customersRepo, productsRepo, ledger, producer, orderCache,
	)

	httpHandler := handler.NewHTTPHandler(logger, orderService)
	handler.RegisterMetrics()

	application := app.New(logger, conf)
	application.SetHTTPHandlers(httpHandler)
	application.SetClosers(producer)

	application.Start(ctx)
	<-ctx.Done()
	application.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
