package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SergeyBogomolovv/checkout-service/internal/app"
	"github.com/SergeyBogomolovv/checkout-service/internal/config"
	"github.com/SergeyBogomolovv/checkout-service/internal/events"
	"github.com/SergeyBogomolovv/checkout-service/internal/handler"
	"github.com/SergeyBogomolovv/checkout-service/internal/idempotency"
	"github.com/SergeyBogomolovv/checkout-service/internal/memory"
	"github.com/SergeyBogomolovv/checkout-service/internal/notify"
	"github.com/SergeyBogomolovv/checkout-service/internal/payment"
	"github.com/SergeyBogomolovv/checkout-service/internal/postgres"
	"github.com/SergeyBogomolovv/checkout-service/internal/repo"
	"github.com/SergeyBogomolovv/checkout-service/internal/service"
	"github.com/SergeyBogomolovv/checkout-service/pkg/async"
	"github.com/SergeyBogomolovv/checkout-service/pkg/trm"

	"github.com/joho/godotenv"
)

const demoUsers = 10

// @title           Checkout Service API
// @version         1.0
// @description     Оформление заказов, резервирование товаров и жизненный цикл заказа
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	application := app.New(logger, conf)
	service.RegisterMetrics()

	deps := service.Dependencies{
		Payment: payment.NewSimulator(logger, payment.Config{
			DeclineRate: conf.Payment.DeclineRate,
			Latency:     conf.Payment.Latency,
			Timeout:     conf.Payment.Timeout,
		}),
	}

	var txManager trm.Manager
	switch conf.Storage.Driver {
	case config.DriverPostgres:
		db, err := postgres.New(ctx, conf.Postgres)
		panicIfErr("failed to connect to db", err)
		defer db.Close()
		logger.Info("postgres connected")

		r := repo.NewPostgresRepo(db)
		deps.Orders, deps.Inventory, deps.Profiles = r, r, r
		txManager = trm.NewManager(db)
	default:
		store := memory.NewStore()
		memory.SeedDemo(store, demoUsers)
		logger.Warn("using in-memory storage, data is lost on restart")

		deps.Orders, deps.Inventory, deps.Profiles = store, store, store
		txManager = trm.NewNopManager()
	}

	pool := async.NewPool(logger, async.Config{
		Workers:    conf.Worker.Size,
		QueueSize:  conf.Worker.QueueSize,
		JobTimeout: conf.Worker.JobTimeout,
	})
	deps.Dispatcher = pool
	application.SetStarters(pool)
	// пул закрывается первым, чтобы успеть отправить события
	application.SetClosers(pool)

	switch conf.Kafka.Driver {
	case config.DriverKafka:
		publisher := events.NewKafkaPublisher(logger, conf.Kafka)
		deps.Events = publisher
		application.SetClosers(publisher)
	default:
		deps.Events = events.NewLogPublisher(logger)
	}

	var sender notify.Sender = notify.NewLogSender(logger, conf.Mail.From)
	if conf.RabbitMQ.Driver == config.DriverRabbitMQ {
		rabbit, err := notify.NewRabbitSender(conf.RabbitMQ, conf.Mail.From)
		panicIfErr("failed to connect to rabbitmq", err)
		sender = rabbit
		application.SetClosers(rabbit)
	}
	deps.Notifier = notify.NewNotifier(logger, sender)

	switch conf.Redis.Driver {
	case config.DriverRedis:
		rdb, err := idempotency.NewRedisClient(ctx, conf.Redis)
		panicIfErr("failed to connect to redis", err)
		deps.Idempotency = idempotency.NewRedisStore(rdb, conf.Redis.TTL)
		application.SetClosers(rdb)
	default:
		store := idempotency.NewMemoryStore(conf.Redis.Capacity, conf.Redis.TTL)
		deps.Idempotency = store
		application.SetStarters(store)
	}

	orderService := service.NewOrderService(logger, txManager, deps)
	application.SetHTTPHandlers(handler.NewHTTPHandler(logger, orderService))

	panicIfErr("failed to start app", application.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", application.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case "stage":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
