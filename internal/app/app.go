package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	apihttp "calcHub/internal/api/http"
	authController "calcHub/internal/api/http/controllers/auth"
	calcController "calcHub/internal/api/http/controllers/calculations"
	"calcHub/internal/api/http/controllers/system"
	usersController "calcHub/internal/api/http/controllers/users"
	"calcHub/internal/api/http/middlewares"
	"calcHub/internal/infrastructure/click"
	"calcHub/internal/infrastructure/kafka"
	"calcHub/internal/infrastructure/mongo"
	"calcHub/internal/infrastructure/pg"
	"calcHub/internal/infrastructure/redis"
	"calcHub/internal/pkg/logger"
	"calcHub/internal/ports"
	authUsecase "calcHub/internal/usecase/auth"
	calcUsecase "calcHub/internal/usecase/calculations"
)

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (инфраструктура подключается в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run подключает PostgreSQL, Redis, Kafka, ClickHouse (и MongoDB при CALCHUB_STORAGE=mongo),
// собирает зависимости, поднимает консьюмера аналитики и HTTP-сервер (блокирующий вызов).
func (a *App) Run() error {
	log := logger.NewWithLevel(a.cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := pg.New(&a.cfg.DB)
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	defer db.Close()

	if err := pg.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	rdb, err := redis.New(&a.cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer rdb.Close()

	clickCli, err := click.New(&a.cfg.ClickHouse)
	if err != nil {
		return fmt.Errorf("clickhouse: %w", err)
	}
	defer clickCli.Close()

	analytics := click.NewCalculationWriter(clickCli)
	if err := analytics.EnsureTable(ctx); err != nil {
		return fmt.Errorf("clickhouse table: %w", err)
	}

	calcRepo, err := a.calculationRepo(ctx, db, log)
	if err != nil {
		return err
	}
	userRepo := pg.NewUserRepo(db, log)
	blacklist := redis.NewBlacklist(rdb, log)

	producer := kafka.NewProducer(&a.cfg.Kafka)
	defer producer.Close()

	calcUC := calcUsecase.New(calcRepo, producer, analytics, log)
	authUC := authUsecase.New(userRepo, blacklist, authUsecase.NewTokenManager(a.cfg.Token), log)

	consumer := kafka.NewConsumer(&a.cfg.Kafka, calcUC, log)
	defer consumer.Close()
	go func() {
		if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
			slog.Error("kafka consumer failed", "error", err)
		}
	}()

	requireAuth := middlewares.RequireAuth(authUC, log)

	srv := apihttp.NewServer(a.cfg.Server)
	srv.AddController(
		system.New(calcRepo, log),
		authController.New(authUC, log),
		usersController.New(authUC, requireAuth, log),
		calcController.New(calcUC, requireAuth, log))

	slog.Info("application started",
		"http", a.cfg.Server.Host+":"+a.cfg.Server.Port,
		"storage", a.cfg.Storage)

	return srv.Start(ctx)
}

// calculationRepo выбирает хранилище вычислений по конфигу.
func (a *App) calculationRepo(ctx context.Context, db *pg.DB, log *slog.Logger) (ports.ICalculationRepository, error) {
	switch a.cfg.Storage {
	case "mongo":
		cli, err := mongo.New(ctx, &a.cfg.Mongo)
		if err != nil {
			return nil, fmt.Errorf("mongo: %w", err)
		}
		return mongo.NewCalculationRepo(cli, log), nil
	default:
		return pg.NewCalculationRepo(db, log), nil
	}
}
