package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/retail-core/internal/cfg"
	v1Grpc "github.com/DRSN-tech/retail-core/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/retail-core/internal/delivery/v1/http"
	"github.com/DRSN-tech/retail-core/internal/infrastructure/kafka"
	fileRepo "github.com/DRSN-tech/retail-core/internal/repository/file"
	"github.com/DRSN-tech/retail-core/internal/repository/memory"
	s3Repo "github.com/DRSN-tech/retail-core/internal/repository/minio"
	"github.com/DRSN-tech/retail-core/internal/repository/pgdb"
	"github.com/DRSN-tech/retail-core/internal/repository/redis"
	"github.com/DRSN-tech/retail-core/internal/usecase"
	"github.com/DRSN-tech/retail-core/pkg/clients"
	"github.com/DRSN-tech/retail-core/pkg/closer"
	"github.com/DRSN-tech/retail-core/pkg/e"
	"github.com/DRSN-tech/retail-core/pkg/jitter"
	"github.com/DRSN-tech/retail-core/pkg/logger"
	"github.com/DRSN-tech/retail-core/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	"golang.org/x/sync/errgroup"
)

const (
	initTimeout         = 30 * time.Second
	topicTimeout        = 10 * time.Second
	forcedCloseTimeout  = 2 * time.Second
	saleEventRetryBase  = 200 * time.Millisecond
	saleEventRetryLimit = 10 * time.Second
)

// App связывает хранилище, транспорт и фоновые воркеры.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	closer  *closer.Closer
	store   *usecase.Store
	worker  *kafka.SaleEventWorker
	httpSrv *v1Http.Server
	grpcSrv *v1Grpc.GRPCServer
}

// NewApp поднимает слот состояния выбранного драйвера, загружает снимок и собирает серверы.
// При ошибке уже открытые ресурсы закрываются.
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: log,
		closer: closer.NewCloser(forcedCloseTimeout),
	}

	ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
	defer cancel()

	if err := a.init(ctx); err != nil {
		if cerr := a.closer.Close(ctx); cerr != nil {
			log.Warnf("cleanup after failed init: %v", cerr)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a, nil
}

func (a *App) init(ctx context.Context) error {
	repo, err := a.initSnapshotRepo(ctx)
	if err != nil {
		return err
	}

	opts := []usecase.Option{
		usecase.WithLogger(a.logger),
		usecase.WithTaxRate(a.cfg.Sales.TaxRate),
	}

	if a.cfg.Kafka != nil {
		a.worker = a.initSaleEvents()
		opts = append(opts, usecase.WithSaleObserver(a.worker))
	}

	a.store, err = usecase.NewStore(ctx, repo, opts...)
	if err != nil {
		a.logger.Errorf(err, "failed to load state snapshot")
		return err
	}

	a.grpcSrv = v1Grpc.NewGRPCServer(a.cfg.Grpc, a.logger)
	a.grpcSrv.RegisterServices(a.store)
	a.closer.Add("grpc server", a.grpcSrv.Stop)

	r := chi.NewRouter()
	limiter := v1Http.NewRateLimiter(a.cfg.Http.RateLimitRPS, a.cfg.Http.RateLimitBurst, a.logger)
	v1Http.NewRouter(r, a.logger, limiter).Init(a.store)

	a.httpSrv = v1Http.NewServer(r, a.cfg.Http)
	a.closer.Add("http server", a.httpSrv.Stop)

	return nil
}

// initSnapshotRepo открывает слот состояния для STORAGE_DRIVER.
func (a *App) initSnapshotRepo(ctx context.Context) (usecase.SnapshotRepository, error) {
	key := a.cfg.Storage.Key

	switch a.cfg.Storage.Driver {
	case config.DriverMemory:
		a.logger.Warnf("memory storage driver: state is lost on restart")
		return memory.NewSnapshotRepo(), nil

	case config.DriverFile:
		repo, err := fileRepo.NewSnapshotRepo(a.cfg.Storage.Dir, key)
		if err != nil {
			a.logger.Errorf(err, "failed to prepare state directory")
			return nil, err
		}
		a.logger.Infof("state file: %s", repo.Path())
		return repo, nil

	case config.DriverRedis:
		client := clients.NewRedisClient(a.cfg.Redis)
		a.closer.AddFunc("redis", client.Close)
		if err := client.Ping(ctx); err != nil {
			a.logger.Errorf(err, "failed to connect to redis")
			return nil, err
		}
		return redis.NewSnapshotRepo(client, key), nil

	case config.DriverPostgres:
		db, err := initPGDB(ctx, a.logger, a.cfg)
		if err != nil {
			return nil, err
		}
		a.closer.Add("postgres", db.Close)
		return pgdb.NewSnapshotRepo(db.Pool, key), nil

	case config.DriverMinio:
		mc, err := clients.NewMinIOClient(a.cfg.Minio)
		if err != nil {
			a.logger.Errorf(err, "failed to initialize minio client")
			return nil, err
		}
		if err := clients.EnsureBucket(ctx, mc, a.cfg.Minio.BucketName); err != nil {
			a.logger.Errorf(err, "failed to initialize MinIO bucket")
			return nil, err
		}
		return s3Repo.NewSnapshotRepo(mc, a.cfg.Minio, key), nil

	default:
		return nil, e.Wrap(a.cfg.Storage.Driver, e.ErrUnknownStorageDriver)
	}
}

func initPGDB(ctx context.Context, log logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(ctx, cfg.Db)
	if err != nil {
		log.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(log, postgres.DefaultMigrationsURL); err != nil {
		log.Errorf(err, "failed to run migrations")
		_ = db.Close(ctx)
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}

// initSaleEvents создаёт продюсер и воркер событий продаж.
// Недоступность Kafka на старте не мешает кассе работать: события копятся в очереди и повторяются.
func (a *App) initSaleEvents() *kafka.SaleEventWorker {
	producer := kafka.NewProducer(a.logger, a.cfg.Kafka)
	if err := producer.EnsureTopic(topicTimeout); err != nil {
		a.logger.Warnf("kafka topic check failed: %v", err)
	}
	a.closer.AddFunc("kafka producer", producer.Close)

	worker := kafka.NewSaleEventWorker(
		producer,
		a.logger,
		a.cfg.Kafka.QueueSize,
		a.cfg.Kafka.MaxRetries,
		jitter.NewBackoff(saleEventRetryBase, saleEventRetryLimit, jitter.DefaultJitter),
	)
	a.closer.Add("sale event worker", worker.Stop)

	return worker
}

// Run запускает серверы и блокирует до сигнала остановки или падения одного из них.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.worker != nil {
		a.worker.Start(context.Background())
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil {
			a.logger.Errorf(err, "HTTP server failed")
			return err
		}
		return nil
	})

	g.Go(func() error {
		a.logger.Infof("gRPC server starting on %s:%s", a.cfg.Grpc.NetworkMode, a.cfg.Grpc.Port)
		if err := a.grpcSrv.Start(); err != nil {
			a.logger.Errorf(err, "gRPC server failed")
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Infof("stopping gracefully...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Shutdown)
		defer cancel()

		if err := a.closer.Close(shutdownCtx); err != nil {
			a.logger.Errorf(err, "shutdown")
			return err
		}
		return nil
	})

	err := g.Wait()
	a.logger.Infof("application shutdown complete")
	return err
}
