package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	pb "github.com/pongsathonn/ihavefood/src/deliveryservice/genproto"
	"github.com/pongsathonn/ihavefood/src/deliveryservice/internal"

	"github.com/pongsathonn/ihavefood/common/broker"
	"github.com/pongsathonn/ihavefood/common/metrics"
	"github.com/pongsathonn/ihavefood/common/retry"
	"github.com/pongsathonn/ihavefood/discovery"
	"github.com/pongsathonn/ihavefood/discovery/consul"
)

// Config is the environment contract of the delivery service.
type Config struct {
	ServiceName string
	InstanceID  string
	Port        string
	MetricsAddr string
	ConsulAddr  string

	RBMQUser string
	RBMQPass string
	RBMQHost string

	RedisURL    string
	DatabaseURL string
	MongoURI    string
	MongoDB     string

	CustomerURI string
	MerchantURI string

	DispatcherConcurrency int64
	MigrationsPath        string
}

// App wires the delivery service together and owns the lifecycle of every
// connection it opens.
type App struct {
	config Config
	log    *slog.Logger

	bus        *broker.RabbitMQ
	dispatcher *broker.Dispatcher
	cache      *internal.RedisStatusCache
	sqlDB      *sql.DB
	mongoCl    *mongo.Client

	customerConn *grpc.ClientConn
	merchantConn *grpc.ClientConn

	grpcServer    *grpc.Server
	healthServer  *health.Server
	metricsServer *http.Server

	registry   discovery.Registry
	registered bool

	cancelConsumers context.CancelFunc
}

// NewApp connects every collaborator. Broker, cache and store connections
// are fail-fast; only the directory dials retry, since those services
// routinely start after this one.
func NewApp(ctx context.Context, cfg Config, log *slog.Logger) (*App, error) {
	a := &App{config: cfg, log: log}

	grpcMetrics := metrics.NewGRPCMetrics(cfg.ServiceName)
	brokerMetrics := metrics.NewBrokerMetrics(cfg.ServiceName)
	deliveryMetrics := metrics.NewDeliveryMetrics(cfg.ServiceName)

	bus, err := broker.Connect(cfg.ServiceName, cfg.RBMQUser, cfg.RBMQPass, cfg.RBMQHost, brokerMetrics)
	if err != nil {
		return nil, err
	}
	a.bus = bus
	log.Info("rabbitmq connected", "host", cfg.RBMQHost)

	cache, err := internal.NewRedisStatusCache(cfg.RedisURL)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.cache = cache
	log.Info("redis connected")

	storage, err := a.connectStorage(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	if err := a.dialDirectories(ctx); err != nil {
		a.Close()
		return nil, err
	}

	notifier := internal.NewLogNotifier(log, deliveryMetrics)

	svc := internal.NewDeliveryService(
		storage,
		cache,
		bus,
		internal.NewRandomGeocoder(),
		pb.NewCustomerServiceClient(a.customerConn),
		pb.NewMerchantServiceClient(a.merchantConn),
		log,
		deliveryMetrics,
	)

	a.grpcServer = grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(unaryMetrics(grpcMetrics)),
	)
	pb.RegisterDeliveryServiceServer(a.grpcServer, svc)

	a.healthServer = health.NewServer()
	healthpb.RegisterHealthServer(a.grpcServer, a.healthServer)

	handlers := internal.NewEventHandlers(
		storage,
		cache,
		bus,
		internal.NewDistrictGeocoder(),
		notifier,
		log,
		deliveryMetrics,
	)
	a.dispatcher = broker.NewDispatcher(bus, log, brokerMetrics, cfg.DispatcherConcurrency)
	a.dispatcher.Handle(internal.OrderPlacedQueue, broker.OrderPlacedEvent, handlers.HandleOrderPlaced)
	a.dispatcher.Handle(internal.RiderCreatedQueue, broker.RiderCreatedEvent, handlers.HandleRiderCreated)

	if cfg.ConsulAddr != "" {
		registry, err := consul.NewRegistry(cfg.ConsulAddr)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("connect to consul: %w", err)
		}
		a.registry = registry
	}

	return a, nil
}

// connectStorage picks the store implementation from the environment:
// Postgres (with migrations) when DATABASE_URL is set, MongoDB otherwise.
func (a *App) connectStorage(ctx context.Context) (internal.DeliveryStorage, error) {
	if a.config.DatabaseURL != "" {
		db, err := sql.Open("postgres", a.config.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		if err := runMigrations(a.config.MigrationsPath, a.config.DatabaseURL); err != nil {
			db.Close()
			return nil, err
		}
		a.sqlDB = db
		a.log.Info("postgres connected, schema up to date")
		return internal.NewPostgresStorage(db), nil
	}

	if a.config.MongoURI != "" {
		connectCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
		defer cancel()

		client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(a.config.MongoURI))
		if err != nil {
			return nil, fmt.Errorf("connect to mongodb: %w", err)
		}
		if err := client.Ping(connectCtx, nil); err != nil {
			return nil, fmt.Errorf("ping mongodb: %w", err)
		}
		a.mongoCl = client
		a.log.Info("mongodb connected", "database", a.config.MongoDB)
		return internal.NewMongoStorage(client, a.config.MongoDB), nil
	}

	return nil, errors.New("either DATABASE_URL or MONGO_URI must be set")
}

// dialDirectories connects the customer and merchant clients with bounded
// retry: 5 attempts, 5 seconds apart, then give up and let main exit.
func (a *App) dialDirectories(ctx context.Context) error {
	err := retry.Do(ctx, 5, 5*time.Second, func() error {
		conn, err := discovery.Dial(ctx, a.config.CustomerURI)
		if err != nil {
			a.log.Warn("customer service not reachable, retrying", "uri", a.config.CustomerURI)
			return err
		}
		a.customerConn = conn
		return nil
	})
	if err != nil {
		return fmt.Errorf("dial customer service: %w", err)
	}

	err = retry.Do(ctx, 5, 5*time.Second, func() error {
		conn, err := discovery.Dial(ctx, a.config.MerchantURI)
		if err != nil {
			a.log.Warn("merchant service not reachable, retrying", "uri", a.config.MerchantURI)
			return err
		}
		a.merchantConn = conn
		return nil
	})
	if err != nil {
		return fmt.Errorf("dial merchant service: %w", err)
	}
	return nil
}

// Start runs the metrics server, the event dispatcher and the gRPC server.
// It blocks in Serve until Shutdown is called.
func (a *App) Start(ctx context.Context) error {
	consumerCtx, cancel := context.WithCancel(ctx)
	a.cancelConsumers = cancel

	a.metricsServer = &http.Server{
		Addr:    a.config.MetricsAddr,
		Handler: promhttp.Handler(),
	}
	go func() {
		a.log.Info("metrics server listening", "addr", a.config.MetricsAddr)
		if err := a.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("metrics server", "error", err)
		}
	}()

	go func() {
		if err := a.dispatcher.Run(consumerCtx); err != nil {
			a.log.Error("event dispatcher stopped", "error", err)
		}
	}()

	if a.registry != nil {
		if err := a.registry.Register(ctx, a.config.InstanceID, a.config.ServiceName, "localhost:"+a.config.Port); err != nil {
			return fmt.Errorf("register with consul: %w", err)
		}
		a.registered = true
		go a.updateRegistryTTL(consumerCtx)
	}

	lis, err := net.Listen("tcp", ":"+a.config.Port)
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", a.config.Port, err)
	}

	a.healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	a.log.Info("grpc server listening", "port", a.config.Port)
	return a.grpcServer.Serve(lis)
}

func (a *App) updateRegistryTTL(ctx context.Context) {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := a.registry.HealthCheck(a.config.InstanceID, a.config.ServiceName); err != nil {
				a.log.Error("update consul ttl", "error", err)
			}
		}
	}
}

// Shutdown stops accepting work, lets in-flight handlers finish or
// redeliver, then tears down the connections.
func (a *App) Shutdown(ctx context.Context) {
	a.log.Info("shutting down")

	if a.healthServer != nil {
		a.healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	}
	if a.registered {
		if err := a.registry.Deregister(ctx, a.config.InstanceID, a.config.ServiceName); err != nil {
			a.log.Error("deregister from consul", "error", err)
		}
	}

	if a.grpcServer != nil {
		a.grpcServer.GracefulStop()
	}
	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			a.log.Error("shut down metrics server", "error", err)
		}
	}
	if a.cancelConsumers != nil {
		a.cancelConsumers()
	}

	a.Close()
}

// Close releases every connection NewApp opened. Safe to call on a
// partially constructed App.
func (a *App) Close() {
	if a.customerConn != nil {
		_ = a.customerConn.Close()
	}
	if a.merchantConn != nil {
		_ = a.merchantConn.Close()
	}
	if a.sqlDB != nil {
		_ = a.sqlDB.Close()
	}
	if a.mongoCl != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = a.mongoCl.Disconnect(ctx)
	}
	if a.cache != nil {
		_ = a.cache.Close()
	}
	if a.bus != nil {
		_ = a.bus.Close()
	}
}

// unaryMetrics counts every unary request by method and status code.
func unaryMetrics(m *metrics.GRPCMetrics) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		m.RecordRequest(info.FullMethod, status.Code(err).String(), time.Since(start))
		return resp, err
	}
}

// runMigrations applies the SQL schema. A database already at the current
// version is not an error.
func runMigrations(path, databaseURL string) error {
	m, err := migrate.New("file://"+path, databaseURL)
	if err != nil {
		return fmt.Errorf("open migrations at %s: %w", path, err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
