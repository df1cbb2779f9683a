package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/pongsathonn/ihavefood/common/config"
	"github.com/pongsathonn/ihavefood/common/logger"
	"github.com/pongsathonn/ihavefood/common/tracing"
	"github.com/pongsathonn/ihavefood/discovery"
)

const serviceName = "deliveryservice"

func main() {
	cfg := Config{
		ServiceName: serviceName,
		InstanceID:  discovery.GenerateInstanceID(serviceName),
		Port:        config.MustGetEnv("PORT"),
		MetricsAddr: config.GetEnv("METRICS_ADDR", ":9464"),
		ConsulAddr:  config.GetEnv("CONSUL_ADDR", ""),

		RBMQUser: config.MustGetEnv("RBMQ_USER"),
		RBMQPass: config.MustGetEnv("RBMQ_PASS"),
		RBMQHost: config.MustGetEnv("RBMQ_HOST"),

		RedisURL:    config.MustGetEnv("REDIS_URL"),
		DatabaseURL: config.GetEnv("DATABASE_URL", ""),
		MongoURI:    config.GetEnv("MONGO_URI", ""),
		MongoDB:     config.GetEnv("MONGO_DB", "ihavefood"),

		CustomerURI: config.MustGetEnv("CUSTOMER_URI"),
		MerchantURI: config.MustGetEnv("MERCHANT_URI"),

		DispatcherConcurrency: envInt64("DISPATCHER_CONCURRENCY", 100),
		MigrationsPath:        config.GetEnv("MIGRATIONS_PATH", "db/migrations"),
	}

	log := logger.NewLogger(cfg.ServiceName)
	log.Info("starting service", "instance_id", cfg.InstanceID, "port", cfg.Port)

	shutdownTracer, err := tracing.InitTracer(cfg.ServiceName)
	if err != nil {
		log.Error("init tracer", "error", err)
		os.Exit(1)
	}
	defer shutdownTracer()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := NewApp(ctx, cfg, log)
	if err != nil {
		log.Error("wire service", "error", err)
		os.Exit(1)
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigc
		log.Info("received shutdown signal")
		app.Shutdown(ctx)
		cancel()
	}()

	if err := app.Start(ctx); err != nil {
		log.Error("serve", "error", err)
		os.Exit(1)
	}
}

// envInt64 reads an integer variable. A set-but-malformed value panics like
// MustGetEnv rather than silently running with the default.
func envInt64(key string, fallback int64) int64 {
	v := config.GetEnv(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		panic("environment variable " + key + " is not an integer: " + v)
	}
	return n
}
