package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/harshh999/quarrel-store/internal/auth"
	"github.com/harshh999/quarrel-store/internal/cart"
	"github.com/harshh999/quarrel-store/internal/catalog"
	"github.com/harshh999/quarrel-store/internal/checkout"
	storehttp "github.com/harshh999/quarrel-store/internal/http"
	"github.com/harshh999/quarrel-store/internal/order"
	"github.com/harshh999/quarrel-store/internal/session"
	"github.com/harshh999/quarrel-store/internal/store"
	"github.com/redis/go-redis/v9"
)

type Config struct {
	HTTPPort        string
	StoreBackend    string
	RedisAddr       string
	RedisPassword   string
	SQLitePath      string
	SQLiteMigPath   string
	MongoURI        string
	MongoDBName     string
	CheckoutDelay   time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	OrdersDB        *order.Credentials // nil disables the archive
}

func loadConfig() *Config {
	cfg := &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		StoreBackend:    getEnv("STORE_BACKEND", "memory"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		SQLitePath:      getEnv("SQLITE_PATH", "storefront.db"),
		SQLiteMigPath:   getEnv("SQLITE_MIGRATIONS_PATH", "internal/store/migrations"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:     getEnv("MONGO_DB_NAME", "storefront"),
		CheckoutDelay:   checkout.DefaultProcessingDelay,
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}

	if ms := getEnv("CHECKOUT_DELAY_MS", ""); ms != "" {
		v, err := strconv.Atoi(ms)
		if err != nil {
			log.Fatalf("invalid CHECKOUT_DELAY_MS: %v", err)
		}
		cfg.CheckoutDelay = time.Duration(v) * time.Millisecond
	}

	if host := getEnv("ORDERS_DB_HOST", ""); host != "" {
		port, err := strconv.Atoi(getEnv("ORDERS_DB_PORT", "5432"))
		if err != nil {
			log.Fatalf("invalid ORDERS_DB_PORT: %v", err)
		}
		cfg.OrdersDB = &order.Credentials{
			Host:              host,
			Port:              port,
			User:              getEnv("ORDERS_DB_USER", "postgres"),
			Password:          getEnv("ORDERS_DB_PASSWORD", ""),
			DBName:            getEnv("ORDERS_DB_NAME", "storefront"),
			MigrationsDirPath: getEnv("ORDERS_DB_MIGRATIONS_PATH", "internal/order/migrations"),
		}
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func openStore(ctx context.Context, cfg *Config) (store.KV, error) {
	switch cfg.StoreBackend {
	case "memory":
		return store.NewMemoryStore(), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, err
		}
		return store.NewRedisStore(client), nil
	case "sqlite":
		s, err := store.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := s.RunMigrations(cfg.SQLiteMigPath); err != nil {
			return nil, err
		}
		return s, nil
	case "mongo":
		return store.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDBName)
	default:
		return nil, errors.New("unknown STORE_BACKEND: " + cfg.StoreBackend)
	}
}

func main() {
	cfg := loadConfig()
	ctx := context.Background()

	kv, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open %s store: %v", cfg.StoreBackend, err)
	}
	defer kv.Close()
	log.Printf("Using %s persistence backend", cfg.StoreBackend)

	cat := catalog.Default()
	cartSvc := cart.NewService(kv)
	authSvc := auth.NewService(kv)
	orderStore := order.NewStore(kv)

	var archive checkout.Archive
	if cfg.OrdersDB != nil {
		pg, err := order.NewArchive(cfg.OrdersDB)
		if err != nil {
			log.Fatalf("Failed to connect to orders archive: %v", err)
		}
		defer pg.Close()
		if err := pg.RunMigrations(cfg.OrdersDB); err != nil {
			log.Fatalf("Failed to migrate orders archive: %v", err)
		}
		archive = pg
		log.Printf("Orders archive enabled at %s:%d", cfg.OrdersDB.Host, cfg.OrdersDB.Port)
	}

	checkoutSvc := checkout.NewService(orderStore, cartSvc, archive, cfg.CheckoutDelay)
	sess := session.New(authSvc, cartSvc)
	sess.Restore(ctx)

	router := storehttp.NewRouter(storehttp.Handlers{
		Products: storehttp.NewProductHandler(cat),
		Cart:     storehttp.NewCartHandler(cat, cartSvc),
		Auth:     storehttp.NewAuthHandler(authSvc),
		Checkout: storehttp.NewCheckoutHandler(checkoutSvc, sess),
		Orders:   storehttp.NewOrdersHandler(orderStore, sess),
	}, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Storefront listening on :%s (%d products)", cfg.HTTPPort, cat.Len())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
