package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/time/rate"

	_ "github.com/sbilibin2017/homestay/docs"
	"github.com/sbilibin2017/homestay/internal/db"
	"github.com/sbilibin2017/homestay/internal/facades"
	"github.com/sbilibin2017/homestay/internal/handlers"
	"github.com/sbilibin2017/homestay/internal/jwt"
	"github.com/sbilibin2017/homestay/internal/logger"
	"github.com/sbilibin2017/homestay/internal/middlewares"
	"github.com/sbilibin2017/homestay/internal/repositories"
	"github.com/sbilibin2017/homestay/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const maxImageBytes = 10 << 20

// config holds everything read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	CacheTTLSecond    int

	JWTSecretKey string
	JWTExpSecond int

	KafkaBrokers []string
	KafkaTopic   string

	MongoURI string
	MongoDB  string

	SweepIntervalSecond int
	RateLimitPerSecond  float64
	RateLimitBurst      int
	SeedFile            string
}

// @title homestay API
// @version 1.0.0
// @description Vacation rental marketplace: listings, reference data and bookings
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("parsing %s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "homestay")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config, an empty host keeps the cache in-process only
	cfg.RedisHost = getEnv("REDIS_HOST", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.CacheTTLSecond, err = getInt("CACHE_TTL_SECOND", "300"); err != nil {
		return
	}

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExpSecond, err = getInt("JWT_EXP_SECOND", "86400"); err != nil {
		return
	}

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "homestay-events")

	// MongoDB config
	cfg.MongoURI = getEnv("MONGO_URI", "")
	cfg.MongoDB = getEnv("MONGO_DB", "homestay")

	// Background jobs and limits
	if cfg.SweepIntervalSecond, err = getInt("SWEEP_INTERVAL_SECOND", "3600"); err != nil {
		return
	}
	if cfg.RateLimitPerSecond, err = strconv.ParseFloat(getEnv("RATE_LIMIT_PER_SECOND", "0"), 64); err != nil {
		err = fmt.Errorf("parsing RATE_LIMIT_PER_SECOND: %w", err)
		return
	}
	if cfg.RateLimitBurst, err = getInt("RATE_LIMIT_BURST", "20"); err != nil {
		return
	}
	cfg.SeedFile = getEnv("SEED_FILE", "")

	return
}

// run initializes the logger, storage backends and HTTP server.
// It sets up routes, applies middleware, starts the sweeper and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Log.Sync()
	log := logger.Log
	log.Infow("logger initialized", "level", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	log.Infow("connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	conn, err := db.Connect(ctx, dsn, db.Options{
		MaxOpenConns: cfg.PGMaxOpenConns,
		MaxIdleConns: cfg.PGMaxIdleConns,
	})
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.Migrate(ctx, conn); err != nil {
		return err
	}
	if cfg.SeedFile != "" {
		if err := db.SeedFile(ctx, conn, cfg.SeedFile); err != nil {
			return err
		}
		log.Infow("reference data seeded", "file", cfg.SeedFile)
	}

	// Connect to Redis
	var rdb redis.Cmdable
	if cfg.RedisHost != "" {
		client := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis ping: %w", err)
		}
		defer client.Close()
		rdb = client
	}

	// Kafka producer
	var kw services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer writer.Close()
		kw = writer
		log.Infow("publishing events to kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	// Image storage
	var imageService *services.ImageService
	if cfg.MongoURI != "" {
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return fmt.Errorf("mongo connect: %w", err)
		}
		defer mongoClient.Disconnect(context.Background())
		if err := mongoClient.Ping(ctx, nil); err != nil {
			return fmt.Errorf("mongo ping: %w", err)
		}

		storage, err := facades.NewImageGridFSFacade(mongoClient.Database(cfg.MongoDB))
		if err != nil {
			return err
		}
		imageService = services.NewImageService(storage)
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(conn)
	userWriteRepo := repositories.NewUserWriteRepository(conn)
	stateReadRepo := repositories.NewStateReadRepository(conn)
	cityReadRepo := repositories.NewCityReadRepository(conn)
	referenceCache := repositories.NewReferenceCacheRepository(rdb, time.Duration(cfg.CacheTTLSecond)*time.Second)
	homeReadRepo := repositories.NewHomeReadRepository(conn, middlewares.GetTxFromContext)
	homeWriteRepo := repositories.NewHomeWriteRepository(conn)
	bookingReadRepo := repositories.NewBookingReadRepository(conn)
	bookingWriteRepo := repositories.NewBookingWriteRepository(conn, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	listingService := services.NewListingService(
		stateReadRepo, cityReadRepo, referenceCache, homeReadRepo, homeWriteRepo, kw,
	)
	bookingService := services.NewBookingService(homeReadRepo, bookingWriteRepo, kw)
	profileService := services.NewProfileService(userReadRepo, homeReadRepo, bookingReadRepo)

	// Expired homes sweeper
	sweeper := services.NewSweeper(listingService, time.Duration(cfg.SweepIntervalSecond)*time.Second)
	go sweeper.Run(ctx)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))
	r.Use(middlewares.RateLimitMiddleware(rate.Limit(cfg.RateLimitPerSecond), cfg.RateLimitBurst))

	authMiddleware := middlewares.AuthMiddleware(tokens)

	// Public routes
	r.Post("/auth/signup", handlers.NewSignupHandler(authService))
	r.Post("/auth/signin", handlers.NewSigninHandler(authService, tokens.Expiration()))
	r.Get("/states", handlers.NewListStatesHandler(listingService))
	r.Get("/states/{stateId}/cities", handlers.NewListStateCitiesHandler(listingService))
	r.Post("/cities", handlers.NewListCitiesHandler(listingService))
	r.Get("/homes", handlers.NewListHomesHandler(listingService))
	r.Get("/homes/{id}", handlers.NewGetHomeHandler(listingService))

	// Session is resolved inside the handler so missing fields are reported first
	r.Post("/homes", handlers.NewCreateHomeHandler(listingService, tokens))

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/user", handlers.NewGetUserHandler(profileService, tokens))
		r.With(middlewares.TxMiddleware(conn)).
			Post("/booking/{homeId}", handlers.NewCreateBookingHandler(bookingService, tokens))
		if imageService != nil {
			r.Post("/images", handlers.NewUploadImageHandler(imageService, tokens, maxImageBytes))
		}
	})
	if imageService != nil {
		r.Get("/images/{id}", handlers.NewGetImageHandler(imageService))
	}

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
