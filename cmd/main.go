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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"casino-ledger-backend/internal/bot"
	"casino-ledger-backend/internal/handlers"
	"casino-ledger-backend/internal/jwt"
	"casino-ledger-backend/internal/logger"
	"casino-ledger-backend/internal/middlewares"
	"casino-ledger-backend/internal/repositories"
	"casino-ledger-backend/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title casino-ledger-backend API
// @version 1.0.0
// @description Shared balance, ledger and withdrawal request service
// @host localhost:8080
// @BasePath /api
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

// config holds all application configuration, loaded from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PgHost         string
	PgPort         int
	PgUser         string
	PgPassword     string
	PgDB           string
	PgMaxOpenConns int
	PgMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	BalanceCacheExp   time.Duration

	KafkaHost  string
	KafkaPort  int
	KafkaTopic string

	TelegramToken  string
	ReviewerChatID int64
	BotSecret      string

	JWTSecretKey string
	JWTExp       time.Duration

	MinWithdrawal float64
	AddressPrefix string
	AddressLength int
	HistoryLimit  int
	MinBet        float64
}

// parseConfig loads environment variables from a file and returns the full
// application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PgUser = getEnv("POSTGRES_USER", "user")
	cfg.PgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PgDB = getEnv("POSTGRES_DB", "casino")
	if cfg.PgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.PgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.PgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	var cacheExpSecond int
	if cacheExpSecond, err = strconv.Atoi(getEnv("BALANCE_CACHE_EXP_SECOND", "300")); err != nil {
		return
	}
	cfg.BalanceCacheExp = time.Duration(cacheExpSecond) * time.Second

	// Kafka config
	cfg.KafkaHost = getEnv("KAFKA_HOST", "localhost")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "ledger-entries")
	if cfg.KafkaPort, err = strconv.Atoi(getEnv("KAFKA_PORT", "9092")); err != nil {
		return
	}

	// Telegram config
	cfg.TelegramToken = getEnv("TELEGRAM_BOT_TOKEN", "")
	cfg.BotSecret = getEnv("BOT_SECRET", "")
	if cfg.ReviewerChatID, err = strconv.ParseInt(getEnv("REVIEWER_CHAT_ID", "0"), 10, 64); err != nil {
		return
	}

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	var jwtExpSecond int
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}
	cfg.JWTExp = time.Duration(jwtExpSecond) * time.Second

	// Payout policy config
	cfg.AddressPrefix = getEnv("WITHDRAWAL_ADDRESS_PREFIX", "T")
	if cfg.MinWithdrawal, err = strconv.ParseFloat(getEnv("MIN_WITHDRAWAL", "2000"), 64); err != nil {
		return
	}
	if cfg.AddressLength, err = strconv.Atoi(getEnv("WITHDRAWAL_ADDRESS_LENGTH", "34")); err != nil {
		return
	}
	if cfg.HistoryLimit, err = strconv.Atoi(getEnv("WITHDRAWAL_HISTORY_LIMIT", "50")); err != nil {
		return
	}
	if cfg.MinBet, err = strconv.ParseFloat(getEnv("MIN_BET", "10"), 64); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, the Telegram reviewer
// bot, and the HTTP server. It sets up routes, applies middleware, and
// handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PgUser, cfg.PgPassword, cfg.PgHost, cfg.PgPort, cfg.PgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", cfg.PgHost, cfg.PgPort, cfg.PgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PgMaxOpenConns)
	db.SetMaxIdleConns(cfg.PgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for the ledger entry stream
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(fmt.Sprintf("%s:%d", cfg.KafkaHost, cfg.KafkaPort)),
		Topic:    cfg.KafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Initialize JWT service
	jwtService := jwt.New(cfg.JWTSecretKey, cfg.JWTExp)

	// Initialize repositories
	accountRepo := repositories.NewAccountRepository(db)
	ledgerRepo := repositories.NewLedgerRepository(db)
	withdrawalRepo := repositories.NewWithdrawalRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	balanceCache := repositories.NewBalanceCacheRepository(rdb, cfg.BalanceCacheExp)

	// Initialize services
	dispatcher := services.NewRetryDispatcher(3, 2*time.Second)
	balanceService := services.NewBalanceService(db, accountRepo, ledgerRepo, balanceCache, kafkaWriter)
	settlementService := services.NewSettlementService(balanceService, cfg.MinBet)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtService)
	notificationService := services.NewNotificationService(notificationRepo)

	// The Telegram reviewer bot is optional: without a token reviewers use
	// the admin HTTP routes and users rely on the notifications endpoint.
	var reviewerBot *bot.Bot
	var reviewSender services.ReviewSender
	var userSender services.UserSender
	if cfg.TelegramToken != "" {
		api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
		if err != nil {
			return fmt.Errorf("Telegram bot init error: %w", err)
		}
		reviewerBot = bot.New(api, cfg.ReviewerChatID, nil)
		reviewSender = reviewerBot
		userSender = reviewerBot
	}

	withdrawalService := services.NewWithdrawalService(
		balanceService, withdrawalRepo, userReadRepo, reviewSender, dispatcher,
		services.WithdrawalPolicy{
			MinAmount:     cfg.MinWithdrawal,
			AddressPrefix: cfg.AddressPrefix,
			AddressLength: cfg.AddressLength,
			HistoryLimit:  cfg.HistoryLimit,
		},
	)
	approvalService := services.NewApprovalService(
		db, withdrawalRepo, notificationRepo, balanceService, userReadRepo, userSender, dispatcher,
	)
	if reviewerBot != nil {
		reviewerBot.SetApprover(approvalService)
	}

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	balanceHandler := handlers.NewGetBalanceHandler(balanceService, jwtService)
	ledgerHandler := handlers.NewLedgerHistoryHandler(balanceService, jwtService)
	betHandler := handlers.NewPlaceBetHandler(settlementService, jwtService)
	settleHandler := handlers.NewSettleRoundHandler(settlementService, jwtService)
	withdrawHandler := handlers.NewWithdrawHandler(withdrawalService, jwtService)
	withdrawHistoryHandler := handlers.NewWithdrawHistoryHandler(withdrawalService, jwtService)
	unreadHandler := handlers.NewUnreadNotificationsHandler(notificationService, jwtService)
	markReadHandler := handlers.NewMarkNotificationReadHandler(notificationService, jwtService)
	markAllReadHandler := handlers.NewMarkAllNotificationsReadHandler(notificationService, jwtService)
	approveHandler := handlers.NewApproveWithdrawalHandler(approvalService)
	rejectHandler := handlers.NewRejectWithdrawalHandler(approvalService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api", func(api chi.Router) {
		// Public routes
		handlers.RegisterRegisterHandler(api, registerHandler)
		handlers.RegisterLoginHandler(api, loginHandler)

		// Protected routes with JWT middleware
		api.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(jwtService))
			handlers.RegisterGetBalanceHandler(r, balanceHandler)
			handlers.RegisterLedgerHistoryHandler(r, ledgerHandler)
			handlers.RegisterGameHandlers(r, betHandler, settleHandler)
			handlers.RegisterWithdrawHandlers(r, withdrawHandler, withdrawHistoryHandler)
			handlers.RegisterNotificationHandlers(r, unreadHandler, markReadHandler, markAllReadHandler)
		})

		// Admin decision routes behind the shared bot secret
		api.Group(func(r chi.Router) {
			r.Use(middlewares.BotSecretMiddleware(cfg.BotSecret))
			handlers.RegisterAdminHandlers(r, approveHandler, rejectHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if reviewerBot != nil {
		go reviewerBot.Start(ctxShutdown)
	}

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
