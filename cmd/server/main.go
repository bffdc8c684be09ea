package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nexus-terminal/internal/bot"
	"nexus-terminal/internal/cache"
	"nexus-terminal/internal/config"
	"nexus-terminal/internal/db"
	"nexus-terminal/internal/handler"
	"nexus-terminal/internal/job"
	"nexus-terminal/internal/provider"
	"nexus-terminal/internal/repository"
	"nexus-terminal/internal/service"
	"nexus-terminal/pkg/tracing"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	_ "nexus-terminal/docs"
)

var (
	loadEnvFunc              = godotenv.Load
	loadConfigFunc           = config.Load
	initPostgresFunc         = db.InitPostgres
	initRedisFunc            = cache.InitRedis
	initTracerFunc           = tracing.InitTracer
	newTransactionRepoFunc   = repository.NewTransactionRepository
	newStatusRepoFunc        = repository.NewStatusRepository
	newCoinGeckoProviderFunc = func(tracer trace.Tracer) service.PriceOracle {
		return provider.NewCoinGeckoProvider(tracer)
	}
	newBalanceServiceFunc  = service.NewBalanceService
	newPriceServiceFunc    = service.NewPriceService
	newHistoryServiceFunc  = service.NewHistoryService
	newQuoteServiceFunc    = service.NewQuoteService
	newPricePollerFunc     = job.NewPricePoller
	startPollerFunc        = func(p *job.PricePoller, ctx context.Context) { go p.Start(ctx) }
	startTelegramBotFunc   = bot.StartTelegramBot
	newHandlerFunc         = handler.New
	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           Nexus Terminal API
// @version         1.0
// @description     Multi-chain wallet aggregation API with prices, swaps, and fiat on-ramp metadata.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init Postgres and Redis
	initPostgresFunc(ctx, cfg.DatabaseURL)
	initRedisFunc(ctx, cfg.RedisURL)

	// Init tracing
	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	// Create repositories and run migrations
	var txStore handler.TransactionStore
	var statusStore handler.StatusStore
	if db.Pool != nil {
		txRepo := newTransactionRepoFunc(db.Pool, tracer)
		statusRepo := newStatusRepoFunc(db.Pool, tracer)
		if err := txRepo.RunMigrations(ctx); err != nil {
			log.Fatalf("failed to run transaction migrations: %v", err)
		}
		if err := statusRepo.RunMigrations(ctx); err != nil {
			log.Fatalf("failed to run status migrations: %v", err)
		}
		txStore = txRepo
		statusStore = statusRepo
	}

	// Create services
	balanceService, err := newBalanceServiceFunc(tracer, nil, time.Duration(cfg.AdapterTimeoutSecs)*time.Second)
	if err != nil {
		log.Fatalf("failed to build balance service: %v", err)
	}
	cgProvider := newCoinGeckoProviderFunc(tracer)
	priceService := newPriceServiceFunc(tracer, cgProvider, redisClient())
	historyService := newHistoryServiceFunc(tracer, cgProvider)
	quoteService := newQuoteServiceFunc(tracer, priceService)

	// Start price poller (background goroutine, stopped by ctx cancel)
	poller := newPricePollerFunc(tracer, priceService, cfg.PricePollSecs)
	startPollerFunc(poller, ctx)

	// Start Telegram bot
	startTelegramBotFunc(cfg.TelegramBotToken, priceService)

	// Create handlers and routes
	h := newHandlerFunc(tracer, balanceService, priceService, historyService, quoteService, txStore, statusStore)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("nexus-terminal"))
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "X-API-Key"},
	}))
	r.Use(handler.APIKeyAuth(cfg.APIKey))

	h.RegisterRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}

// redisClient adapts the nilable cache client to the service interface.
// A typed nil inside a non-nil interface would defeat the nil checks.
func redisClient() service.RedisClient {
	if cache.Client == nil {
		return nil
	}
	return cache.Client
}
