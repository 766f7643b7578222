package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/songjournal/internal/config"
	"github.com/MrSnakeDoc/songjournal/internal/httpserver"
	"github.com/MrSnakeDoc/songjournal/internal/httpserver/deps"
	"github.com/MrSnakeDoc/songjournal/internal/index"
	"github.com/MrSnakeDoc/songjournal/internal/journal"
	"github.com/MrSnakeDoc/songjournal/internal/logger"
	"github.com/MrSnakeDoc/songjournal/internal/oembed"
	"github.com/MrSnakeDoc/songjournal/internal/redis"
	"github.com/MrSnakeDoc/songjournal/internal/scheduler"
	"github.com/MrSnakeDoc/songjournal/internal/store/file"
	"github.com/MrSnakeDoc/songjournal/internal/store/memory"
	redisstore "github.com/MrSnakeDoc/songjournal/internal/store/redis"
	"github.com/MrSnakeDoc/songjournal/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	reloader    *scheduler.MoodReloader
}

func New() *App {
	if err := config.LoadDotEnv(os.Getenv("JOURNAL_ENV_FILE")); err != nil {
		panic(fmt.Sprintf("❌ FATAL: %v", err))
	}
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)
	ctx := context.Background()

	var (
		slot        journal.Slot
		redisClient *goredis.Client
		cache       oembed.Cache
	)

	switch cfg.StorageBackend {
	case config.BackendRedis:
		// Fail fast: without redis there is nowhere to keep the journal
		client, err := redis.New(ctx, redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		redisClient = client

		store := redisstore.NewStore(client, cfg.StorageKey)
		slot = store
		if cfg.MetadataCache {
			cache = redisstore.NewMetadataCache(store, cfg.CacheTTL)
		}
	case config.BackendFile:
		slot = file.NewSlot(cfg.StorageFile)
	default:
		loggerClient.Warn("memory backend selected, entries are lost on restart")
		slot = memory.NewSlot()
	}

	j := journal.New(ctx, slot, loggerClient, journal.Options{Location: cfg.Location})

	metadata := oembed.NewClient(oembed.Options{
		Endpoint: cfg.OEmbedEndpoint,
		Timeout:  cfg.OEmbedTimeout,
		Cache:    cache,
	}, loggerClient)

	catalog := index.NewMoodCatalog()

	var (
		reloader      *scheduler.MoodReloader
		reloadTrigger chan struct{}
	)
	if cfg.MoodsFile != "" {
		loggerClient.Info("moods file configured, initializing mood reloader",
			logger.String("file", cfg.MoodsFile))
		reloadTrigger = make(chan struct{}, 1)
		reloader = scheduler.NewMoodReloader(cfg.MoodsFile, catalog, loggerClient, cfg.ReloadInterval, reloadTrigger)
	} else {
		loggerClient.Info("moods file not configured, using built-in moods")
	}

	d := deps.Deps{
		Logger:          loggerClient,
		StartTime:       time.Now(),
		Version:         version.Version,
		Commit:          version.Commit,
		BuildDate:       version.BuildDate,
		GoVersion:       version.GoVersion,
		TimeNow:         time.Now,
		AllowedHosts:    cfg.AllowedHosts,
		AllowedCIDRS:    cfg.AllowedCIDRS,
		TrustProxy:      cfg.TrustProxy,
		Journal:         j,
		Admitter:        journal.NewAdmitter(j, metadata, loggerClient),
		Moods:           catalog,
		RedisClient:     redisClient,
		OEmbedEndpoint:  cfg.OEmbedEndpoint,
		MetadataCache:   cache != nil,
		ReloadTrigger:   reloadTrigger,
		RateLimitBurst:  cfg.RateLimitBurst,
		RateLimitPerMin: cfg.RateLimitPerMin,
	}

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      httpserver.New(cfg, loggerClient, d),
		redisClient: redisClient,
		reloader:    reloader,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting songjournal %s on %s", version.String(), a.cfg.ListenPort)
	a.logger.Info("journal ready",
		logger.String("backend", a.cfg.StorageBackend),
		logger.String("timezone", a.cfg.TimeZone))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.reloader != nil {
		if err := a.reloader.Start(ctx); err != nil {
			return fmt.Errorf("failed to start mood reloader: %w", err)
		}
		a.logger.Info("mood reloader started",
			logger.Duration("interval", a.cfg.ReloadInterval))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	if a.reloader != nil {
		a.reloader.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ songjournal stopped cleanly")
	_ = a.logger.Sync()
	return nil
}
