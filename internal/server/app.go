// Package server wires the application together: database, migrations, email,
// upstream providers, services, and the HTTP API, with graceful shutdown on
// OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"newssense/internal/logging"
	"newssense/internal/server/config"
	"newssense/internal/server/httpapi"
	"newssense/internal/server/mail"
	"newssense/internal/server/news"
	"newssense/internal/server/repositories/repomanager"
	"newssense/internal/server/sentiment"
	"newssense/internal/server/services"
)

const dbPingTimeout = 5 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	cache  *news.Cache
	server *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := openDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	manager := repomanager.NewPostgresRepositoryManager()

	cache, err := news.NewCache(cfg.RedisAddr, cfg.NewsCacheTTL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("cache init error: %w", err)
	}

	provider, err := sentimentProvider(cfg)
	if err != nil {
		db.Close()
		cache.Close()
		return nil, err
	}

	sender := mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)

	userService := services.NewUserService(db, manager, sender, cfg)
	articleService := services.NewArticleService(db, manager)
	newsService := news.NewService(news.NewClient(cfg.NewsAPIURL, cfg.NewsAPIKey), cache)

	srv := httpapi.NewServer(cfg, logger, userService, articleService, newsService, provider)

	app := &App{config: cfg, logger: logger, db: db, cache: cache, server: srv}

	if err := manager.RunMigrations(context.Background(), db); err != nil {
		app.close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return app, nil
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbPingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func sentimentProvider(cfg *config.Config) (sentiment.Provider, error) {
	switch cfg.SentimentProvider {
	case config.ProviderHuggingFace:
		return sentiment.NewHuggingFaceClient(cfg.HuggingFaceAPIURL, cfg.HuggingFaceAPIKey), nil
	case config.ProviderCohere:
		return sentiment.NewCohereProvider(cfg.CohereAPIKey), nil
	default:
		return nil, fmt.Errorf("unknown sentiment provider: %s", cfg.SentimentProvider)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()
	app.close()
	app.logger.Info(ctx, "App stopped")
}

func (app *App) close() {
	if err := app.cache.Close(); err != nil {
		app.logger.Error(context.Background(), "error closing cache", "error", err.Error())
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error(context.Background(), "error closing db", "error", err.Error())
	}
}
