package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yeabnoah/nerdspace/social-graph-service/internal/config"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/consumer"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/domain"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/handler"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/notifier"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/reconciler"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/repository"
	"github.com/yeabnoah/nerdspace/social-graph-service/internal/service"
	"github.com/yeabnoah/nerdspace/social-graph-service/pkg/database"
	"github.com/yeabnoah/nerdspace/social-graph-service/pkg/jwt"
	pkglog "github.com/yeabnoah/nerdspace/social-graph-service/pkg/log"
	"github.com/yeabnoah/nerdspace/social-graph-service/pkg/middleware"
	"github.com/yeabnoah/nerdspace/social-graph-service/pkg/pubsub"
	"github.com/yeabnoah/nerdspace/social-graph-service/pkg/storage"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	// 2. Initialize structured logger
	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Level == "debug",
		ServiceName: "social-graph-service",
	})
	logger := pkglog.L()

	// 3. Init DB (GORM, auto-migrate edges and notifications)
	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		FilePath:        cfg.Database.FilePath,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Log.Level,
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to get underlying sql.DB")
	}
	defer sqlDB.Close()

	models := []interface{}{&domain.EdgeModel{}, &domain.NotificationModel{}}
	if cfg.Database.MigrateReadModels {
		// Local setups without the account service own the read models too.
		models = append(models, domain.ReadModels()...)
	}
	if err := database.AutoMigrate(db, models...); err != nil {
		logger.Fatal().Err(err).Msg("failed to auto-migrate")
	}
	logger.Info().Bool("read_models", cfg.Database.MigrateReadModels).Msg("database migration completed")

	// 4. Init notification publisher
	publisher, err := pubsub.NewPublisher(cfg.Publisher)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.Publisher.Driver).Msg("failed to create publisher")
	}
	defer publisher.Close()
	logger.Info().Str("driver", cfg.Publisher.Driver).Msg("publisher ready")

	// 5. Init avatar URL signer
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	images, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("failed to create storage")
	}

	// 6. Create repos, notifier, svc
	edgeRepo := repository.NewGormEdgeRepository(db)
	userRepo := repository.NewGormUserRepository(db)
	notificationRepo := repository.NewGormNotificationRepository(db)

	svc := service.NewGraphService(service.Deps{
		Edges:    edgeRepo,
		Users:    userRepo,
		Projects: repository.NewProjectChecker(db),
		Posts:    repository.NewPostChecker(db),
		Notifier: notifier.New(userRepo, notificationRepo, publisher, cfg.Database.StoreTimeout),
		Images:   images,
	}, service.Config{
		StoreTimeout:      cfg.Database.StoreTimeout,
		DefaultPageSize:   cfg.Graph.DefaultPageSize,
		MaxPageSize:       cfg.Graph.MaxPageSize,
		RecommendPageSize: cfg.Graph.RecommendPageSize,
		ImageURLTTL:       cfg.Storage.PresignTTL,
	})

	// 7. Create JWT auth middleware
	verifier, err := newVerifier(cfg.Auth)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create token verifier")
	}
	authMiddleware := middleware.NewAuthMiddleware(verifier)

	// 8. Init Kafka consumer
	var kafkaConsumer *consumer.ConfluentConsumer
	if cfg.Kafka.Brokers != "" {
		kc, err := consumer.NewConfluentConsumer(
			cfg.Kafka.Brokers,
			cfg.Kafka.UsersTopic,
			cfg.Kafka.GroupID,
			svc, // service implements CDCEventHandler
		)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to create kafka consumer, CDC updates disabled")
		} else {
			if err := kc.Start(ctx); err != nil {
				logger.Warn().Err(err).Msg("failed to start kafka consumer")
			} else {
				kafkaConsumer = kc
				logger.Info().Str("topic", cfg.Kafka.UsersTopic).Msg("kafka CDC consumer started")
			}
		}
	} else {
		logger.Warn().Msg("KAFKA_BROKERS not configured; CDC consumer disabled")
	}

	// 9. Init reconciler and start
	rec := reconciler.New(edgeRepo, cfg.Reconciler)
	rec.Start(ctx)
	logger.Info().Dur("interval", cfg.Reconciler.Interval).Msg("reconciler started")

	// 10. Setup Gin router + HTTP server
	httpHandler := handler.NewHandler(svc, authMiddleware)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(pkglog.GinMiddleware(logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	httpHandler.RegisterRoutes(r)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		logger.Info().Str("addr", addr).Msg("social-graph-service starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// 11. Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutdown signal received")

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)

		// drain HTTP before stopping background work
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("HTTP server forced to shutdown")
		}

		rec.Stop()
		<-rec.Done()

		cancel()
		if kafkaConsumer != nil {
			if err := kafkaConsumer.Close(); err != nil {
				logger.Warn().Err(err).Msg("error closing kafka consumer")
			}
		}
	}()

	select {
	case <-shutdownDone:
		logger.Info().Msg("social-graph-service stopped")
	case <-time.After(30 * time.Second):
		logger.Warn().Msg("shutdown timed out after 30s")
	}
}

// newVerifier loads the identity provider's public key from config, preferring
// the inline PEM over the file.
func newVerifier(cfg config.AuthConfig) (*jwt.Verifier, error) {
	pem := []byte(cfg.JWTPublicKey)
	if len(pem) == 0 {
		if cfg.JWTPublicKeyFile == "" {
			return nil, errors.New("auth.jwt_public_key or auth.jwt_public_key_file is required")
		}
		b, err := os.ReadFile(cfg.JWTPublicKeyFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt public key: %w", err)
		}
		pem = b
	}
	return jwt.NewVerifier(pem, cfg.Issuer)
}
