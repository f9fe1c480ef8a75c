package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"paletto-cards.backend/internal/config"
	domainRepos "paletto-cards.backend/internal/domain/repositories"
	"paletto-cards.backend/internal/infrastructure/localstore"
	"paletto-cards.backend/internal/infrastructure/repositories"
	"paletto-cards.backend/internal/interfaces/http/handlers"
	"paletto-cards.backend/internal/interfaces/http/middleware"
	"paletto-cards.backend/internal/usecases"
	"paletto-cards.backend/pkg/jwt"
	"paletto-cards.backend/pkg/logger"
	"paletto-cards.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	openLocalStore  = localstore.New
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Pick the member persistence backend: postgres via gorm, or the
	// single-file local store.
	var (
		memberRepo  domainRepos.MemberRepository
		settingRepo domainRepos.SettingRepository
		uow         domainRepos.UnitOfWork
	)
	switch cfg.Store.Backend {
	case config.StoreBackendFile:
		store, err := openLocalStore(cfg.Store.FilePath)
		if err != nil {
			return fmt.Errorf("failed to open local store: %w", err)
		}
		memberRepo = store
		settingRepo = store
		uow = localstore.NewUnitOfWork()
		log.Printf("📁 Using local file store at %s", cfg.Store.FilePath)
	case config.StoreBackendPostgres:
		db, err := openDB(cfg.Database.URL())
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		sqlDB, err := getStdDB(db)
		if err != nil {
			return fmt.Errorf("failed to get generic database object: %w", err)
		}
		defer sqlDB.Close()

		if err := sqlDB.Ping(); err != nil {
			log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
		} else {
			log.Println("✅ Connected to PostgreSQL via GORM")
		}

		memberRepo = repositories.NewMemberRepository(db)
		settingRepo = repositories.NewSettingRepository(db)
		uow = repositories.NewUnitOfWork(db)
	default:
		return fmt.Errorf("unknown store backend: %s", cfg.Store.Backend)
	}

	jwtService := jwt.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)

	sessionStore, err := newSessionStore(cfg.Auth.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	memberUsecase := usecases.NewMemberUsecase(memberRepo, uow)
	authUsecase := usecases.NewAuthUsecase(settingRepo, jwtService, sessionStore, cfg.Auth.FallbackPassword, cfg.Auth.SessionTTL)

	memberHandler := handlers.NewMemberHandler(memberUsecase)
	authHandler := handlers.NewAuthHandler(authUsecase)
	exportHandler := handlers.NewExportHandler(memberUsecase)

	sessionAuth := middleware.SessionAuthMiddleware(authUsecase)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerAPIRoutes(r, routeDeps{
		memberHandler: memberHandler,
		authHandler:   authHandler,
		exportHandler: exportHandler,
		sessionAuth:   sessionAuth,
	})

	log.Printf("🚀 Paletto Cards Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
