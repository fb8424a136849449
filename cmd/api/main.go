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

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"store-console/internal/bootstrap"
	"store-console/internal/core/auth"
	"store-console/internal/core/config"
	"store-console/internal/core/database"
	"store-console/internal/core/logger"
	"store-console/internal/core/server"
	"store-console/internal/domain"
	"store-console/internal/repo"
	"store-console/internal/service"
	"store-console/internal/transport/http/handler"
	"store-console/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))

	var log *zap.Logger
	var cleanup func()
	if cfg.Log.File.Enable {
		log, cleanup = logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, logger.FileRotate{
			Enable:     true,
			Filename:   cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		})
	} else {
		log, cleanup = logger.New(cfg.Log.Level, cfg.Log.JSON)
	}
	defer cleanup()

	if cfg.JWT.Secret == "" {
		log.Fatal("jwt secret not configured (APP_JWT_SECRET)")
	}

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.User{}, &domain.Store{}, &domain.Event{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	// 依赖
	userRepo := repo.NewUserRepo(db)
	storeRepo := repo.NewStoreRepo(db)
	eventRepo := repo.NewEventRepo(db)

	if err := bootstrap.Seed(userRepo, cfg.Seed, log); err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.TTLHours) * time.Hour,
	}

	eventSvc := service.NewEventService(eventRepo, log)
	authSvc := service.NewAuthService(userRepo, eventSvc, jwter)
	userSvc := service.NewUserService(userRepo, eventSvc)
	storeSvc := service.NewStoreService(storeRepo)

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	r := router.New(log, jwter, router.Handlers{
		Auth:  handler.NewAuthHandler(authSvc, log),
		User:  handler.NewUserHandler(userSvc, log),
		Store: handler.NewStoreHandler(storeSvc, log),
		Event: handler.NewEventHandler(eventSvc, log),
	}, rdb, cfg.Limit)

	// 端口占用时向上探测
	ln, port, err := server.Listen(cfg.App.HTTP.Host, cfg.App.HTTP.Port, cfg.App.HTTP.PortProbe, log)
	if err != nil {
		log.Fatal("listen failed", zap.Error(err))
	}

	srv := server.BuildServer(r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(port)
	log.Info("api starting",
		zap.String("addr", server.Addr(cfg.App.HTTP.Host, port)),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api", baseURL+"/api"),
	)

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start FAILED", zap.Error(err))
		}
	}()
	log.Info("api started SUCCESS")

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Host:               cfg.DB.Host,
		Port:               cfg.DB.Port,
		User:               cfg.DB.User,
		Password:           cfg.DB.Password,
		Name:               cfg.DB.Name,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
