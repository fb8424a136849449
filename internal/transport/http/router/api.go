package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"store-console/internal/core/auth"
	"store-console/internal/core/config"
	"store-console/internal/transport/http/handler"
	mdw "store-console/internal/transport/http/middleware"
)

type Handlers struct {
	Auth  *handler.AuthHandler
	User  *handler.UserHandler
	Store *handler.StoreHandler
	Event *handler.EventHandler
}

func New(l *zap.Logger, jwter *auth.JWTer, h Handlers, rdb *redis.Client, lim config.Limit) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(rate.Limit(lim.RPS), lim.Burst),
		mdw.ConcurrencyLimit(int64(lim.MaxConcurrent)),
		mdw.MaxBodyBytes(int64(lim.MaxBodyMB)<<20),
		mdw.Timeout(time.Duration(lim.RequestTimeoutSec)*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// 认证
	loginGuard := mdw.LoginGuard(rdb, lim.LoginAttempts,
		time.Duration(lim.LoginWindowSec)*time.Second, l)
	api.POST("/auth/login", loginGuard, h.Auth.Login)
	api.POST("/auth/register", h.Auth.Register)

	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter))
	authed.GET("/auth/me", h.Auth.Me)

	// 门店（沿用旧系统：不要求登录）
	api.GET("/stores", h.Store.List)
	api.GET("/stores/:code", h.Store.Get)
	api.POST("/stores", h.Store.Add)
	api.POST("/stores/import", h.Store.Import)
	api.PUT("/stores/:code", h.Store.Update)
	api.DELETE("/stores/:code", h.Store.Delete)

	// 用户管理（细粒度权限在 service 层裁决）
	authed.GET("/users", h.User.List)
	authed.GET("/users/:userId", h.User.Get)
	authed.POST("/users", h.User.Create)
	authed.PUT("/users/:userId", h.User.Update)
	authed.DELETE("/users/:userId", h.User.Delete)

	// 审计流水
	authed.GET("/events", h.Event.List)
	authed.GET("/events/export", h.Event.Export)

	return r
}
