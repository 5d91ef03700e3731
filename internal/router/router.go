package router

import (
	"fmt"
	"strings"

	"github.com/suvai-store/internal/cache"
	"github.com/suvai-store/internal/config"
	"github.com/suvai-store/internal/constants"
	adminhandlers "github.com/suvai-store/internal/http/handlers/admin"
	publichandlers "github.com/suvai-store/internal/http/handlers/public"
	"github.com/suvai-store/internal/logger"
	"github.com/suvai-store/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the HTTP route tree.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		MessageKey:    "error.login_rate_limited",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// Uploaded catalog and media images.
	r.Static("/uploads", "./uploads")

	apiV1 := r.Group("/api/v1")
	{
		// Storefront, no authentication.
		apiV1.GET("/snacks", publicHandler.ListSnacks)
		apiV1.GET("/snacks/:id", publicHandler.GetSnack)
		apiV1.GET("/coupons/code/:code", publicHandler.CheckCoupon)
		apiV1.GET("/shipping", publicHandler.GetShipping)
		apiV1.GET("/media/menu", publicHandler.ListMenuImages)
		apiV1.GET("/media/reels", publicHandler.ListReels)

		// Guest checkout.
		apiV1.POST("/orders", publicHandler.CreateOrder)
		apiV1.POST("/orders/verify", publicHandler.VerifyPayment)
		apiV1.GET("/orders/:id", publicHandler.GetOrder)

		// Enquiry forms.
		apiV1.POST("/enquiries", publicHandler.CreateEnquiry)
		apiV1.POST("/catering-orders", publicHandler.CreateCateringOrder)
		apiV1.POST("/bulk-orders", publicHandler.CreateBulkOrder)

		// Back office.
		admin := apiV1.Group("/admin")
		{
			admin.POST("/login", RateLimitMiddleware(cache.Client(), adminLoginRule, KeyByIP), adminHandler.Login)

			authorized := admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
			{
				authorized.GET("/me", adminHandler.Me)
				authorized.PUT("/password", adminHandler.ChangePassword)

				authorized.GET("/dashboard", adminHandler.GetDashboard)

				authorized.GET("/orders", adminHandler.ListOrders)
				authorized.GET("/orders/:id", adminHandler.GetOrder)
				authorized.PUT("/orders/:id/fulfillment", adminHandler.UpdateOrderFulfillment)

				authorized.GET("/snacks", adminHandler.ListSnacks)
				authorized.GET("/snacks/:id", adminHandler.GetSnack)
				authorized.POST("/snacks", adminHandler.CreateSnack)
				authorized.PUT("/snacks/:id", adminHandler.UpdateSnack)
				authorized.PUT("/snacks/:id/enabled", adminHandler.SetSnackEnabled)
				authorized.PUT("/snacks/:id/stock", adminHandler.UpdateSnackStock)
				authorized.DELETE("/snacks/:id", adminHandler.DeleteSnack)

				authorized.GET("/coupons", adminHandler.ListCoupons)
				authorized.GET("/coupons/:id", adminHandler.GetCoupon)
				authorized.POST("/coupons", adminHandler.CreateCoupon)
				authorized.PUT("/coupons/:id", adminHandler.UpdateCoupon)
				authorized.DELETE("/coupons/:id", adminHandler.DeleteCoupon)

				authorized.GET("/shipping", adminHandler.GetShippingConfig)
				authorized.PUT("/shipping", adminHandler.UpdateShippingConfig)

				authorized.GET("/media", adminHandler.ListMedia)
				authorized.POST("/media", adminHandler.CreateMedia)
				authorized.PUT("/media/:id", adminHandler.UpdateMedia)
				authorized.DELETE("/media/:id", adminHandler.DeleteMedia)

				authorized.GET("/enquiries", adminHandler.ListEnquiries)
				authorized.PUT("/enquiries/:id/status", adminHandler.UpdateEnquiryStatus)
				authorized.GET("/catering-orders", adminHandler.ListCateringOrders)
				authorized.PUT("/catering-orders/:id/status", adminHandler.UpdateCateringStatus)
				authorized.GET("/bulk-orders", adminHandler.ListBulkOrders)
				authorized.PUT("/bulk-orders/:id/status", adminHandler.UpdateBulkOrderStatus)

				authorized.POST("/smtp/test", adminHandler.TestSMTP)
			}
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
