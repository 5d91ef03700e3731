package provider

import (
	"time"

	"github.com/suvai-store/internal/cache"
	"github.com/suvai-store/internal/config"
	"github.com/suvai-store/internal/logger"
	"github.com/suvai-store/internal/models"
	"github.com/suvai-store/internal/payment/razorpay"
	"github.com/suvai-store/internal/queue"
	"github.com/suvai-store/internal/repository"
	"github.com/suvai-store/internal/service"
)

// Container wires repositories and services together.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	Gateway     service.PaymentGateway

	// Repositories
	AdminRepo    repository.AdminRepository
	OrderRepo    repository.OrderRepository
	SnackRepo    repository.SnackRepository
	CouponRepo   repository.CouponRepository
	SettingRepo  repository.SettingRepository
	EnquiryRepo  repository.EnquiryRepository
	CateringRepo repository.CateringRepository
	BulkRepo     repository.BulkOrderRepository
	MediaRepo    repository.MediaRepository

	// Services
	AuthService        *service.AuthService
	EmailService       *service.EmailService
	SnackService       *service.SnackService
	CouponService      *service.CouponService
	CouponAdminService *service.CouponAdminService
	ShippingService    *service.ShippingService
	OrderService       *service.OrderService
	CheckoutService    *service.CheckoutService
	EnquiryService     *service.EnquiryService
	MediaService       *service.MediaService
	DashboardService   *service.DashboardService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initGateway()
	c.initRepositories()
	c.initServices()

	return c
}

// initGateway builds the payment client from config. The store can run
// without credentials; checkout then reports the gateway as disabled.
func (c *Container) initGateway() {
	if c.Config.Payment.KeyID == "" || c.Config.Payment.KeySecret == "" {
		logger.Warnw("provider_payment_gateway_disabled", "reason", "missing_credentials")
		return
	}
	client, err := razorpay.NewClient(razorpay.Config{
		KeyID:     c.Config.Payment.KeyID,
		KeySecret: c.Config.Payment.KeySecret,
		Timeout:   time.Duration(c.Config.Payment.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		logger.Errorw("provider_init_payment_gateway_failed", "error", err)
		return
	}
	c.Gateway = client
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.SnackRepo = repository.NewSnackRepository(db)
	c.CouponRepo = repository.NewCouponRepository(db)
	c.SettingRepo = repository.NewSettingRepository(db)
	c.EnquiryRepo = repository.NewEnquiryRepository(db)
	c.CateringRepo = repository.NewCateringRepository(db)
	c.BulkRepo = repository.NewBulkOrderRepository(db)
	c.MediaRepo = repository.NewMediaRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.SnackService = service.NewSnackService(c.SnackRepo)
	c.CouponService = service.NewCouponService(c.CouponRepo)
	c.CouponAdminService = service.NewCouponAdminService(c.CouponRepo)
	c.ShippingService = service.NewShippingService(c.SettingRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.QueueClient)
	c.CheckoutService = service.NewCheckoutService(
		models.DB,
		c.OrderRepo,
		c.SnackRepo,
		c.CouponRepo,
		c.CouponService,
		c.ShippingService,
		c.Gateway,
		c.QueueClient,
		c.Config.Order.PendingExpireMinutes,
	)
	c.EnquiryService = service.NewEnquiryService(c.EnquiryRepo, c.CateringRepo, c.BulkRepo, c.SnackRepo, c.QueueClient)
	c.MediaService = service.NewMediaService(c.MediaRepo)
	c.DashboardService = service.NewDashboardService(c.OrderRepo, c.SnackRepo, c.EnquiryRepo, c.CateringRepo, c.BulkRepo)
}
