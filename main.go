package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"consultly/config"
	"consultly/cron"
	"consultly/database"
	"consultly/database/cache"
	bookingRepoPkg "consultly/database/repository/booking"
	consultantRepoPkg "consultly/database/repository/consultant"
	draftRepoPkg "consultly/database/repository/draft"
	userRepoPkg "consultly/database/repository/user"
	"consultly/handlers"
	"consultly/middleware"
	"consultly/routes"
	"consultly/services/booking"
	"consultly/services/notification"
	"consultly/services/payment"
	"consultly/services/planner"
	"consultly/services/tasks"
	"consultly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	mongoClient := database.InitDB(logger)
	db := database.DB()
	cacheClient := utils.GetCacheClient()
	draftClient := utils.GetDraftCacheClient()

	stripe.Key = config.AppConfig.StripeKey
	if stripe.Key == "" {
		logger.Warn("STRIPE_KEY is not set; paid bookings will fail to open payment orders")
	}

	// repositories.
	consultantRepo := consultantRepoPkg.NewMongoConsultantRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	draftRepo := draftRepoPkg.NewRedisDraftRepo(draftClient, config.AppConfig.DraftTTL)

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 30*time.Second)
	for name, ensure := range map[string]func(context.Context) error{
		"consultants": consultantRepo.EnsureIndexes,
		"bookings":    bookingRepo.EnsureIndexes,
		"users":       userRepo.EnsureIndexes,
	} {
		if err := ensure(indexCtx); err != nil {
			logger.Error("Failed to ensure indexes", zap.String("collection", name), zap.Error(err))
		}
	}
	cancelIndexes()

	bookedCache := &cache.BookedSlotCache{
		Source: bookingRepo,
		Client: cacheClient,
		TTL:    config.AppConfig.BookedCacheTTL,
		Logger: logger,
	}

	// services.
	location := config.Location()
	slotPlanner := &planner.Planner{
		Consultants:  consultantRepo,
		Booked:       bookedCache,
		Location:     location,
		WindowDays:   config.AppConfig.BookingWindowDays,
		FetchTimeout: config.AppConfig.SlotFetchTimeout,
		Logger:       logger,
	}

	queueClient := asynq.NewClient(cron.QueueRedisOpt())
	defer queueClient.Close()

	notificationService := notification.NewLogNotificationService(logger)
	reminderWorker := cron.InitReminderWorker(notificationService, logger)

	bookingService := &booking.DefaultBookingService{
		Consultants:  consultantRepo,
		Bookings:     bookingRepo,
		Users:        userRepo,
		Drafts:       draftRepo,
		Cache:        bookedCache,
		Payments:     payment.NewStripeGateway(logger),
		Reminders:    &tasks.AsynqReminderScheduler{Client: queueClient},
		Location:     location,
		Currency:     config.AppConfig.PaymentCurrency,
		ReminderLead: config.AppConfig.ReminderLead,
		Logger:       logger,
	}

	// Assemble the handler bundle.
	handlerBundle := handlers.NewHandlerBundle(
		&handlers.PlannerHandler{
			Planner:      slotPlanner,
			Availability: consultantRepo,
			Users:        userRepo,
		},
		&handlers.BookingHandler{Service: bookingService},
		&handlers.HealthHandler{Status: utils.GetHealthStatus},
	)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, 30*time.Second, []*redis.Client{cacheClient, draftClient}, mongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr), zap.String("timezone", location.String()))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	reminderWorker.Shutdown()
	if err := mongoClient.Disconnect(ctx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
