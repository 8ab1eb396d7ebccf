package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"stayhub/config"
	"stayhub/cron"
	"stayhub/database"
	"stayhub/database/repository"
	"stayhub/handlers"
	"stayhub/middleware"
	"stayhub/routes"
	"stayhub/services/catalog"
	"stayhub/services/payment"
	"stayhub/services/pms"
	"stayhub/services/quote"
	"stayhub/services/search"
	"stayhub/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.New(corsConfig()))

	// Repositories.
	contactRepo := repository.NewPgContactRepo()
	credentialRepo := repository.NewPgCredentialRepo()
	paymentRepo := repository.NewPgPaymentRepo()

	// Collaborator clients.
	gateway := payment.NewClient(
		config.AppConfig.PaymentBaseURL,
		config.AppConfig.PaymentAPIKey,
		config.AppConfig.PaymentSignatureKey,
		config.AppConfig.PaymentCollectionID,
		logger,
	)
	pmsClient := pms.NewClient(config.AppConfig.PMSBaseURL, credentialRepo, logger)

	// Catalog source with optional read-through cache.
	var source catalog.Source = catalog.NewStaticSource(nil)
	if config.AppConfig.PMSBaseURL != "" && config.AppConfig.DefaultPropertyID != "" {
		source = catalog.NewPMSSource(pmsClient, config.AppConfig.DefaultPropertyID)
	}
	var invalidator handlers.CatalogInvalidator
	if ttl := config.AppConfig.CatalogCacheTTL; ttl > 0 {
		cached := catalog.NewCachedSource(source, utils.GetCacheClient(), time.Duration(ttl)*time.Second, logger)
		source = cached
		invalidator = cached
	}

	// Core services.
	aggregator := search.NewAggregator(source, logger)
	calculator := quote.NewCalculator(config.AppConfig.TaxRate)

	// Background payment reconciliation.
	queueClient := cron.NewQueueClient()
	defer queueClient.Close()
	cron.InitPaymentWorker(paymentRepo)

	// Handlers.
	handlerSet := &routes.Handlers{
		Search:   handlers.NewSearchHandler(aggregator, logger),
		Quote:    handlers.NewQuoteHandler(calculator, quote.ParsePolicy(config.AppConfig.CartPolicy), logger),
		Payment:  handlers.NewPaymentHandler(gateway, queueClient, paymentRepo, logger),
		Property: handlers.NewPropertyHandler(pmsClient, logger),
		Contact:  handlers.NewContactHandler(contactRepo, logger),
		Catalog:  handlers.NewCatalogHandler(invalidator, logger),
	}
	routes.RegisterRoutes(router, handlerSet)

	utils.StartHealthMonitor(database.GetPool(), utils.GetCacheClient())

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("listening on :%s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quitCh := make(chan os.Signal, 1)
	signal.Notify(quitCh, syscall.SIGINT, syscall.SIGTERM)
	<-quitCh
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("forced shutdown: %v", err)
	}
	database.GetPool().Close()
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	origins := strings.Split(config.AppConfig.AllowedOrigins, ",")
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	return cfg
}
