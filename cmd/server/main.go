package main

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shubhpanwar/shophub-vibrant-market/config"
	"github.com/shubhpanwar/shophub-vibrant-market/internal/catalog"
	"github.com/shubhpanwar/shophub-vibrant-market/internal/delivery"
	"github.com/shubhpanwar/shophub-vibrant-market/internal/domain"
	"github.com/shubhpanwar/shophub-vibrant-market/internal/repository"
	"github.com/shubhpanwar/shophub-vibrant-market/internal/usecase"
	"github.com/shubhpanwar/shophub-vibrant-market/pkg/db"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Unknown log level '%s', defaulting to info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.Info("Starting ShopHub service...")

	// --- Local State Database ---
	database, err := db.Connect(cfg.DataDir)
	if err != nil {
		logger.Fatalf("FATAL: Failed to open state database: %v", err)
	}
	defer database.Close()
	logger.Info("State database opened.")

	// --- Dependency Injection ---
	// Repository Layer
	stateStore, err := repository.NewStateStore(database, logger)
	if err != nil {
		logger.Fatalf("FATAL: Failed to initialize state storage: %v", err)
	}
	userDirectory := repository.NewMemoryUserDirectory(catalog.SeedUsers(), logger)
	sessionRepo := repository.NewStateSessionRepository(stateStore, logger)
	cartRepo := repository.NewStateCartRepository(stateStore, logger)
	wishlistRepo := repository.NewStateWishlistRepository(stateStore, logger)
	logger.Info("Repositories initialized.")

	// Catalog
	cat := catalog.New()
	logger.Infof("Catalog loaded: %d products, %d categories",
		len(cat.Products()), len(cat.Categories()))

	// Usecase Layer
	var verifier domain.CredentialVerifier = usecase.PlainVerifier{}
	if strings.EqualFold(cfg.AuthScheme, "bcrypt") {
		verifier = usecase.BcryptVerifier{}
	}
	sessionStore := usecase.NewSessionStore(userDirectory, sessionRepo, verifier, cfg.LoginLatency, logger)
	cartStore := usecase.NewCartStore(cartRepo, logger)
	wishlistStore := usecase.NewWishlistStore(wishlistRepo, logger)
	logger.Info("Stores initialized.")

	cartStore.Subscribe(func() {
		logger.WithFields(logrus.Fields{
			"count": cartStore.CartCount(),
			"total": cartStore.CartTotal(),
		}).Debug("Cart changed")
	})
	wishlistStore.Subscribe(func() {
		logger.WithField("count", wishlistStore.WishlistCount()).Debug("Wishlist changed")
	})
	sessionStore.Subscribe(func() {
		logger.WithField("active", sessionStore.CurrentSession() != nil).Debug("Session changed")
	})

	authHandler := delivery.NewAuthHandler(sessionStore, logger)
	cartHandler := delivery.NewCartHandler(cartStore, cat, logger)
	wishlistHandler := delivery.NewWishlistHandler(wishlistStore, cartStore, cat, logger)
	productHandler := delivery.NewProductHandler(cat, logger)
	logger.Info("Handlers initialized.")

	router := gin.Default()

	router.Use(gin.Recovery())

	router.Use(func(c *gin.Context) {
		logger.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"ip":     c.ClientIP(),
		}).Info("Request received")
		c.Next()
		logger.WithFields(logrus.Fields{
			"status": c.Writer.Status(),
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Info("Request completed")
	})

	// Route Registration
	authHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	wishlistHandler.RegisterRoutes(router)
	productHandler.RegisterRoutes(router)
	logger.Info("API Routes registered.")

	// Start Server
	logger.Infof("Starting server on port %s", cfg.HTTPPort)
	if err := router.Run(cfg.HTTPPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
