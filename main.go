package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"webshop/catalog"
	"webshop/controllers"
	"webshop/database"
	"webshop/middleware"
	"webshop/repository"
	"webshop/routes"
	"webshop/services"
	"webshop/session"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using system environment variables")
	}

	cfg, err := LoadConfig()
	if err != nil {
		logger.Fatal("Config load failed", zap.Error(err))
	}

	// --- MongoDB setup ---
	client, db, err := database.Connect(context.Background(), cfg.MongoURI, cfg.MongoDBName)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			logger.Error("MongoDB disconnect failed", zap.Error(err))
		}
	}()

	// --- Static catalog ---
	cat, err := catalog.Load(cfg.ProductsFile)
	if err != nil {
		logger.Fatal("Failed to load product catalog", zap.Error(err))
	}

	// --- Service wiring ---
	userRepo := repository.NewMongoUserRepository(db)
	passwordService := services.NewPasswordService()
	authService := services.NewAuthService(userRepo, passwordService)
	cartService := services.NewCartService(userRepo)
	sessionManager := session.NewManager(cfg.SessionSecret, cfg.Env == "production")

	ctrl := routes.Controllers{
		Pages:   controllers.NewPageController(userRepo, cat, sessionManager, logger),
		Auth:    controllers.NewAuthController(authService, sessionManager, logger),
		Profile: controllers.NewProfileController(userRepo, passwordService, sessionManager, logger),
		Cart:    controllers.NewCartController(cartService, sessionManager, logger),
	}

	// --- HTTP router ---
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.LoadHTMLGlob("templates/*.html")

	routes.RegisterRoutes(r, ctrl)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	go func() {
		logger.Info("Webshop server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down webshop server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Webshop server stopped gracefully")
}
