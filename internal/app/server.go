package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nxorax_backend/internal/auth"
	"nxorax_backend/internal/chat"
	"nxorax_backend/internal/config"
	"nxorax_backend/internal/course"
	"nxorax_backend/internal/dashboard"
	"nxorax_backend/internal/domain"
	"nxorax_backend/internal/firebase"
	"nxorax_backend/internal/jobs"
	"nxorax_backend/internal/middleware"
	"nxorax_backend/internal/replica"
	"nxorax_backend/internal/routing"
	"nxorax_backend/internal/settings"
	"nxorax_backend/internal/user"
)

// Server struct holds the dependencies for the HTTP server.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	cfg        *config.Config
	logger     *zap.Logger
	mirror     *replica.Mirror

	chatRetentionJob *jobs.ChatRetentionJob

	mirrorCancel context.CancelFunc
}

// NewServer creates a new instance of our application server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	firebaseService *firebase.Service,
	mirror *replica.Mirror,
	userService user.Service,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	courseHandler *course.Handler,
	settingsHandler *settings.Handler,
	chatHandler *chat.Handler,
	dashboardHandler *dashboard.Handler,
	routingHandler *routing.Handler,
	chatRetentionJob *jobs.ChatRetentionJob,
) (*Server, error) {
	gin.SetMode(cfg.GinMode)
	router := gin.New()

	// --- Global Middleware ---
	router.Use(middleware.ZapLogger(logger, cfg))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	corsConfig.AllowCredentials = true
	corsConfig.ExposeHeaders = []string{"Content-Length", middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	authMW := middleware.Auth(firebaseService, userService, logger.Named("AuthMiddleware"))
	optionalAuthMW := middleware.OptionalAuth(firebaseService, userService, logger.Named("AuthMiddleware"))
	adminMW := middleware.RequireRoles(domain.RoleAdmin)
	manageMW := middleware.RequireRoles(domain.RoleAdmin, domain.RoleCreator)

	// --- Setup Routes ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "Nxorax API is healthy!"})
	})

	v1 := router.Group("/api/v1")

	authHandler.RegisterRoutes(v1, authMW)
	userHandler.RegisterRoutes(v1, authMW, adminMW)
	courseHandler.RegisterRoutes(v1, optionalAuthMW, authMW, manageMW)
	settingsHandler.RegisterRoutes(v1, authMW, adminMW)
	chatHandler.RegisterRoutes(v1, authMW)
	dashboardHandler.RegisterRoutes(v1, authMW)
	routingHandler.RegisterRoutes(v1, optionalAuthMW)

	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer:       httpServer,
		router:           router,
		cfg:              cfg,
		logger:           logger,
		mirror:           mirror,
		chatRetentionJob: chatRetentionJob,
	}, nil
}

// Start brings up the snapshot mirror, the retention job, and the HTTP
// listener. It blocks until the listener stops.
func (s *Server) Start() error {
	mirrorCtx, cancel := context.WithCancel(context.Background())
	s.mirrorCancel = cancel
	s.mirror.Start(mirrorCtx)

	if s.chatRetentionJob != nil {
		if err := s.chatRetentionJob.SetupAndStart(); err != nil {
			s.logger.Error("Failed to setup and start chat retention job", zap.Error(err))
		}
	} else {
		s.logger.Info("Chat retention job is not configured, skipping start.")
	}

	s.logger.Info("HTTP Server starting",
		zap.String("address", s.httpServer.Addr),
		zap.String("gin_mode", s.cfg.GinMode),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Failed to start HTTP server", zap.Error(err))
		return err
	}
	s.logger.Info("HTTP Server stopped gracefully or an error occurred")
	return nil
}

// Shutdown stops background work and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Attempting graceful server shutdown...")
	if s.chatRetentionJob != nil {
		s.chatRetentionJob.Stop()
	}
	if s.mirrorCancel != nil {
		s.mirrorCancel()
	}
	s.mirror.Stop()
	return s.httpServer.Shutdown(ctx)
}
