// internal/app/server.go
package app

import (
	"context"
	"fmt"
	"log"

	"bookings-service/internal/config"
	"bookings-service/internal/db"
	authHandler "bookings-service/internal/handlers/auth"
	sessionHandler "bookings-service/internal/handlers/session"
	teacherHandler "bookings-service/internal/handlers/teacher"
	userHandler "bookings-service/internal/handlers/user"
	"bookings-service/internal/middleware"
	"bookings-service/internal/pkg/jwt"
	"bookings-service/internal/repository/postgres"
	authUsecase "bookings-service/internal/service/auth"
	sessionUsecase "bookings-service/internal/service/session"
	teacherUsecase "bookings-service/internal/service/teacher"
	userUsecase "bookings-service/internal/service/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- PostgreSQL -----
	pool, err := db.Connect(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	if err := db.RunMigrations(s.cfg.DatabaseURL, s.cfg.MigrationsPath); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- JWT -----
	tokenGenerator := jwt.NewGenerator(s.cfg.JWT)
	tokenVerifier := jwt.NewVerifier(s.cfg.JWT, logger)

	// ----- Repositories -----
	dbWrapper := postgres.NewDB(pool)
	userRepo := postgres.NewUserRepository(pool)
	teacherRepo := postgres.NewTeacherRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool, dbWrapper)

	// ----- Services (Usecases) -----
	authService := authUsecase.NewAuthService(userRepo, tokenGenerator, logger)
	sessionService := sessionUsecase.NewSessionService(sessionRepo, userRepo, teacherRepo, logger)
	teacherService := teacherUsecase.NewTeacherService(teacherRepo)
	userService := userUsecase.NewUserService(userRepo, logger)

	// ----- Handlers -----
	authHandlerInst := authHandler.NewAuthHandler(authService, logger)
	sessionHandlerInst := sessionHandler.NewSessionHandler(sessionService)
	teacherHandlerInst := teacherHandler.NewTeacherHandler(teacherService)
	userHandlerInst := userHandler.NewUserHandler(userService)

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(tokenVerifier, userRepo, logger)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		AuthHandler:    authHandlerInst,
		SessionHandler: sessionHandlerInst,
		TeacherHandler: teacherHandlerInst,
		UserHandler:    userHandlerInst,
		AuthMiddleware: authMiddleware,
	}
	SetupRouter(s.engine, handlers)

	// ----- Start HTTP -----
	log.Printf("server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}
