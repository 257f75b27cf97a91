// internal/app/router.go
package app

import (
	authHandler "bookings-service/internal/handlers/auth"
	sessionHandler "bookings-service/internal/handlers/session"
	teacherHandler "bookings-service/internal/handlers/teacher"
	userHandler "bookings-service/internal/handlers/user"
	"bookings-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	AuthHandler    *authHandler.AuthHandler
	SessionHandler *sessionHandler.SessionHandler
	TeacherHandler *teacherHandler.TeacherHandler
	UserHandler    *userHandler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	api := r.Group("/api")

	// The authentication pipeline runs on every /api request and is
	// fail-open; RequireAuth on the protected groups is the fail-closed
	// counterpart.
	api.Use(h.AuthMiddleware.Authenticate())

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ==================== Public Auth Routes ====================
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.AuthHandler.Login)
		auth.POST("/register", h.AuthHandler.Register)
	}

	// ==================== Sessions ====================
	sessions := api.Group("/session")
	sessions.Use(h.AuthMiddleware.RequireAuth())
	{
		sessions.GET("", h.SessionHandler.FindAll)
		sessions.GET("/:id", h.SessionHandler.FindByID)
		sessions.POST("", h.SessionHandler.Create)
		sessions.PUT("/:id", h.SessionHandler.Update)
		sessions.DELETE("/:id", h.SessionHandler.Delete)
		sessions.POST("/:id/participate/:userId", h.SessionHandler.Participate)
		sessions.DELETE("/:id/participate/:userId", h.SessionHandler.NoLongerParticipate)
	}

	// ==================== Teachers ====================
	teachers := api.Group("/teacher")
	teachers.Use(h.AuthMiddleware.RequireAuth())
	{
		teachers.GET("", h.TeacherHandler.FindAll)
		teachers.GET("/:id", h.TeacherHandler.FindByID)
	}

	// ==================== Users ====================
	users := api.Group("/user")
	users.Use(h.AuthMiddleware.RequireAuth())
	{
		users.GET("/:id", h.UserHandler.FindByID)
		users.DELETE("/:id", h.UserHandler.Delete)
	}
}
