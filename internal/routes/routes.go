package routes

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/handlers"
	"taskboard/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	authHandler *handlers.AuthHandler,
	projectHandler *handlers.ProjectHandler,
	taskHandler *handlers.TaskHandler,
	commentHandler *handlers.CommentHandler,
	dashboardHandler *handlers.DashboardHandler,
) *gin.Engine {

	// ---- public
	r.POST("/login", authHandler.Login)
	r.POST("/refresh", authHandler.RefreshToken)

	// ---- protected
	r.Use(middleware.AuthMiddleware())

	r.POST("/logout", authHandler.Logout)

	// PROJECTS
	projects := r.Group("/projects")
	{
		projects.POST("/", projectHandler.Create)
		projects.GET("/", projectHandler.List)
		projects.GET("/:id", projectHandler.GetByID)
		projects.PUT("/:id", projectHandler.Update)
		projects.DELETE("/:id", projectHandler.Delete)
	}

	// TASKS
	tasks := r.Group("/tasks")
	{
		tasks.POST("/", taskHandler.Create)
		tasks.GET("/", taskHandler.List)
		tasks.GET("/:id", taskHandler.GetByID)
		tasks.PUT("/:id", taskHandler.Update)
		tasks.DELETE("/:id", taskHandler.Delete)
		tasks.POST("/:id/assign", taskHandler.Assign)
		tasks.POST("/:id/images", taskHandler.UploadImage)
		tasks.GET("/:id/images", taskHandler.ListImages)
		tasks.GET("/:id/comments", commentHandler.ListByTask)
		tasks.POST("/:id/comments", commentHandler.Create)
	}

	// COMMENTS
	r.DELETE("/comments/:id", commentHandler.Delete)

	// DASHBOARD
	r.GET("/dashboard", dashboardHandler.Index)
	r.GET("/dashboard/export", dashboardHandler.Export)

	return r
}
