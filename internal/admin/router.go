package admin

import (
	"railbook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes configures admin user management routes
func SetupAdminRoutes(rg *gin.RouterGroup, controller *Controller) {
	admin := rg.Group("/admin")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		admin.GET("/users", controller.ListUsers)                 // GET /api/v1/admin/users
		admin.PATCH("/users/:id/role", controller.UpdateUserRole) // PATCH /api/v1/admin/users/:id/role
	}
}
