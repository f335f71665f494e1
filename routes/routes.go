package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/riquelima/gourmetgo/auth"
	"github.com/riquelima/gourmetgo/cart"
	adminController "github.com/riquelima/gourmetgo/controllers/admin"
	cartControllers "github.com/riquelima/gourmetgo/controllers/cart"
	dishController "github.com/riquelima/gourmetgo/controllers/dish"
	orderControllers "github.com/riquelima/gourmetgo/controllers/order"
	settingsController "github.com/riquelima/gourmetgo/controllers/settings"
	"github.com/riquelima/gourmetgo/middleware"
	"github.com/riquelima/gourmetgo/models"
	"github.com/riquelima/gourmetgo/store"
)

// Deps carries everything the route groups need.
type Deps struct {
	Store *store.Store
	Carts *cart.Manager
	Auth  *auth.Service
	Hub   *orderControllers.Hub
}

// SetupRoutes is the single entry-point that wires up the public menu,
// cart, order, and role-gated staff route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	SetupAuthRoutes(r, deps)

	SetupPublicRoutes(r, deps)

	SetupCartRoutes(r, deps)

	SetupStaffRoutes(r, deps)

	SetupAdminRoutes(r, deps)
}

// SetupAuthRoutes registers the login/logout endpoints. No middleware.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.LoginHandler(deps.Auth))
		authGroup.POST("/logout", auth.LogoutHandler(deps.Auth))
		authGroup.GET("/me", auth.MeHandler(deps.Auth))
	}
}

// SetupPublicRoutes registers everything a customer can reach without a
// token: the menu, store settings, and placing/tracking an order.
func SetupPublicRoutes(r *gin.Engine, deps Deps) {
	r.GET("/categories", dishController.GetCategories(deps.Store))
	r.GET("/dishes", dishController.GetDishes(deps.Store))
	r.GET("/dishes/:id", dishController.GetDishByID(deps.Store))

	r.GET("/settings", settingsController.GetSettings(deps.Store))
	r.GET("/settings/status", settingsController.StoreStatus(deps.Store))

	r.POST("/session", cartControllers.CreateSession())

	r.POST("/orders", orderControllers.PlaceOrderHandler(deps.Store, deps.Carts, deps.Hub))
	r.GET("/orders/:id", orderControllers.GetOrderByIDHandler(deps.Store))
}

// SetupCartRoutes registers the session-cart endpoints. The session ID
// travels in the X-Cart-Session header, not in a token.
func SetupCartRoutes(r *gin.Engine, deps Deps) {
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartControllers.GetCart(deps.Carts))
		cartGroup.POST("/items", cartControllers.AddCartItem(deps.Carts, deps.Store))
		cartGroup.PUT("/items/:dish_id", cartControllers.UpdateCartItem(deps.Carts))
		cartGroup.DELETE("/items/:dish_id", cartControllers.DeleteCartItem(deps.Carts))
		cartGroup.DELETE("", cartControllers.ClearCart(deps.Carts))
	}
}

// SetupStaffRoutes registers the order console shared by admins and
// attendants. JWT-protected. The websocket feed lives under /ws because
// GET /orders/:id is public and gin will not mix a static segment into
// that wildcard.
func SetupStaffRoutes(r *gin.Engine, deps Deps) {
	staff := []gin.HandlerFunc{
		middleware.ValidateToken(deps.Auth.Secret()),
		middleware.RequireRole(models.RoleAdmin, models.RoleAttendant),
	}

	staffGroup := r.Group("/orders")
	staffGroup.Use(staff...)
	{
		staffGroup.GET("", orderControllers.GetOrdersHandler(deps.Store))
		staffGroup.PUT("/:id/status", orderControllers.UpdateOrderStatusHandler(deps.Store, deps.Hub))
	}

	wsGroup := r.Group("/ws")
	wsGroup.Use(staff...)
	{
		wsGroup.GET("/orders", deps.Hub.Handler())
	}
}

// SetupAdminRoutes registers all "/admin/*" endpoints. Admin role only.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken(deps.Auth.Secret()))
	adminGroup.Use(middleware.RequireRole(models.RoleAdmin))
	{
		dishAdmin := adminGroup.Group("/dishes")
		{
			dishAdmin.POST("", dishController.CreateDish(deps.Store))
			dishAdmin.PUT("/:id", dishController.UpdateDish(deps.Store))
			dishAdmin.DELETE("/:id", dishController.DeleteDish(deps.Store))
		}
		adminGroup.POST("/uploads", dishController.UploadImage(deps.Store))

		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", dishController.CreateCategory(deps.Store))
			categoryAdmin.PUT("/:id", dishController.UpdateCategory(deps.Store))
			categoryAdmin.DELETE("/:id", dishController.DeleteCategory(deps.Store))
		}

		adminGroup.PUT("/settings", settingsController.UpdateSettings(deps.Store))

		dashboard := adminGroup.Group("/dashboard")
		{
			dashboard.GET("/orders-per-day", adminController.OrdersPerDay(deps.Store))
			dashboard.GET("/revenue-per-day", adminController.RevenuePerDay(deps.Store))
			dashboard.GET("/orders-by-status", adminController.OrdersByStatus(deps.Store))
			dashboard.GET("/summary", adminController.DashboardSummary(deps.Store))
		}

		adminGroup.GET("/orders/export", adminController.ExportOrdersToExcel(deps.Store))
	}
}
