package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mahou-anisphia/koala-restaurant-sub000/config"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/api/handler"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/api/middleware"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/model"
	"github.com/mahou-anisphia/koala-restaurant-sub000/internal/repository"
	"github.com/mahou-anisphia/koala-restaurant-sub000/pkg/jwt"
	"github.com/mahou-anisphia/koala-restaurant-sub000/pkg/redis"
	"github.com/mahou-anisphia/koala-restaurant-sub000/pkg/response"
)

// 登录限流：每个 IP 每分钟最多 10 次
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	repo *repository.Repository,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	// 非标准动词返回 405 而不是 404
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		response.Error(c, 405, 10001, "方法不允许")
	})

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 登录（无需认证，限流）
		v1.POST("/login", middleware.RateLimit(rdb, loginRateLimit, loginRateWindow), h.Auth.Login)

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.AuthRequired(jwtMgr, rdb, repo.User))
		{
			authorized.PUT("/change-password", h.Auth.ChangePassword)
			authorized.GET("/me", h.Auth.Me)

			// 用户管理（仅 Owner）
			owner := authorized.Group("/owner", middleware.RoleRequired(model.RoleOwner))
			{
				owner.POST("/users", h.User.CreateUser)
				owner.GET("/users", h.User.ListUsers)
				owner.GET("/users/:id", h.User.GetUser)
				owner.PUT("/users/:id", h.User.UpdateUser)
				owner.PUT("/users/:id/role", h.User.AssignRole)
				owner.DELETE("/users/:id", h.User.DeleteUser)
			}

			// 地点模块
			locations := authorized.Group("/location")
			{
				locations.GET("", h.Location.ListLocations)
				locations.GET("/:id", h.Location.GetLocation)
				locations.POST("", middleware.RoleRequired(model.RoleOwner), h.Location.CreateLocation)
				locations.PUT("/:id", middleware.RoleRequired(model.RoleOwner), h.Location.UpdateLocation)
				locations.DELETE("/:id", middleware.RoleRequired(model.RoleOwner), h.Location.DeleteLocation)
			}

			// 分类模块
			categories := authorized.Group("/category")
			{
				categories.GET("", h.Category.ListCategories)
				categories.GET("/:id", h.Category.GetCategory)
				categories.POST("", middleware.RoleRequired(model.RoleOwner, model.RoleChef), h.Category.CreateCategory)
				categories.PUT("/:id", middleware.RoleRequired(model.RoleOwner, model.RoleChef), h.Category.UpdateCategory)
				categories.DELETE("/:id", middleware.RoleRequired(model.RoleOwner), h.Category.DeleteCategory)
			}

			// 菜品模块
			dishes := authorized.Group("/dishes")
			{
				dishes.GET("", h.Dish.ListDishes)
				dishes.GET("/:id", h.Dish.GetDish)
				dishes.POST("", middleware.RoleRequired(model.RoleOwner, model.RoleChef), h.Dish.CreateDish)
				dishes.PUT("/:id", middleware.RoleRequired(model.RoleOwner, model.RoleChef), h.Dish.UpdateDish)
				dishes.DELETE("/:id", middleware.RoleRequired(model.RoleOwner, model.RoleChef), h.Dish.DeleteDish)
				dishes.POST("/:id/image", middleware.RoleRequired(model.RoleOwner, model.RoleChef), h.Dish.UploadImage)
			}

			// 菜单模块
			menus := authorized.Group("/menu")
			{
				menus.GET("", h.Menu.ListMenus)
				menus.GET("/:id", h.Menu.GetMenu)
				menus.POST("", middleware.RoleRequired(model.RoleOwner), h.Menu.CreateMenu)
				menus.PUT("/:id", middleware.RoleRequired(model.RoleOwner), h.Menu.UpdateMenu)
				menus.DELETE("/:id", middleware.RoleRequired(model.RoleOwner), h.Menu.DeleteMenu)
				menus.POST("/:id/dishes", middleware.RoleRequired(model.RoleOwner), h.Menu.AddDish)
				menus.PUT("/:id/dishes/:dishID", middleware.RoleRequired(model.RoleOwner), h.Menu.UpdateDishStatus)
				menus.DELETE("/:id/dishes/:dishID", middleware.RoleRequired(model.RoleOwner), h.Menu.RemoveDish)
			}

			// 餐桌模块
			tables := authorized.Group("/table")
			{
				tables.GET("", h.DiningTable.ListTables)
				tables.GET("/:id", h.DiningTable.GetTable)
				tables.POST("", middleware.RoleRequired(model.RoleOwner), h.DiningTable.CreateTable)
				tables.PUT("/:id", middleware.RoleRequired(model.RoleOwner), h.DiningTable.UpdateTable)
				tables.DELETE("/:id", middleware.RoleRequired(model.RoleOwner), h.DiningTable.DeleteTable)
			}

			// 预订模块
			reservations := authorized.Group("/reservation")
			{
				reservations.POST("", h.Reservation.CreateReservation)
				reservations.GET("", h.Reservation.ListReservations)
				reservations.GET("/:id", h.Reservation.GetReservation)
				reservations.GET("/:id/ics", h.Reservation.ExportICS)
				reservations.PUT("/:id", middleware.RoleRequired(model.RoleOwner, model.RoleWaiter), h.Reservation.UpdateReservation)
				reservations.DELETE("/:id", middleware.RoleRequired(model.RoleOwner, model.RoleWaiter), h.Reservation.DeleteReservation)
			}

			// 订单模块
			orders := authorized.Group("/orders")
			{
				orders.POST("", middleware.RoleRequired(model.RoleOwner, model.RoleWaiter, model.RoleCustomer), h.Order.CreateOrder)
				orders.GET("", middleware.RoleRequired(model.RoleOwner, model.RoleWaiter, model.RoleChef), h.Order.ListOrders)
				orders.GET("/:id", h.Order.GetOrder)
				orders.GET("/:id/items", middleware.RoleRequired(model.RoleOwner, model.RoleWaiter, model.RoleChef), h.Order.ListOrderItems)
				orders.PUT("/:id/status", middleware.RoleRequired(model.RoleOwner, model.RoleWaiter, model.RoleChef), h.Order.UpdateOrderStatus)
				orders.POST("/:id/items", middleware.RoleRequired(model.RoleOwner, model.RoleWaiter, model.RoleCustomer), h.Order.AddOrderItem)
				orders.PUT("/items/:itemID/status", middleware.RoleRequired(model.RoleOwner, model.RoleWaiter, model.RoleChef), h.Order.UpdateOrderItemStatus)
				orders.DELETE("/items/:itemID", middleware.RoleRequired(model.RoleOwner, model.RoleWaiter), h.Order.DeleteOrderItem)
			}

			// 收据模块
			receipts := authorized.Group("/receipts", middleware.RoleRequired(model.RoleOwner, model.RoleWaiter))
			{
				receipts.POST("", h.Receipt.CreateReceipt)
				receipts.GET("", h.Receipt.ListReceipts)
				receipts.GET("/export", middleware.RoleRequired(model.RoleOwner), h.Receipt.ExportReceipts)
				receipts.GET("/:id", h.Receipt.GetReceipt)
			}
		}
	}

	return r
}
