package routes

import (
	"coffeeshop-backend/configs"
	"coffeeshop-backend/controllers"
	"coffeeshop-backend/entity"
	"coffeeshop-backend/middlewares"
	"coffeeshop-backend/repository"
	"coffeeshop-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and controllers and mounts
// every endpoint with its role gate. Tenant scoping happens inside the
// services; the gates here only control which roles may call at all.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	shopRepo := repository.NewCoffeeShopRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	menuRepo := repository.NewMenuItemRepository(db)
	inventoryRepo := repository.NewInventoryItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reportRepo := repository.NewReportRepository(db)

	authSvc := services.NewAuthService(db, shopRepo, branchRepo, userRepo,
		cfg.JWTSecret, cfg.JWTTTL, cfg.ReuseDeletedContacts)
	userSvc := services.NewUserService(db, userRepo, branchRepo, cfg.ReuseDeletedContacts)
	branchSvc := services.NewBranchService(db, branchRepo)
	shopSvc := services.NewCoffeeShopService(db, shopRepo)
	menuSvc := services.NewMenuService(db, menuRepo)
	inventorySvc := services.NewInventoryService(db, inventoryRepo)
	customerSvc := services.NewCustomerService(db, customerRepo)
	orderSvc := services.NewOrderService(db, orderRepo, customerRepo, menuRepo, userRepo)
	reportSvc := services.NewReportService(reportRepo)

	authCtl := controllers.NewAuthController(authSvc)
	userCtl := controllers.NewUserController(userSvc)
	branchCtl := controllers.NewBranchController(branchSvc)
	shopCtl := controllers.NewCoffeeShopController(shopSvc)
	menuCtl := controllers.NewMenuController(menuSvc)
	inventoryCtl := controllers.NewInventoryController(inventorySvc)
	customerCtl := controllers.NewCustomerController(customerSvc)
	orderCtl := controllers.NewOrderController(orderSvc)
	reportCtl := controllers.NewReportController(reportSvc)

	auth := r.Group("/auth")
	{
		auth.POST("/signup", authCtl.Signup)
		auth.POST("/login", authCtl.Login)
	}

	anyStaff := middlewares.AuthMiddleware(cfg.JWTSecret)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin)

	users := r.Group("/users", adminOnly)
	{
		users.POST("", userCtl.Create)
		users.GET("", userCtl.List)
		users.GET("/:id", userCtl.Get)
		users.PUT("/:id", userCtl.Put)
		users.PATCH("/:id", userCtl.Patch)
		users.DELETE("/:id", userCtl.Delete)
		users.POST("/restore", userCtl.Restore)
	}

	branches := r.Group("/branches", adminOnly)
	{
		branches.POST("", branchCtl.Create)
		branches.GET("", branchCtl.List)
		branches.GET("/:id", branchCtl.Get)
		branches.PUT("/:id", branchCtl.Update)
		branches.DELETE("/:id", branchCtl.Delete)
	}

	shops := r.Group("/coffee-shops", adminOnly)
	{
		shops.PUT("/:id", shopCtl.Update)
	}

	menu := r.Group("/menu-items")
	{
		menu.GET("", anyStaff, menuCtl.List)
		menu.POST("", adminOnly, menuCtl.Create)
		menu.PUT("/:id", adminOnly, menuCtl.Update)
		menu.DELETE("/:id", adminOnly, menuCtl.Delete)
	}

	inventory := r.Group("/inventory-items", adminOnly)
	{
		inventory.POST("", inventoryCtl.Create)
		inventory.GET("", inventoryCtl.List)
		inventory.PUT("/:id", inventoryCtl.Update)
		inventory.DELETE("/:id", inventoryCtl.Delete)
	}

	customers := r.Group("/customers", adminOnly)
	{
		customers.GET("", customerCtl.List)
		customers.PUT("/:id", customerCtl.Update)
	}

	orders := r.Group("/orders")
	{
		orders.POST("", middlewares.AuthMiddleware(cfg.JWTSecret,
			entity.RoleCashier, entity.RoleOrderReceiver), orderCtl.Place)
		orders.GET("", anyStaff, orderCtl.List)
		orders.GET("/:id", anyStaff, orderCtl.Get)
		// the role-to-status table inside the service decides legality
		orders.PATCH("/:id/status", anyStaff, orderCtl.UpdateStatus)
		orders.PATCH("/:id/assign/:userId", middlewares.AuthMiddleware(cfg.JWTSecret,
			entity.RoleAdmin, entity.RoleChef), orderCtl.Assign)
	}

	reports := r.Group("/reports", adminOnly)
	{
		reports.GET("/customers-orders", reportCtl.CustomersOrders)
		reports.GET("/chefs-orders", reportCtl.ChefsOrders)
		reports.GET("/issuers-orders", reportCtl.IssuersOrders)
		reports.GET("/income", reportCtl.Income)
		reports.GET("/new-customers", reportCtl.NewCustomers)
		reports.GET("/top-selling-items", reportCtl.TopSellingItems)
	}
}
