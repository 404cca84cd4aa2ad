package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"coffeeshop-backend/configs"
	"coffeeshop-backend/entity"
	"coffeeshop-backend/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

// env wires the full service layer over an in-memory database.
type env struct {
	db *gorm.DB

	auth      *AuthService
	users     *UserService
	branches  *BranchService
	shops     *CoffeeShopService
	menu      *MenuService
	inventory *InventoryService
	customers *CustomerService
	orders    *OrderService
	reports   *ReportService
}

func newEnv(t *testing.T) *env {
	return newEnvWithPolicy(t, false)
}

// dbSeq keeps each env on its own named in-memory database, even when a
// single test opens several.
var dbSeq atomic.Int64

func newEnvWithPolicy(t *testing.T, reuseDeletedContacts bool) *env {
	t.Helper()

	// shared cache makes the one in-memory database visible to every
	// pooled connection instead of giving each connection an empty one
	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))

	userRepo := repository.NewUserRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	shopRepo := repository.NewCoffeeShopRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	menuRepo := repository.NewMenuItemRepository(db)
	invRepo := repository.NewInventoryItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reportRepo := repository.NewReportRepository(db)

	return &env{
		db:        db,
		auth:      NewAuthService(db, shopRepo, branchRepo, userRepo, testSecret, time.Hour, reuseDeletedContacts),
		users:     NewUserService(db, userRepo, branchRepo, reuseDeletedContacts),
		branches:  NewBranchService(db, branchRepo),
		shops:     NewCoffeeShopService(db, shopRepo),
		menu:      NewMenuService(db, menuRepo),
		inventory: NewInventoryService(db, invRepo),
		customers: NewCustomerService(db, customerRepo),
		orders:    NewOrderService(db, orderRepo, customerRepo, menuRepo, userRepo),
		reports:   NewReportService(reportRepo),
	}
}

type tenant struct {
	shopID   uint
	branchID uint
	admin    entity.User
}

// signupTenant registers a shop through the real signup flow. The tag
// keeps emails and phones unique across tenants in one test.
func signupTenant(t *testing.T, e *env, tag string) tenant {
	t.Helper()

	_, err := e.auth.Signup(&SignupReq{
		ShopDetails:   ShopDetailsIn{Name: tag + " coffee", Location: "main st", ContactInfo: tag + "@shops.test"},
		BranchDetails: BranchDetailsIn{Name: "downtown", Location: "main st"},
		AdminDetails: AdminDetailsIn{
			FirstName: "admin",
			LastName:  tag,
			Email:     tag + "-admin@test.com",
			PhoneNo:   tag + "-0001",
			Password:  "supersecret",
		},
	})
	require.NoError(t, err)

	var admin entity.User
	require.NoError(t, e.db.Where("email = ?", tag+"-admin@test.com").First(&admin).Error)
	var branch entity.Branch
	require.NoError(t, e.db.First(&branch, admin.BranchID).Error)

	return tenant{shopID: branch.CoffeeShopID, branchID: branch.ID, admin: admin}
}

func createStaff(t *testing.T, e *env, tn tenant, role entity.UserRole, tag string) *entity.User {
	t.Helper()

	u, err := e.users.Create(tn.shopID, &UserCreateReq{
		FirstName: "staff",
		LastName:  tag,
		Email:     tag + "@test.com",
		PhoneNo:   tag + "-1000",
		Password:  "supersecret",
		Role:      role,
		BranchID:  tn.branchID,
	})
	require.NoError(t, err)
	return u
}

func createMenuItem(t *testing.T, e *env, shopID uint, name string, price float64) *entity.MenuItem {
	t.Helper()

	item, err := e.menu.Create(shopID, &MenuItemCreateReq{Name: name, Price: price})
	require.NoError(t, err)
	return item
}

func placeOrder(t *testing.T, e *env, shopID, issuerID uint, phone string, items ...OrderItemIn) *PlaceOrderRes {
	t.Helper()

	res, err := e.orders.Place(shopID, issuerID, &PlaceOrderReq{
		CustomerDetails: CustomerDetailsIn{Name: "walk-in", PhoneNo: phone},
		OrderItems:      items,
	})
	require.NoError(t, err)
	return res
}
