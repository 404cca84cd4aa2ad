package repository

import (
	"fmt"
	"time"

	"coffeeshop-backend/entity"

	"gorm.io/gorm"
)

// ReportRepository holds the read-side aggregate queries. Everything here
// is shop-scoped and mutation-free; a shop with no matching rows gets an
// empty result, never an error.
type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

type CustomerOrderRow struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	PhoneNo     string  `json:"phoneNo"`
	TotalOrders int64   `json:"totalOrders"`
	TotalPaid   float64 `json:"totalPaid"`
}

type StaffOrderRow struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Orders int64  `json:"orders"`
}

type IncomeRow struct {
	TotalOrders int64   `json:"totalOrders"`
	TotalIncome float64 `json:"totalIncome"`
}

type TopItemRow struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	TotalQuantity int64  `json:"totalQuantity"`
}

// orderClause whitelists the sortable columns; anything else falls back
// to the given default.
func orderClause(orderBy string, sort string, allowed map[string]bool, def string) string {
	if !allowed[orderBy] {
		orderBy = def
	}
	if sort != "asc" {
		sort = "desc"
	}
	return fmt.Sprintf("%s %s", orderBy, sort)
}

// CustomersOrders lists each customer of the shop with the distinct
// orders they placed and the total they paid (quantity times menu price).
func (r *ReportRepository) CustomersOrders(coffeeShopID uint, orderBy, sort string) ([]CustomerOrderRow, error) {
	clause := orderClause(orderBy, sort,
		map[string]bool{"total_orders": true, "total_paid": true}, "total_paid")

	var rows []CustomerOrderRow
	err := r.DB.
		Table("customers AS c").
		Select("c.id, c.name, c.phone_no, "+
			"COUNT(DISTINCT o.id) AS total_orders, "+
			"COALESCE(SUM(oi.quantity * mi.price), 0) AS total_paid").
		Joins("LEFT JOIN orders o ON o.customer_id = c.id").
		Joins("LEFT JOIN order_items oi ON oi.order_id = o.id").
		Joins("LEFT JOIN menu_items mi ON mi.id = oi.item_id").
		Where("c.coffee_shop_id = ?", coffeeShopID).
		Group("c.id, c.name, c.phone_no").
		Order(clause).
		Scan(&rows).Error
	return rows, err
}

// ChefsOrders counts, per chef of the shop, the orders assigned to them
// with an issue date inside the range. The date filter sits on the join
// so chefs with nothing assigned still show up with zero.
func (r *ReportRepository) ChefsOrders(coffeeShopID uint, from, to time.Time) ([]StaffOrderRow, error) {
	return r.staffOrders(coffeeShopID, entity.RoleChef, "o.assigner_id", from, to)
}

// IssuersOrders is the symmetric count for order receivers, keyed on the
// order's issuer instead of its assigned chef.
func (r *ReportRepository) IssuersOrders(coffeeShopID uint, from, to time.Time) ([]StaffOrderRow, error) {
	return r.staffOrders(coffeeShopID, entity.RoleOrderReceiver, "o.issuer_id", from, to)
}

func (r *ReportRepository) staffOrders(coffeeShopID uint, role entity.UserRole, fkCol string, from, to time.Time) ([]StaffOrderRow, error) {
	var rows []StaffOrderRow
	err := r.DB.
		Table("users AS u").
		Select("u.id, u.first_name || ' ' || u.last_name AS name, COUNT(o.id) AS orders").
		Joins("JOIN branches b ON b.id = u.branch_id").
		Joins("LEFT JOIN orders o ON "+fkCol+" = u.id AND o.issue_date >= ? AND o.issue_date < ?", from, to).
		Where("u.role = ? AND u.deleted = ? AND b.coffee_shop_id = ?", role, false, coffeeShopID).
		Group("u.id, u.first_name, u.last_name").
		Order("orders DESC").
		Scan(&rows).Error
	return rows, err
}

// Income totals the shop's distinct orders and revenue for the range.
func (r *ReportRepository) Income(coffeeShopID uint, from, to time.Time) (*IncomeRow, error) {
	var row IncomeRow
	err := r.DB.
		Table("orders AS o").
		Select("COUNT(DISTINCT o.id) AS total_orders, "+
			"COALESCE(SUM(oi.quantity * mi.price), 0) AS total_income").
		Joins("JOIN customers c ON c.id = o.customer_id").
		Joins("LEFT JOIN order_items oi ON oi.order_id = o.id").
		Joins("LEFT JOIN menu_items mi ON mi.id = oi.item_id").
		Where("c.coffee_shop_id = ? AND o.issue_date >= ? AND o.issue_date < ?", coffeeShopID, from, to).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// NewCustomers returns the customers whose created timestamp falls in the
// range.
func (r *ReportRepository) NewCustomers(coffeeShopID uint, from, to time.Time) ([]entity.Customer, error) {
	var customers []entity.Customer
	err := r.DB.
		Where("coffee_shop_id = ? AND created >= ? AND created < ?", coffeeShopID, from, to).
		Find(&customers).Error
	return customers, err
}

// TopSellingItems sums the quantity sold per menu item across the shop's
// orders in the range.
func (r *ReportRepository) TopSellingItems(coffeeShopID uint, from, to time.Time, sort string) ([]TopItemRow, error) {
	clause := orderClause("total_quantity", sort, map[string]bool{"total_quantity": true}, "total_quantity")

	var rows []TopItemRow
	err := r.DB.
		Table("menu_items AS mi").
		Select("mi.id, mi.name, COALESCE(SUM(oi.quantity), 0) AS total_quantity").
		Joins("JOIN order_items oi ON oi.item_id = mi.id").
		Joins("JOIN orders o ON o.id = oi.order_id AND o.issue_date >= ? AND o.issue_date < ?", from, to).
		Where("mi.coffee_shop_id = ?", coffeeShopID).
		Group("mi.id, mi.name").
		Order(clause).
		Scan(&rows).Error
	return rows, err
}
