package repository

import (
	"coffeeshop-backend/entity"

	"gorm.io/gorm"
)

// OrderRepository scopes every lookup through the customer row, which
// carries the owning shop. An order from another shop is indistinguishable
// from a missing one.
type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

func (r *OrderRepository) CreateItem(tx *gorm.DB, item *entity.OrderItem) error {
	return tx.Create(item).Error
}

func (r *OrderRepository) FindByID(orderID, coffeeShopID uint) (*entity.Order, error) {
	var order entity.Order
	err := r.DB.
		Preload("Items").Preload("Customer").
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Where("orders.id = ? AND customers.coffee_shop_id = ?", orderID, coffeeShopID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// List returns one page of the shop's orders plus the total matching
// count. Page is 1-indexed; statuses narrows the result when non-empty.
func (r *OrderRepository) List(coffeeShopID uint, statuses []entity.OrderStatus, page, size int) ([]entity.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 200 {
		size = 20
	}

	base := r.DB.Model(&entity.Order{}).
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Where("customers.coffee_shop_id = ?", coffeeShopID)
	if len(statuses) > 0 {
		base = base.Where("orders.status IN ?", statuses)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []entity.Order
	offset := (page - 1) * size
	err := base.
		Preload("Items").Preload("Customer").
		Order("orders.id").
		Offset(offset).Limit(size).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *OrderRepository) UpdateStatus(tx *gorm.DB, orderID uint, status entity.OrderStatus) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Update("status", status).Error
}

func (r *OrderRepository) Assign(tx *gorm.DB, orderID, chefID uint) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Update("assigner_id", chefID).Error
}
