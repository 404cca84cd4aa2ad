package repository

import (
	"coffeeshop-backend/entity"

	"gorm.io/gorm"
)

type InventoryItemRepository struct {
	DB *gorm.DB
}

func NewInventoryItemRepository(db *gorm.DB) *InventoryItemRepository {
	return &InventoryItemRepository{DB: db}
}

func (r *InventoryItemRepository) Create(tx *gorm.DB, item *entity.InventoryItem) error {
	return tx.Create(item).Error
}

func (r *InventoryItemRepository) FindByID(id, coffeeShopID uint) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := r.DB.
		Where("id = ? AND deleted = ? AND coffee_shop_id = ?", id, false, coffeeShopID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *InventoryItemRepository) FindAllByShop(coffeeShopID uint) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := r.DB.
		Where("deleted = ? AND coffee_shop_id = ?", false, coffeeShopID).
		Find(&items).Error
	return items, err
}

func (r *InventoryItemRepository) Update(tx *gorm.DB, id uint, updates map[string]any) error {
	return tx.Model(&entity.InventoryItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *InventoryItemRepository) SoftDelete(tx *gorm.DB, id uint) error {
	return tx.Model(&entity.InventoryItem{}).Where("id = ?", id).Update("deleted", true).Error
}
