package repository

import (
	"coffeeshop-backend/entity"

	"gorm.io/gorm"
)

type MenuItemRepository struct {
	DB *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

func (r *MenuItemRepository) Create(tx *gorm.DB, item *entity.MenuItem) error {
	return tx.Create(item).Error
}

func (r *MenuItemRepository) FindByID(id, coffeeShopID uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.
		Where("id = ? AND deleted = ? AND coffee_shop_id = ?", id, false, coffeeShopID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemRepository) FindAllByShop(coffeeShopID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Where("deleted = ? AND coffee_shop_id = ?", false, coffeeShopID).
		Find(&items).Error
	return items, err
}

// CountActiveInShop counts how many of the given ids are active items of
// the shop. Order placement compares this against the distinct id count.
func (r *MenuItemRepository) CountActiveInShop(ids []uint, coffeeShopID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.MenuItem{}).
		Where("id IN ? AND deleted = ? AND coffee_shop_id = ?", ids, false, coffeeShopID).
		Count(&count).Error
	return count, err
}

func (r *MenuItemRepository) Update(tx *gorm.DB, id uint, updates map[string]any) error {
	return tx.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *MenuItemRepository) SoftDelete(tx *gorm.DB, id uint) error {
	return tx.Model(&entity.MenuItem{}).Where("id = ?", id).Update("deleted", true).Error
}
