package repository

import (
	"coffeeshop-backend/entity"

	"gorm.io/gorm"
)

type CoffeeShopRepository struct {
	DB *gorm.DB
}

func NewCoffeeShopRepository(db *gorm.DB) *CoffeeShopRepository {
	return &CoffeeShopRepository{DB: db}
}

func (r *CoffeeShopRepository) Create(tx *gorm.DB, shop *entity.CoffeeShop) error {
	return tx.Create(shop).Error
}

func (r *CoffeeShopRepository) FindByID(id uint) (*entity.CoffeeShop, error) {
	var shop entity.CoffeeShop
	if err := r.DB.First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *CoffeeShopRepository) Update(tx *gorm.DB, id uint, updates map[string]any) error {
	return tx.Model(&entity.CoffeeShop{}).Where("id = ?", id).Updates(updates).Error
}
