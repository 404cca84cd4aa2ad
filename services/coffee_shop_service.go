package services

import (
	"coffeeshop-backend/entity"
	"coffeeshop-backend/pkg/apperr"
	"coffeeshop-backend/repository"

	"gorm.io/gorm"
)

type CoffeeShopService struct {
	DB    *gorm.DB
	Shops *repository.CoffeeShopRepository
}

func NewCoffeeShopService(db *gorm.DB, shopRepo *repository.CoffeeShopRepository) *CoffeeShopService {
	return &CoffeeShopService{DB: db, Shops: shopRepo}
}

type CoffeeShopPatch struct {
	Name        *string `json:"name"`
	Location    *string `json:"location"`
	ContactInfo *string `json:"contactInfo"`
}

// Update changes the admin's own shop. Any other shop id reads as
// missing, whether it exists or not.
func (s *CoffeeShopService) Update(adminShopID, shopID uint, patch *CoffeeShopPatch) (*entity.CoffeeShop, error) {
	if shopID != adminShopID {
		return nil, apperr.NotFoundf("this coffee shop with id = %d does not exist", shopID)
	}

	shop, err := s.Shops.FindByID(shopID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Location != nil {
		updates["location"] = *patch.Location
	}
	if patch.ContactInfo != nil {
		updates["contact_info"] = *patch.ContactInfo
	}
	if len(updates) == 0 {
		return shop, nil
	}

	err = inTx(s.DB, func(tx *gorm.DB) error {
		return s.Shops.Update(tx, shop.ID, updates)
	})
	if err != nil {
		return nil, err
	}
	return s.Shops.FindByID(shopID)
}
