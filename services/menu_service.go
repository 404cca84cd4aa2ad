package services

import (
	"errors"

	"coffeeshop-backend/entity"
	"coffeeshop-backend/pkg/apperr"
	"coffeeshop-backend/repository"

	"gorm.io/gorm"
)

type MenuService struct {
	DB    *gorm.DB
	Items *repository.MenuItemRepository
}

func NewMenuService(db *gorm.DB, itemRepo *repository.MenuItemRepository) *MenuService {
	return &MenuService{DB: db, Items: itemRepo}
}

type MenuItemCreateReq struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
}

type MenuItemPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

func (s *MenuService) Create(adminShopID uint, req *MenuItemCreateReq) (*entity.MenuItem, error) {
	item := entity.MenuItem{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		CoffeeShopID: adminShopID,
	}
	err := inTx(s.DB, func(tx *gorm.DB) error {
		return s.Items.Create(tx, &item)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *MenuService) Get(shopID, itemID uint) (*entity.MenuItem, error) {
	item, err := s.Items.FindByID(itemID, shopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("this item with id = %d does not exist", itemID)
		}
		return nil, err
	}
	return item, nil
}

func (s *MenuService) List(shopID uint) ([]entity.MenuItem, error) {
	return s.Items.FindAllByShop(shopID)
}

func (s *MenuService) Update(adminShopID, itemID uint, patch *MenuItemPatch) (*entity.MenuItem, error) {
	item, err := s.Get(adminShopID, itemID)
	if err != nil {
		return nil, err
	}

	if patch.Price != nil && *patch.Price < 0 {
		return nil, apperr.BadRequestf("price cannot be negative")
	}

	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if len(updates) == 0 {
		return item, nil
	}

	err = inTx(s.DB, func(tx *gorm.DB) error {
		return s.Items.Update(tx, item.ID, updates)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(adminShopID, itemID)
}

func (s *MenuService) Delete(adminShopID, itemID uint) error {
	item, err := s.Get(adminShopID, itemID)
	if err != nil {
		return err
	}
	return inTx(s.DB, func(tx *gorm.DB) error {
		return s.Items.SoftDelete(tx, item.ID)
	})
}
