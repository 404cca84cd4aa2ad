package services

import (
	"errors"
	"time"

	"coffeeshop-backend/entity"
	"coffeeshop-backend/pkg/apperr"
	"coffeeshop-backend/repository"

	"gorm.io/gorm"
)

type InventoryService struct {
	DB    *gorm.DB
	Items *repository.InventoryItemRepository
}

func NewInventoryService(db *gorm.DB, itemRepo *repository.InventoryItemRepository) *InventoryService {
	return &InventoryService{DB: db, Items: itemRepo}
}

type InventoryItemCreateReq struct {
	Name              string  `json:"name" binding:"required"`
	Price             float64 `json:"price" binding:"min=0"`
	ProdDate          string  `json:"prodDate" binding:"required"`
	ExpireDate        string  `json:"expireDate" binding:"required"`
	AvailableQuantity int     `json:"availableQuantity" binding:"min=0"`
}

type InventoryItemPatch struct {
	Name              *string  `json:"name"`
	Price             *float64 `json:"price"`
	ProdDate          *string  `json:"prodDate"`
	ExpireDate        *string  `json:"expireDate"`
	AvailableQuantity *int     `json:"availableQuantity"`
}

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, apperr.BadRequestf("invalid date %q, want YYYY-MM-DD", s)
	}
	return d, nil
}

// validateDates rejects production after expiration; the same day on
// both is fine.
func validateDates(prod, expire time.Time) error {
	if prod.After(expire) {
		return apperr.BadRequestf("production date cannot be greater than expiration date")
	}
	return nil
}

func (s *InventoryService) Create(adminShopID uint, req *InventoryItemCreateReq) (*entity.InventoryItem, error) {
	prod, err := parseDate(req.ProdDate)
	if err != nil {
		return nil, err
	}
	expire, err := parseDate(req.ExpireDate)
	if err != nil {
		return nil, err
	}
	if err := validateDates(prod, expire); err != nil {
		return nil, err
	}

	item := entity.InventoryItem{
		Name:              req.Name,
		Price:             req.Price,
		ProdDate:          prod,
		ExpireDate:        expire,
		AvailableQuantity: req.AvailableQuantity,
		CoffeeShopID:      adminShopID,
	}
	err = inTx(s.DB, func(tx *gorm.DB) error {
		return s.Items.Create(tx, &item)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *InventoryService) Get(adminShopID, itemID uint) (*entity.InventoryItem, error) {
	item, err := s.Items.FindByID(itemID, adminShopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("this item with id = %d does not exist", itemID)
		}
		return nil, err
	}
	return item, nil
}

func (s *InventoryService) List(adminShopID uint) ([]entity.InventoryItem, error) {
	return s.Items.FindAllByShop(adminShopID)
}

// Update applies the set fields; date ordering is re-validated over the
// merged values, so changing only one of the two dates cannot sneak an
// inverted range in.
func (s *InventoryService) Update(adminShopID, itemID uint, patch *InventoryItemPatch) (*entity.InventoryItem, error) {
	item, err := s.Get(adminShopID, itemID)
	if err != nil {
		return nil, err
	}

	prod, expire := item.ProdDate, item.ExpireDate
	updates := map[string]any{}

	if patch.ProdDate != nil {
		if prod, err = parseDate(*patch.ProdDate); err != nil {
			return nil, err
		}
		updates["prod_date"] = prod
	}
	if patch.ExpireDate != nil {
		if expire, err = parseDate(*patch.ExpireDate); err != nil {
			return nil, err
		}
		updates["expire_date"] = expire
	}
	if err := validateDates(prod, expire); err != nil {
		return nil, err
	}

	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			return nil, apperr.BadRequestf("price cannot be negative")
		}
		updates["price"] = *patch.Price
	}
	if patch.AvailableQuantity != nil {
		if *patch.AvailableQuantity < 0 {
			return nil, apperr.BadRequestf("available quantity cannot be negative")
		}
		updates["available_quantity"] = *patch.AvailableQuantity
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

func (s *InventoryService) Delete(adminShopID, itemID uint) error {
	item, err := s.Get(adminShopID, itemID)
	if err != nil {
		return err
	}
	return inTx(s.DB, func(tx *gorm.DB) error {
		return s.Items.SoftDelete(tx, item.ID)
	})
}
