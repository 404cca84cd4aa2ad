package services

import (
	"errors"

	"coffeeshop-backend/entity"
	"coffeeshop-backend/pkg/apperr"
	"coffeeshop-backend/repository"

	"gorm.io/gorm"
)

// CustomerService covers the admin-facing customer surface; customers
// themselves come into existence through order placement.
type CustomerService struct {
	DB        *gorm.DB
	Customers *repository.CustomerRepository
}

func NewCustomerService(db *gorm.DB, customerRepo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{DB: db, Customers: customerRepo}
}

type CustomerPatch struct {
	Name    *string `json:"name"`
	PhoneNo *string `json:"phoneNo"`
}

func (s *CustomerService) Get(shopID, customerID uint) (*entity.Customer, error) {
	customer, err := s.Customers.FindByID(customerID, shopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("this customer with id = %d does not exist", customerID)
		}
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) List(shopID uint) ([]entity.Customer, error) {
	return s.Customers.FindAllByShop(shopID)
}

func (s *CustomerService) Update(shopID, customerID uint, patch *CustomerPatch) (*entity.Customer, error) {
	customer, err := s.Get(shopID, customerID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.PhoneNo != nil {
		exists, err := s.Customers.ExistsByPhone(*patch.PhoneNo, shopID, &customer.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperr.Conflictf("customer with this phone number already exists")
		}
		updates["phone_no"] = *patch.PhoneNo
	}
	if len(updates) == 0 {
		return customer, nil
	}

	err = inTx(s.DB, func(tx *gorm.DB) error {
		return s.Customers.Update(tx, customer.ID, updates)
	})
	if err != nil {
		if isDuplicateKey(err) {
			return nil, apperr.Conflictf("customer with this phone number already exists")
		}
		return nil, err
	}
	return s.Get(shopID, customerID)
}
