package repository

import (
	"coffeeshop-backend/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

// FindByPhone looks a customer up by phone within one shop; the same
// phone can appear once per shop. Takes the caller's handle so the
// lookup can run inside an open transaction.
func (r *CustomerRepository) FindByPhone(tx *gorm.DB, phoneNo string, coffeeShopID uint) (*entity.Customer, error) {
	var customer entity.Customer
	err := tx.
		Where("phone_no = ? AND coffee_shop_id = ?", phoneNo, coffeeShopID).
		First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// FindOrCreateByPhone inserts the customer unless the (phone, shop) pair
// already exists, in which case the existing row is loaded back. The
// insert uses ON CONFLICT DO NOTHING so a concurrent first order for the
// same phone cannot abort the transaction.
func (r *CustomerRepository) FindOrCreateByPhone(tx *gorm.DB, customer *entity.Customer) error {
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(customer)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return tx.
			Where("phone_no = ? AND coffee_shop_id = ?", customer.PhoneNo, customer.CoffeeShopID).
			First(customer).Error
	}
	return nil
}

func (r *CustomerRepository) FindByID(id, coffeeShopID uint) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.DB.
		Where("id = ? AND coffee_shop_id = ?", id, coffeeShopID).
		First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepository) FindAllByShop(coffeeShopID uint) ([]entity.Customer, error) {
	var customers []entity.Customer
	err := r.DB.Where("coffee_shop_id = ?", coffeeShopID).Find(&customers).Error
	return customers, err
}

// ExistsByPhone is shop-scoped, unlike the user checks.
func (r *CustomerRepository) ExistsByPhone(phoneNo string, coffeeShopID uint, excludeID *uint) (bool, error) {
	q := r.DB.Model(&entity.Customer{}).
		Where("phone_no = ? AND coffee_shop_id = ?", phoneNo, coffeeShopID)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CustomerRepository) Update(tx *gorm.DB, id uint, updates map[string]any) error {
	return tx.Model(&entity.Customer{}).Where("id = ?", id).Updates(updates).Error
}
