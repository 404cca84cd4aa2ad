package repository

import (
	"coffeeshop-backend/entity"

	"gorm.io/gorm"
)

// UserRepository owns every query against the users table. Shop-scoped
// lookups join through the branch so an out-of-tenant id behaves exactly
// like a missing one.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(tx *gorm.DB, user *entity.User) error {
	return tx.Create(user).Error
}

// FindActiveByEmail is the login lookup; soft-deleted staff cannot log in.
func (r *UserRepository) FindActiveByEmail(email string) (*entity.User, error) {
	var user entity.User
	err := r.DB.Where("email = ? AND deleted = ?", email, false).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID returns the active user with this id inside the given shop.
func (r *UserRepository) FindByID(id, coffeeShopID uint) (*entity.User, error) {
	var user entity.User
	err := r.DB.
		Joins("JOIN branches ON branches.id = users.branch_id").
		Where("users.id = ? AND users.deleted = ? AND branches.coffee_shop_id = ?",
			id, false, coffeeShopID).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindAllByShop(coffeeShopID uint) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.
		Joins("JOIN branches ON branches.id = users.branch_id").
		Where("users.deleted = ? AND branches.coffee_shop_id = ?", false, coffeeShopID).
		Find(&users).Error
	return users, err
}

// FindByContact locates a user by phone or email regardless of the
// deleted flag; the restore flow inspects the flag itself. Pass empty
// string for the unused field.
func (r *UserRepository) FindByContact(email, phoneNo string) (*entity.User, error) {
	q := r.DB
	if email != "" {
		q = q.Where("email = ?", email)
	} else {
		q = q.Where("phone_no = ?", phoneNo)
	}
	var user entity.User
	if err := q.First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(tx *gorm.DB, id uint, updates map[string]any) error {
	return tx.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
}

func (r *UserRepository) SoftDelete(tx *gorm.DB, id uint) error {
	return tx.Model(&entity.User{}).Where("id = ?", id).Update("deleted", true).Error
}

// ExistsByEmail reports whether any user occupies this email. excludeID
// skips one user during update self-checks; includeDeleted controls
// whether soft-deleted users still block the address.
func (r *UserRepository) ExistsByEmail(email string, excludeID *uint, includeDeleted bool) (bool, error) {
	return r.existsBy("email = ?", email, excludeID, includeDeleted)
}

func (r *UserRepository) ExistsByPhone(phoneNo string, excludeID *uint, includeDeleted bool) (bool, error) {
	return r.existsBy("phone_no = ?", phoneNo, excludeID, includeDeleted)
}

func (r *UserRepository) existsBy(cond string, value string, excludeID *uint, includeDeleted bool) (bool, error) {
	q := r.DB.Model(&entity.User{}).Where(cond, value)
	if !includeDeleted {
		q = q.Where("deleted = ?", false)
	}
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CoffeeShopIDOf resolves the owning shop through the user's branch.
func (r *UserRepository) CoffeeShopIDOf(userID uint) (uint, error) {
	var row struct{ CoffeeShopID uint }
	err := r.DB.Model(&entity.User{}).
		Select("branches.coffee_shop_id").
		Joins("JOIN branches ON branches.id = users.branch_id").
		Where("users.id = ?", userID).
		First(&row).Error
	return row.CoffeeShopID, err
}
