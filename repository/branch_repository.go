package repository

import (
	"coffeeshop-backend/entity"

	"gorm.io/gorm"
)

type BranchRepository struct {
	DB *gorm.DB
}

func NewBranchRepository(db *gorm.DB) *BranchRepository {
	return &BranchRepository{DB: db}
}

func (r *BranchRepository) Create(tx *gorm.DB, branch *entity.Branch) error {
	return tx.Create(branch).Error
}

func (r *BranchRepository) FindByID(id, coffeeShopID uint) (*entity.Branch, error) {
	var branch entity.Branch
	err := r.DB.
		Where("id = ? AND deleted = ? AND coffee_shop_id = ?", id, false, coffeeShopID).
		First(&branch).Error
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

func (r *BranchRepository) FindAllByShop(coffeeShopID uint) ([]entity.Branch, error) {
	var branches []entity.Branch
	err := r.DB.
		Where("deleted = ? AND coffee_shop_id = ?", false, coffeeShopID).
		Find(&branches).Error
	return branches, err
}

// BelongsToShop is the branch-ownership check every user mutation runs
// before touching a branch id supplied by the caller.
func (r *BranchRepository) BelongsToShop(branchID, coffeeShopID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Branch{}).
		Where("id = ? AND deleted = ? AND coffee_shop_id = ?", branchID, false, coffeeShopID).
		Count(&count).Error
	return count > 0, err
}

// HasActiveUsers guards branch deletion: a branch with staff still in it
// cannot be soft-deleted.
func (r *BranchRepository) HasActiveUsers(branchID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).
		Where("branch_id = ? AND deleted = ?", branchID, false).
		Count(&count).Error
	return count > 0, err
}

func (r *BranchRepository) Update(tx *gorm.DB, id uint, updates map[string]any) error {
	return tx.Model(&entity.Branch{}).Where("id = ?", id).Updates(updates).Error
}

func (r *BranchRepository) SoftDelete(tx *gorm.DB, id uint) error {
	return tx.Model(&entity.Branch{}).Where("id = ?", id).Update("deleted", true).Error
}
