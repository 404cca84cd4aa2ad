package services

import (
	"errors"

	"coffeeshop-backend/entity"
	"coffeeshop-backend/pkg/apperr"
	"coffeeshop-backend/repository"

	"gorm.io/gorm"
)

type BranchService struct {
	DB       *gorm.DB
	Branches *repository.BranchRepository
}

func NewBranchService(db *gorm.DB, branchRepo *repository.BranchRepository) *BranchService {
	return &BranchService{DB: db, Branches: branchRepo}
}

type BranchCreateReq struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
}

type BranchPatch struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

func (s *BranchService) Create(adminShopID uint, req *BranchCreateReq) (*entity.Branch, error) {
	branch := entity.Branch{
		Name:         req.Name,
		Location:     req.Location,
		CoffeeShopID: adminShopID,
	}
	err := inTx(s.DB, func(tx *gorm.DB) error {
		return s.Branches.Create(tx, &branch)
	})
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

func (s *BranchService) Get(adminShopID, branchID uint) (*entity.Branch, error) {
	branch, err := s.Branches.FindByID(branchID, adminShopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("this branch with id = %d does not exist", branchID)
		}
		return nil, err
	}
	return branch, nil
}

func (s *BranchService) List(adminShopID uint) ([]entity.Branch, error) {
	return s.Branches.FindAllByShop(adminShopID)
}

func (s *BranchService) Update(adminShopID, branchID uint, patch *BranchPatch) (*entity.Branch, error) {
	branch, err := s.Get(adminShopID, branchID)
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
	if len(updates) == 0 {
		return branch, nil
	}

	err = inTx(s.DB, func(tx *gorm.DB) error {
		return s.Branches.Update(tx, branch.ID, updates)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(adminShopID, branchID)
}

// Delete soft-deletes a branch; a branch that still has active staff
// cannot go.
func (s *BranchService) Delete(adminShopID, branchID uint) error {
	branch, err := s.Get(adminShopID, branchID)
	if err != nil {
		return err
	}

	hasUsers, err := s.Branches.HasActiveUsers(branch.ID)
	if err != nil {
		return err
	}
	if hasUsers {
		return apperr.BadRequestf("branch still has active users")
	}

	return inTx(s.DB, func(tx *gorm.DB) error {
		return s.Branches.SoftDelete(tx, branch.ID)
	})
}
