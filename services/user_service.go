package services

import (
	"errors"
	"strings"

	"coffeeshop-backend/entity"
	"coffeeshop-backend/pkg/apperr"
	"coffeeshop-backend/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService manages the staff lifecycle inside one shop: create,
// update, soft-delete and restore. Every operation is scoped to the
// acting admin's shop; a user id from another shop reads as missing.
type UserService struct {
	DB       *gorm.DB
	Users    *repository.UserRepository
	Branches *repository.BranchRepository

	reuseDeletedContacts bool
}

func NewUserService(db *gorm.DB, userRepo *repository.UserRepository, branchRepo *repository.BranchRepository, reuseDeletedContacts bool) *UserService {
	return &UserService{
		DB:                   db,
		Users:                userRepo,
		Branches:             branchRepo,
		reuseDeletedContacts: reuseDeletedContacts,
	}
}

type UserCreateReq struct {
	FirstName string          `json:"firstName" binding:"required"`
	LastName  string          `json:"lastName" binding:"required"`
	Email     string          `json:"email" binding:"required,email"`
	PhoneNo   string          `json:"phoneNo" binding:"required"`
	Password  string          `json:"password" binding:"required,min=8"`
	Role      entity.UserRole `json:"role" binding:"required"`
	BranchID  uint            `json:"branchId" binding:"required"`
}

// UserPatch carries only the fields the caller actually sent. A nil
// field is left untouched by the update.
type UserPatch struct {
	FirstName *string          `json:"firstName"`
	LastName  *string          `json:"lastName"`
	Email     *string          `json:"email"`
	PhoneNo   *string          `json:"phoneNo"`
	Password  *string          `json:"password"`
	Role      *entity.UserRole `json:"role"`
	BranchID  *uint            `json:"branchId"`
}

func (s *UserService) Create(adminShopID uint, req *UserCreateReq) (*entity.User, error) {
	if !req.Role.Valid() {
		return nil, apperr.BadRequestf("invalid role %q", req.Role)
	}

	ok, err := s.Branches.BelongsToShop(req.BranchID, adminShopID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFoundf("this branch with id = %d does not exist", req.BranchID)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.PhoneNo)
	if err := s.checkContactsFree(email, phone, nil); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := entity.User{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     email,
		PhoneNo:   phone,
		Password:  string(hashed),
		Role:      req.Role,
		BranchID:  req.BranchID,
	}
	err = inTx(s.DB, func(tx *gorm.DB) error {
		return s.Users.Create(tx, &user)
	})
	if err != nil {
		if isDuplicateKey(err) {
			return nil, apperr.Conflictf("user with this email or phone number already exists")
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Get(adminShopID, userID uint) (*entity.User, error) {
	user, err := s.Users.FindByID(userID, adminShopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("this user with id = %d does not exist", userID)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(adminShopID uint) ([]entity.User, error) {
	return s.Users.FindAllByShop(adminShopID)
}

// Update applies the set fields of the patch to a user of the admin's
// shop. Branch moves are re-checked for ownership, contact changes for
// uniqueness excluding the user itself, passwords are re-hashed.
func (s *UserService) Update(adminShopID, userID uint, patch *UserPatch) (*entity.User, error) {
	user, err := s.Get(adminShopID, userID)
	if err != nil {
		return nil, err
	}

	if patch.BranchID != nil {
		ok, err := s.Branches.BelongsToShop(*patch.BranchID, adminShopID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperr.NotFoundf("this branch with id = %d does not exist", *patch.BranchID)
		}
	}
	if patch.Role != nil && !patch.Role.Valid() {
		return nil, apperr.BadRequestf("invalid role %q", *patch.Role)
	}

	var email, phone string
	if patch.Email != nil {
		email = strings.ToLower(strings.TrimSpace(*patch.Email))
		if email == "" {
			return nil, apperr.BadRequestf("email cannot be empty")
		}
	}
	if patch.PhoneNo != nil {
		phone = strings.TrimSpace(*patch.PhoneNo)
		if phone == "" {
			return nil, apperr.BadRequestf("phone number cannot be empty")
		}
	}
	if email != "" || phone != "" {
		if err := s.checkContactsFree(email, phone, &user.ID); err != nil {
			return nil, err
		}
	}

	updates := map[string]any{}
	if patch.FirstName != nil {
		updates["first_name"] = strings.TrimSpace(*patch.FirstName)
	}
	if patch.LastName != nil {
		updates["last_name"] = strings.TrimSpace(*patch.LastName)
	}
	if email != "" {
		updates["email"] = email
	}
	if phone != "" {
		updates["phone_no"] = phone
	}
	if patch.Role != nil {
		updates["role"] = *patch.Role
	}
	if patch.BranchID != nil {
		updates["branch_id"] = *patch.BranchID
	}
	if patch.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hashed)
	}
	if len(updates) == 0 {
		return user, nil
	}

	err = inTx(s.DB, func(tx *gorm.DB) error {
		return s.Users.Update(tx, user.ID, updates)
	})
	if err != nil {
		if isDuplicateKey(err) {
			return nil, apperr.Conflictf("user with this email or phone number already exists")
		}
		return nil, err
	}
	return s.Get(adminShopID, userID)
}

// Delete soft-deletes a user of the admin's shop. Deleting a user from
// another shop fails loudly instead of no-opping.
func (s *UserService) Delete(adminShopID, userID uint) error {
	user, err := s.Get(adminShopID, userID)
	if err != nil {
		return err
	}
	return inTx(s.DB, func(tx *gorm.DB) error {
		return s.Users.SoftDelete(tx, user.ID)
	})
}

type UserRestoreReq struct {
	Email    *string `json:"email"`
	PhoneNo  *string `json:"phoneNo"`
	BranchID uint    `json:"branchId" binding:"required"`
}

// Restore brings a soft-deleted user back into a branch of the admin's
// shop. Exactly one of email or phone identifies the user.
func (s *UserService) Restore(adminShopID uint, req *UserRestoreReq) (*entity.User, error) {
	hasEmail := req.Email != nil && strings.TrimSpace(*req.Email) != ""
	hasPhone := req.PhoneNo != nil && strings.TrimSpace(*req.PhoneNo) != ""
	if hasEmail == hasPhone {
		return nil, apperr.BadRequestf("exactly one of email or phone number must be provided")
	}

	ok, err := s.Branches.BelongsToShop(req.BranchID, adminShopID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFoundf("this branch with id = %d does not exist", req.BranchID)
	}

	var email, phone string
	if hasEmail {
		email = strings.ToLower(strings.TrimSpace(*req.Email))
	} else {
		phone = strings.TrimSpace(*req.PhoneNo)
	}

	user, err := s.Users.FindByContact(email, phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("this user does not exist")
		}
		return nil, err
	}
	if !user.Deleted {
		return nil, apperr.BadRequestf("user already exists in a branch")
	}

	err = inTx(s.DB, func(tx *gorm.DB) error {
		return s.Users.Update(tx, user.ID, map[string]any{
			"deleted":   false,
			"branch_id": req.BranchID,
		})
	})
	if err != nil {
		return nil, err
	}
	return s.Get(adminShopID, user.ID)
}

// checkContactsFree rejects an email or phone that is already taken.
// Whether soft-deleted users still occupy their contacts is the
// ReuseDeletedContacts policy; the unique indexes stay authoritative
// either way.
func (s *UserService) checkContactsFree(email, phone string, excludeID *uint) error {
	includeDeleted := !s.reuseDeletedContacts
	if email != "" {
		exists, err := s.Users.ExistsByEmail(email, excludeID, includeDeleted)
		if err != nil {
			return err
		}
		if exists {
			return apperr.Conflictf("user with this email or phone number already exists")
		}
	}
	if phone != "" {
		exists, err := s.Users.ExistsByPhone(phone, excludeID, includeDeleted)
		if err != nil {
			return err
		}
		if exists {
			return apperr.Conflictf("user with this email or phone number already exists")
		}
	}
	return nil
}
