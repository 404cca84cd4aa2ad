package services

import (
	"errors"
	"strings"
	"time"

	"coffeeshop-backend/entity"
	"coffeeshop-backend/pkg/apperr"
	"coffeeshop-backend/repository"
	"coffeeshop-backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles signup and login. Signup registers a whole tenant:
// the coffee shop, its first branch and its first admin in one transaction.
type AuthService struct {
	DB       *gorm.DB
	ShopRepo *repository.CoffeeShopRepository
	Branches *repository.BranchRepository
	Users    *repository.UserRepository

	jwtSecret string
	jwtTTL    time.Duration

	reuseDeletedContacts bool
}

func NewAuthService(
	db *gorm.DB,
	shopRepo *repository.CoffeeShopRepository,
	branchRepo *repository.BranchRepository,
	userRepo *repository.UserRepository,
	jwtSecret string,
	jwtTTL time.Duration,
	reuseDeletedContacts bool,
) *AuthService {
	return &AuthService{
		DB:                   db,
		ShopRepo:             shopRepo,
		Branches:             branchRepo,
		Users:                userRepo,
		jwtSecret:            jwtSecret,
		jwtTTL:               jwtTTL,
		reuseDeletedContacts: reuseDeletedContacts,
	}
}

type ShopDetailsIn struct {
	Name        string `json:"name" binding:"required"`
	Location    string `json:"location" binding:"required"`
	ContactInfo string `json:"contactInfo"`
}

type BranchDetailsIn struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
}

type AdminDetailsIn struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	PhoneNo   string `json:"phoneNo" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
}

type SignupReq struct {
	ShopDetails   ShopDetailsIn   `json:"shopDetails" binding:"required"`
	BranchDetails BranchDetailsIn `json:"branchDetails" binding:"required"`
	AdminDetails  AdminDetailsIn  `json:"adminDetails" binding:"required"`
}

type SignupRes struct {
	Email   string `json:"email"`
	PhoneNo string `json:"phoneNo"`
}

// Signup creates the shop, its first branch and the admin user
// atomically. A duplicate admin email or phone aborts the whole thing.
func (s *AuthService) Signup(req *SignupReq) (*SignupRes, error) {
	email := strings.ToLower(strings.TrimSpace(req.AdminDetails.Email))
	phone := strings.TrimSpace(req.AdminDetails.PhoneNo)

	includeDeleted := !s.reuseDeletedContacts
	if exists, err := s.Users.ExistsByEmail(email, nil, includeDeleted); err != nil {
		return nil, err
	} else if exists {
		return nil, apperr.Conflictf("user with this email or phone number already exists")
	}
	if exists, err := s.Users.ExistsByPhone(phone, nil, includeDeleted); err != nil {
		return nil, err
	} else if exists {
		return nil, apperr.Conflictf("user with this email or phone number already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.AdminDetails.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var admin entity.User
	err = inTx(s.DB, func(tx *gorm.DB) error {
		shop := entity.CoffeeShop{
			Name:        req.ShopDetails.Name,
			Location:    req.ShopDetails.Location,
			ContactInfo: req.ShopDetails.ContactInfo,
		}
		if err := s.ShopRepo.Create(tx, &shop); err != nil {
			return err
		}

		branch := entity.Branch{
			Name:         req.BranchDetails.Name,
			Location:     req.BranchDetails.Location,
			CoffeeShopID: shop.ID,
		}
		if err := s.Branches.Create(tx, &branch); err != nil {
			return err
		}

		admin = entity.User{
			FirstName: strings.TrimSpace(req.AdminDetails.FirstName),
			LastName:  strings.TrimSpace(req.AdminDetails.LastName),
			Email:     email,
			PhoneNo:   phone,
			Password:  string(hashed),
			Role:      entity.RoleAdmin,
			BranchID:  branch.ID,
		}
		return s.Users.Create(tx, &admin)
	})
	if err != nil {
		if isDuplicateKey(err) {
			return nil, apperr.Conflictf("user with this email or phone number already exists")
		}
		return nil, err
	}

	return &SignupRes{Email: admin.Email, PhoneNo: admin.PhoneNo}, nil
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRes struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
}

// Login verifies the credentials and issues a token carrying the user's
// role, branch and shop. Unknown email and wrong password are reported
// identically.
func (s *AuthService) Login(req *LoginReq) (*LoginRes, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.Users.FindActiveByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Unauthenticatedf("username or password incorrect")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperr.Unauthenticatedf("username or password incorrect")
	}

	coffeeShopID, err := s.Users.CoffeeShopIDOf(user.ID)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user, coffeeShopID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, err
	}
	return &LoginRes{AccessToken: token, TokenType: "bearer"}, nil
}
