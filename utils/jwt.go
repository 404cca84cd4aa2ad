package utils

import (
	"errors"
	"fmt"
	"time"

	"coffeeshop-backend/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the verified identity: the user, its role and the
// branch/shop it belongs to. Everything downstream trusts this struct.
type Claims struct {
	UserID       uint            `json:"userId"`
	Role         entity.UserRole `json:"role"`
	BranchID     uint            `json:"branchId"`
	CoffeeShopID uint            `json:"coffeeShopId"`
	jwt.RegisteredClaims
}

func GenerateToken(user *entity.User, coffeeShopID uint, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:       user.ID,
		Role:         user.Role,
		BranchID:     user.BranchID,
		CoffeeShopID: coffeeShopID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
