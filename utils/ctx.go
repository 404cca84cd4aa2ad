package utils

import (
	"coffeeshop-backend/entity"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Identity is the authenticated caller as stored in the gin context by
// the auth middleware.
type Identity struct {
	UserID       uint
	Role         entity.UserRole
	BranchID     uint
	CoffeeShopID uint
}

func SetIdentity(c *gin.Context, id Identity) {
	c.Set(identityKey, id)
}

func CurrentIdentity(c *gin.Context) Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(Identity); ok {
			return id
		}
	}
	return Identity{}
}
