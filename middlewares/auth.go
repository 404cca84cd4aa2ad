package middlewares

import (
	"strings"

	"coffeeshop-backend/entity"
	"coffeeshop-backend/pkg/resp"
	"coffeeshop-backend/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and stores the identity in the
// context. When roles are given, the caller's role must be one of them.
func AuthMiddleware(jwtSecret string, requiredRoles ...entity.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, jwtSecret)
		if err != nil {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		utils.SetIdentity(c, utils.Identity{
			UserID:       claims.UserID,
			Role:         claims.Role,
			BranchID:     claims.BranchID,
			CoffeeShopID: claims.CoffeeShopID,
		})

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if claims.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				resp.Forbidden(c, "forbidden")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
