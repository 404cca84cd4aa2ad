package controllers

import (
	"coffeeshop-backend/pkg/resp"
	"coffeeshop-backend/services"
	"coffeeshop-backend/utils"

	"github.com/gin-gonic/gin"
)

type CoffeeShopController struct {
	Shops *services.CoffeeShopService
}

func NewCoffeeShopController(shops *services.CoffeeShopService) *CoffeeShopController {
	return &CoffeeShopController{Shops: shops}
}

// PUT /coffee-shops/:id
func (sc *CoffeeShopController) Update(c *gin.Context) {
	id := utils.CurrentIdentity(c)
	shopID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var patch services.CoffeeShopPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	shop, err := sc.Shops.Update(id.CoffeeShopID, shopID, &patch)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, shop)
}
