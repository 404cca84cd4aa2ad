package controllers

import (
	"coffeeshop-backend/pkg/resp"
	"coffeeshop-backend/services"
	"coffeeshop-backend/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{Menu: menu}
}

// POST /menu-items
func (mc *MenuController) Create(c *gin.Context) {
	id := utils.CurrentIdentity(c)

	var req services.MenuItemCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := mc.Menu.Create(id.CoffeeShopID, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// GET /menu-items
func (mc *MenuController) List(c *gin.Context) {
	id := utils.CurrentIdentity(c)

	items, err := mc.Menu.List(id.CoffeeShopID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// PUT /menu-items/:id
func (mc *MenuController) Update(c *gin.Context) {
	id := utils.CurrentIdentity(c)
	itemID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var patch services.MenuItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := mc.Menu.Update(id.CoffeeShopID, itemID, &patch)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /menu-items/:id
func (mc *MenuController) Delete(c *gin.Context) {
	id := utils.CurrentIdentity(c)
	itemID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := mc.Menu.Delete(id.CoffeeShopID, itemID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
