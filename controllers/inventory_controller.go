package controllers

import (
	"coffeeshop-backend/pkg/resp"
	"coffeeshop-backend/services"
	"coffeeshop-backend/utils"

	"github.com/gin-gonic/gin"
)

type InventoryController struct {
	Inventory *services.InventoryService
}

func NewInventoryController(inventory *services.InventoryService) *InventoryController {
	return &InventoryController{Inventory: inventory}
}

// POST /inventory-items
func (ic *InventoryController) Create(c *gin.Context) {
	id := utils.CurrentIdentity(c)

	var req services.InventoryItemCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ic.Inventory.Create(id.CoffeeShopID, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// GET /inventory-items
func (ic *InventoryController) List(c *gin.Context) {
	id := utils.CurrentIdentity(c)

	items, err := ic.Inventory.List(id.CoffeeShopID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// PUT /inventory-items/:id
func (ic *InventoryController) Update(c *gin.Context) {
	id := utils.CurrentIdentity(c)
	itemID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var patch services.InventoryItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ic.Inventory.Update(id.CoffeeShopID, itemID, &patch)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /inventory-items/:id
func (ic *InventoryController) Delete(c *gin.Context) {
	id := utils.CurrentIdentity(c)
	itemID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := ic.Inventory.Delete(id.CoffeeShopID, itemID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
