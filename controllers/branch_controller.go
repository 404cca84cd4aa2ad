package controllers

import (
	"coffeeshop-backend/pkg/resp"
	"coffeeshop-backend/services"
	"coffeeshop-backend/utils"

	"github.com/gin-gonic/gin"
)

type BranchController struct {
	Branches *services.BranchService
}

func NewBranchController(branches *services.BranchService) *BranchController {
	return &BranchController{Branches: branches}
}

// POST /branches
func (bc *BranchController) Create(c *gin.Context) {
	id := utils.CurrentIdentity(c)

	var req services.BranchCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	branch, err := bc.Branches.Create(id.CoffeeShopID, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, branch)
}

// GET /branches
func (bc *BranchController) List(c *gin.Context) {
	id := utils.CurrentIdentity(c)

	branches, err := bc.Branches.List(id.CoffeeShopID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, branches)
}

// GET /branches/:id
func (bc *BranchController) Get(c *gin.Context) {
	id := utils.CurrentIdentity(c)
	branchID, ok := paramID(c, "id")
	if !ok {
		return
	}

	branch, err := bc.Branches.Get(id.CoffeeShopID, branchID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, branch)
}

// PUT /branches/:id
func (bc *BranchController) Update(c *gin.Context) {
	id := utils.CurrentIdentity(c)
	branchID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var patch services.BranchPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	branch, err := bc.Branches.Update(id.CoffeeShopID, branchID, &patch)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, branch)
}

// DELETE /branches/:id
func (bc *BranchController) Delete(c *gin.Context) {
	id := utils.CurrentIdentity(c)
	branchID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := bc.Branches.Delete(id.CoffeeShopID, branchID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
