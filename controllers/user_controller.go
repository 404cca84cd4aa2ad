package controllers

import (
	"strconv"

	"coffeeshop-backend/entity"
	"coffeeshop-backend/pkg/resp"
	"coffeeshop-backend/services"
	"coffeeshop-backend/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// POST /users
func (uc *UserController) Create(c *gin.Context) {
	id := utils.CurrentIdentity(c)

	var req services.UserCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := uc.Users.Create(id.CoffeeShopID, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, user)
}

// GET /users
func (uc *UserController) List(c *gin.Context) {
	id := utils.CurrentIdentity(c)

	users, err := uc.Users.List(id.CoffeeShopID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, users)
}

// GET /users/:id
func (uc *UserController) Get(c *gin.Context) {
	id := utils.CurrentIdentity(c)
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}

	user, err := uc.Users.Get(id.CoffeeShopID, userID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}

// UserPutReq is the full-replacement body; every field is required, in
// contrast with the patch body where everything is optional.
type UserPutReq struct {
	FirstName string          `json:"firstName" binding:"required"`
	LastName  string          `json:"lastName" binding:"required"`
	Email     string          `json:"email" binding:"required,email"`
	PhoneNo   string          `json:"phoneNo" binding:"required"`
	Password  string          `json:"password" binding:"required,min=8"`
	Role      entity.UserRole `json:"role" binding:"required"`
	BranchID  uint            `json:"branchId" binding:"required"`
}

// PUT /users/:id
func (uc *UserController) Put(c *gin.Context) {
	id := utils.CurrentIdentity(c)
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UserPutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	patch := services.UserPatch{
		FirstName: &req.FirstName,
		LastName:  &req.LastName,
		Email:     &req.Email,
		PhoneNo:   &req.PhoneNo,
		Password:  &req.Password,
		Role:      &req.Role,
		BranchID:  &req.BranchID,
	}
	user, err := uc.Users.Update(id.CoffeeShopID, userID, &patch)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}

// PATCH /users/:id
func (uc *UserController) Patch(c *gin.Context) {
	id := utils.CurrentIdentity(c)
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var patch services.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := uc.Users.Update(id.CoffeeShopID, userID, &patch)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}

// DELETE /users/:id
func (uc *UserController) Delete(c *gin.Context) {
	id := utils.CurrentIdentity(c)
	userID, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := uc.Users.Delete(id.CoffeeShopID, userID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}

// POST /users/restore
func (uc *UserController) Restore(c *gin.Context) {
	id := utils.CurrentIdentity(c)

	var req services.UserRestoreReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := uc.Users.Restore(id.CoffeeShopID, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}
