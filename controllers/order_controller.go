package controllers

import (
	"strconv"
	"strings"

	"coffeeshop-backend/entity"
	"coffeeshop-backend/pkg/resp"
	"coffeeshop-backend/services"
	"coffeeshop-backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// POST /orders
func (oc *OrderController) Place(c *gin.Context) {
	id := utils.CurrentIdentity(c)

	var req services.PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Orders.Place(id.CoffeeShopID, id.UserID, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /orders?status=PENDING,IN_PROGRESS&page=1&size=20
func (oc *OrderController) List(c *gin.Context) {
	id := utils.CurrentIdentity(c)

	var statuses []entity.OrderStatus
	if raw := c.Query("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			statuses = append(statuses, entity.OrderStatus(strings.TrimSpace(s)))
		}
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	out, err := oc.Orders.List(id.CoffeeShopID, statuses, page, size)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /orders/:id
func (oc *OrderController) Get(c *gin.Context) {
	id := utils.CurrentIdentity(c)
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}

	out, err := oc.Orders.Get(id.CoffeeShopID, orderID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// PATCH /orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id := utils.CurrentIdentity(c)
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req services.OrderStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := oc.Orders.UpdateStatus(id.CoffeeShopID, id.Role, orderID, &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"status": req.Status})
}

// PATCH /orders/:id/assign/:userId
func (oc *OrderController) Assign(c *gin.Context) {
	id := utils.CurrentIdentity(c)
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}

	if err := oc.Orders.Assign(id.CoffeeShopID, orderID, userID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"assigned": true})
}
