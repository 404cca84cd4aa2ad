package controllers

import (
	"coffeeshop-backend/pkg/resp"
	"coffeeshop-backend/services"
	"coffeeshop-backend/utils"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	Customers *services.CustomerService
}

func NewCustomerController(customers *services.CustomerService) *CustomerController {
	return &CustomerController{Customers: customers}
}

// GET /customers
func (cc *CustomerController) List(c *gin.Context) {
	id := utils.CurrentIdentity(c)

	customers, err := cc.Customers.List(id.CoffeeShopID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, customers)
}

// PUT /customers/:id
func (cc *CustomerController) Update(c *gin.Context) {
	id := utils.CurrentIdentity(c)
	customerID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var patch services.CustomerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	customer, err := cc.Customers.Update(id.CoffeeShopID, customerID, &patch)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, customer)
}
