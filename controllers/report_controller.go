package controllers

import (
	"coffeeshop-backend/pkg/resp"
	"coffeeshop-backend/services"
	"coffeeshop-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{Reports: reports}
}

// GET /reports/customers-orders?order_by=total_paid&sort=desc
func (rc *ReportController) CustomersOrders(c *gin.Context) {
	id := utils.CurrentIdentity(c)

	rows, err := rc.Reports.CustomersOrders(id.CoffeeShopID, c.Query("order_by"), c.Query("sort"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rows)
}

// GET /reports/chefs-orders?from_date=2026-01-01&to_date=2026-01-31
func (rc *ReportController) ChefsOrders(c *gin.Context) {
	id := utils.CurrentIdentity(c)

	rows, err := rc.Reports.ChefsOrders(id.CoffeeShopID, c.Query("from_date"), c.Query("to_date"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rows)
}

// GET /reports/issuers-orders?from_date=...&to_date=...
func (rc *ReportController) IssuersOrders(c *gin.Context) {
	id := utils.CurrentIdentity(c)

	rows, err := rc.Reports.IssuersOrders(id.CoffeeShopID, c.Query("from_date"), c.Query("to_date"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rows)
}

// GET /reports/income?from_date=...&to_date=...
func (rc *ReportController) Income(c *gin.Context) {
	id := utils.CurrentIdentity(c)

	row, err := rc.Reports.Income(id.CoffeeShopID, c.Query("from_date"), c.Query("to_date"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, row)
}

// GET /reports/new-customers?from_date=...&to_date=...
func (rc *ReportController) NewCustomers(c *gin.Context) {
	id := utils.CurrentIdentity(c)

	out, err := rc.Reports.NewCustomers(id.CoffeeShopID, c.Query("from_date"), c.Query("to_date"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /reports/top-selling-items?from_date=...&to_date=...&sort=desc
func (rc *ReportController) TopSellingItems(c *gin.Context) {
	id := utils.CurrentIdentity(c)

	rows, err := rc.Reports.TopSellingItems(id.CoffeeShopID, c.Query("from_date"), c.Query("to_date"), c.Query("sort"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rows)
}
