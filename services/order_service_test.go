package services

import (
	"testing"

	"coffeeshop-backend/entity"
	"coffeeshop-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderRoundTrip(t *testing.T) {
	e := newEnv(t)
	tn := signupTenant(t, e, "aroma")
	cashier := createStaff(t, e, tn, entity.RoleCashier, "aroma-cash")
	espresso := createMenuItem(t, e, tn.shopID, "espresso", 2.5)
	latte := createMenuItem(t, e, tn.shopID, "latte", 4.0)

	res := placeOrder(t, e, tn.shopID, cashier.ID, "555-0101",
		OrderItemIn{ID: espresso.ID, Quantity: 2},
		OrderItemIn{ID: latte.ID, Quantity: 1},
	)
	assert.Equal(t, entity.StatusPending, res.Status)
	assert.Equal(t, "555-0101", res.CustomerPhoneNo)

	got, err := e.orders.Get(tn.shopID, res.ID)
	require.NoError(t, err)
	assert.Equal(t, cashier.ID, got.IssuerID)
	assert.Equal(t, "555-0101", got.PhoneNo)
	assert.False(t, got.IssueDate.IsZero())

	want := map[uint]int{espresso.ID: 2, latte.ID: 1}
	require.Len(t, got.Items, 2)
	for _, line := range got.Items {
		assert.Equal(t, want[line.ItemID], line.Quantity)
	}
}

func TestPlaceOrderRejectsUnknownMenuItems(t *testing.T) {
	e := newEnv(t)
	tn := signupTenant(t, e, "aroma")
	other := signupTenant(t, e, "beanhub")
	cashier := createStaff(t, e, tn, entity.RoleCashier, "aroma-cash")
	foreign := createMenuItem(t, e, other.shopID, "flat white", 3.5)
	deleted := createMenuItem(t, e, tn.shopID, "retired", 1.0)
	require.NoError(t, e.menu.Delete(tn.shopID, deleted.ID))

	for _, itemID := range []uint{9999, foreign.ID, deleted.ID} {
		_, err := e.orders.Place(tn.shopID, cashier.ID, &PlaceOrderReq{
			CustomerDetails: CustomerDetailsIn{Name: "walk-in", PhoneNo: "555-0101"},
			OrderItems:      []OrderItemIn{{ID: itemID, Quantity: 1}},
		})
		assert.ErrorIs(t, err, apperr.ErrBadRequest)
	}

	// the rejected orders left nothing behind
	var count int64
	require.NoError(t, e.db.Model(&entity.Order{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
	require.NoError(t, e.db.Model(&entity.Customer{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestPlaceOrderReusesCustomerByPhone(t *testing.T) {
	e := newEnv(t)
	tn := signupTenant(t, e, "aroma")
	other := signupTenant(t, e, "beanhub")
	cashier := createStaff(t, e, tn, entity.RoleCashier, "aroma-cash")
	otherCashier := createStaff(t, e, other, entity.RoleCashier, "beanhub-cash")
	espresso := createMenuItem(t, e, tn.shopID, "espresso", 2.5)
	flatWhite := createMenuItem(t, e, other.shopID, "flat white", 3.5)

	placeOrder(t, e, tn.shopID, cashier.ID, "555-0101", OrderItemIn{ID: espresso.ID, Quantity: 1})
	placeOrder(t, e, tn.shopID, cashier.ID, "555-0101", OrderItemIn{ID: espresso.ID, Quantity: 2})

	// same phone within the shop maps to one customer row
	list, err := e.customers.List(tn.shopID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "555-0101", list[0].PhoneNo)

	// the same phone at another shop is a different customer
	placeOrder(t, e, other.shopID, otherCashier.ID, "555-0101", OrderItemIn{ID: flatWhite.ID, Quantity: 1})
	otherList, err := e.customers.List(other.shopID)
	require.NoError(t, err)
	require.Len(t, otherList, 1)
	assert.NotEqual(t, list[0].ID, otherList[0].ID)
}

func TestPlaceOrderRunsEntirelyOnItsTransaction(t *testing.T) {
	e := newEnv(t)
	sqlDB, err := e.db.DB()
	require.NoError(t, err)
	// one connection total: a query escaping the open transaction would
	// need a second connection and block instead of passing
	sqlDB.SetMaxOpenConns(1)

	tn := signupTenant(t, e, "aroma")
	cashier := createStaff(t, e, tn, entity.RoleCashier, "aroma-cash")
	espresso := createMenuItem(t, e, tn.shopID, "espresso", 2.5)

	// first order creates the customer, the repeat reuses it; both the
	// miss and the hit of the phone lookup run inside the transaction
	placeOrder(t, e, tn.shopID, cashier.ID, "555-0101", OrderItemIn{ID: espresso.ID, Quantity: 1})
	placeOrder(t, e, tn.shopID, cashier.ID, "555-0101", OrderItemIn{ID: espresso.ID, Quantity: 2})

	list, err := e.customers.List(tn.shopID)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestListOrdersPaginatesAndFilters(t *testing.T) {
	e := newEnv(t)
	tn := signupTenant(t, e, "aroma")
	cashier := createStaff(t, e, tn, entity.RoleCashier, "aroma-cash")
	espresso := createMenuItem(t, e, tn.shopID, "espresso", 2.5)

	var ids []uint
	for i := 0; i < 5; i++ {
		res := placeOrder(t, e, tn.shopID, cashier.ID, "555-0101", OrderItemIn{ID: espresso.ID, Quantity: 1})
		ids = append(ids, res.ID)
	}
	require.NoError(t, e.orders.UpdateStatus(tn.shopID, entity.RoleCashier, ids[0], &OrderStatusReq{Status: entity.StatusClosed}))

	page, err := e.orders.List(tn.shopID, nil, 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, page.TotalCount)
	assert.Len(t, page.Orders, 2)

	last, err := e.orders.List(tn.shopID, nil, 3, 2)
	require.NoError(t, err)
	assert.Len(t, last.Orders, 1)

	pending, err := e.orders.List(tn.shopID, []entity.OrderStatus{entity.StatusPending}, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 4, pending.TotalCount)

	closed, err := e.orders.List(tn.shopID, []entity.OrderStatus{entity.StatusClosed}, 1, 10)
	require.NoError(t, err)
	require.Len(t, closed.Orders, 1)
	assert.Equal(t, ids[0], closed.Orders[0].ID)

	_, err = e.orders.List(tn.shopID, []entity.OrderStatus{"SHIPPED"}, 1, 10)
	assert.ErrorIs(t, err, apperr.ErrBadRequest)
}

func TestOrderTenantIsolation(t *testing.T) {
	e := newEnv(t)
	tn := signupTenant(t, e, "aroma")
	other := signupTenant(t, e, "beanhub")
	cashier := createStaff(t, e, tn, entity.RoleCashier, "aroma-cash")
	espresso := createMenuItem(t, e, tn.shopID, "espresso", 2.5)

	res := placeOrder(t, e, tn.shopID, cashier.ID, "555-0101", OrderItemIn{ID: espresso.ID, Quantity: 1})

	_, err := e.orders.Get(other.shopID, res.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	err = e.orders.UpdateStatus(other.shopID, entity.RoleCashier, res.ID, &OrderStatusReq{Status: entity.StatusClosed})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	page, err := e.orders.List(other.shopID, nil, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 0, page.TotalCount)
	assert.Empty(t, page.Orders)
}
