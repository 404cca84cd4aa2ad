package services

import (
	"errors"
	"time"

	"coffeeshop-backend/entity"
	"coffeeshop-backend/pkg/apperr"
	"coffeeshop-backend/repository"

	"gorm.io/gorm"
)

// OrderService places orders and reads them back. Placement validates
// the menu items, upserts the customer by phone and writes the order with
// all its lines in one transaction, so a failed line never leaves an
// orphaned order behind.
type OrderService struct {
	DB        *gorm.DB
	Orders    *repository.OrderRepository
	Customers *repository.CustomerRepository
	MenuItems *repository.MenuItemRepository
	Users     *repository.UserRepository
}

func NewOrderService(
	db *gorm.DB,
	orderRepo *repository.OrderRepository,
	customerRepo *repository.CustomerRepository,
	menuItemRepo *repository.MenuItemRepository,
	userRepo *repository.UserRepository,
) *OrderService {
	return &OrderService{
		DB:        db,
		Orders:    orderRepo,
		Customers: customerRepo,
		MenuItems: menuItemRepo,
		Users:     userRepo,
	}
}

type CustomerDetailsIn struct {
	Name    string `json:"name" binding:"required"`
	PhoneNo string `json:"phoneNo" binding:"required"`
}

type OrderItemIn struct {
	ID       uint `json:"id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type PlaceOrderReq struct {
	CustomerDetails CustomerDetailsIn `json:"customerDetails" binding:"required"`
	OrderItems      []OrderItemIn     `json:"orderItems" binding:"required,min=1"`
}

type PlaceOrderRes struct {
	ID              uint               `json:"id"`
	CustomerPhoneNo string             `json:"customerPhoneNo"`
	Status          entity.OrderStatus `json:"status"`
}

// Place creates a PENDING order for the issuer's shop.
func (s *OrderService) Place(shopID, issuerID uint, req *PlaceOrderReq) (*PlaceOrderRes, error) {
	if err := s.validateItems(shopID, req.OrderItems); err != nil {
		return nil, err
	}

	var out PlaceOrderRes
	err := inTx(s.DB, func(tx *gorm.DB) error {
		customer, err := s.upsertCustomer(tx, shopID, req.CustomerDetails)
		if err != nil {
			return err
		}

		order := entity.Order{
			IssueDate:  time.Now(),
			Status:     entity.StatusPending,
			CustomerID: customer.ID,
			IssuerID:   issuerID,
		}
		if err := s.Orders.Create(tx, &order); err != nil {
			return err
		}

		for _, it := range req.OrderItems {
			line := entity.OrderItem{
				OrderID:  order.ID,
				ItemID:   it.ID,
				Quantity: it.Quantity,
			}
			if err := s.Orders.CreateItem(tx, &line); err != nil {
				return err
			}
		}

		out = PlaceOrderRes{
			ID:              order.ID,
			CustomerPhoneNo: customer.PhoneNo,
			Status:          order.Status,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// validateItems checks every requested id against the shop's active menu.
func (s *OrderService) validateItems(shopID uint, items []OrderItemIn) error {
	seen := make(map[uint]bool, len(items))
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		if !seen[it.ID] {
			seen[it.ID] = true
			ids = append(ids, it.ID)
		}
	}

	count, err := s.MenuItems.CountActiveInShop(ids, shopID)
	if err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return apperr.BadRequestf("menu item does not exist")
	}
	return nil
}

// upsertCustomer reuses the shop's customer row for a known phone and
// creates one otherwise. Both the lookup and the insert run on the
// order's transaction, and the insert tolerates a concurrent first order
// claiming the same phone.
func (s *OrderService) upsertCustomer(tx *gorm.DB, shopID uint, details CustomerDetailsIn) (*entity.Customer, error) {
	customer, err := s.Customers.FindByPhone(tx, details.PhoneNo, shopID)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := entity.Customer{
		Name:         details.Name,
		PhoneNo:      details.PhoneNo,
		CoffeeShopID: shopID,
	}
	if err := s.Customers.FindOrCreateByPhone(tx, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

type OrderLineOut struct {
	ItemID   uint `json:"id"`
	Quantity int  `json:"quantity"`
}

type OrderDetail struct {
	ID        uint               `json:"id"`
	IssueDate time.Time          `json:"issueDate"`
	IssuerID  uint               `json:"issuerId"`
	Status    entity.OrderStatus `json:"status"`
	PhoneNo   string             `json:"phoneNo"`
	Items     []OrderLineOut     `json:"items"`
}

func orderDetail(o *entity.Order) *OrderDetail {
	items := make([]OrderLineOut, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderLineOut{ItemID: it.ItemID, Quantity: it.Quantity})
	}
	return &OrderDetail{
		ID:        o.ID,
		IssueDate: o.IssueDate,
		IssuerID:  o.IssuerID,
		Status:    o.Status,
		PhoneNo:   o.Customer.PhoneNo,
		Items:     items,
	}
}

func (s *OrderService) Get(shopID, orderID uint) (*OrderDetail, error) {
	order, err := s.findOrder(shopID, orderID)
	if err != nil {
		return nil, err
	}
	return orderDetail(order), nil
}

type PaginatedOrders struct {
	TotalCount int64          `json:"totalCount"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	Orders     []*OrderDetail `json:"orders"`
}

// List returns one page of the shop's orders, optionally narrowed to a
// status set, together with the total matching count.
func (s *OrderService) List(shopID uint, statuses []entity.OrderStatus, page, size int) (*PaginatedOrders, error) {
	for _, st := range statuses {
		if !st.Valid() {
			return nil, apperr.BadRequestf("invalid status %q", st)
		}
	}
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}

	orders, total, err := s.Orders.List(shopID, statuses, page, size)
	if err != nil {
		return nil, err
	}

	out := make([]*OrderDetail, 0, len(orders))
	for i := range orders {
		out = append(out, orderDetail(&orders[i]))
	}
	return &PaginatedOrders{
		TotalCount: total,
		Page:       page,
		PageSize:   size,
		Orders:     out,
	}, nil
}

func (s *OrderService) findOrder(shopID, orderID uint) (*entity.Order, error) {
	order, err := s.Orders.FindByID(orderID, shopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("this order with id = %d does not exist", orderID)
		}
		return nil, err
	}
	return order, nil
}
