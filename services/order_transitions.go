package services

import (
	"errors"

	"coffeeshop-backend/entity"
	"coffeeshop-backend/pkg/apperr"

	"gorm.io/gorm"
)

// roleStatusTargets maps a role to the statuses it may set an order to.
// The table is keyed by role alone, not by the order's current status:
// a chef may move a COMPLETED order back to IN_PROGRESS. Admins and
// order receivers have no direct status grant.
var roleStatusTargets = map[entity.UserRole][]entity.OrderStatus{
	entity.RoleCashier: {entity.StatusClosed},
	entity.RoleChef:    {entity.StatusInProgress, entity.StatusCompleted},
}

func statusAllowedFor(role entity.UserRole, status entity.OrderStatus) bool {
	for _, s := range roleStatusTargets[role] {
		if s == status {
			return true
		}
	}
	return false
}

type OrderStatusReq struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

// UpdateStatus overwrites the order's status when the actor's role is
// allowed to set the target. The order must live in the actor's shop.
func (s *OrderService) UpdateStatus(shopID uint, role entity.UserRole, orderID uint, req *OrderStatusReq) error {
	if !req.Status.Valid() {
		return apperr.BadRequestf("invalid status %q", req.Status)
	}

	order, err := s.findOrder(shopID, orderID)
	if err != nil {
		return err
	}
	if !statusAllowedFor(role, req.Status) {
		return apperr.BadRequestf("unacceptable change of the status")
	}

	return inTx(s.DB, func(tx *gorm.DB) error {
		return s.Orders.UpdateStatus(tx, order.ID, req.Status)
	})
}

// Assign puts a chef of the same shop on the order.
func (s *OrderService) Assign(shopID, orderID, userID uint) error {
	order, err := s.findOrder(shopID, orderID)
	if err != nil {
		return err
	}

	chef, err := s.Users.FindByID(userID, shopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("this user with id = %d does not exist", userID)
		}
		return err
	}
	if chef.Role != entity.RoleChef {
		return apperr.BadRequestf("the assigner must be a chef")
	}

	return inTx(s.DB, func(tx *gorm.DB) error {
		return s.Orders.Assign(tx, order.ID, chef.ID)
	})
}
