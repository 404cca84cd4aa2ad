package entity

import "time"

type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusInProgress OrderStatus = "IN_PROGRESS"
	StatusCompleted  OrderStatus = "COMPLETED"
	StatusClosed     OrderStatus = "CLOSED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusClosed:
		return true
	}
	return false
}

// Order reaches its shop through the customer row; orders are never
// hard-deleted.
type Order struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	IssueDate time.Time   `gorm:"not null" json:"issueDate"`
	Status    OrderStatus `gorm:"type:varchar(20);not null" json:"status"`

	CustomerID uint     `gorm:"index;not null" json:"customerId"`
	Customer   Customer `json:"-"`

	// staff member who placed the order
	IssuerID uint `gorm:"index;not null" json:"issuerId"`
	Issuer   User `gorm:"foreignKey:IssuerID" json:"-"`

	// chef assigned to fulfil it, nil until assignment
	AssignerID *uint `gorm:"index" json:"assignerId"`
	Assigner   *User `gorm:"foreignKey:AssignerID" json:"-"`

	Items []OrderItem `json:"items"`
}
