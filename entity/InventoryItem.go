package entity

import "time"

type InventoryItem struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"not null" json:"name"`
	Price             float64   `gorm:"not null" json:"price"`
	ProdDate          time.Time `gorm:"type:date" json:"prodDate"`
	ExpireDate        time.Time `gorm:"type:date" json:"expireDate"`
	AvailableQuantity int       `gorm:"not null" json:"availableQuantity"`
	Deleted           bool      `gorm:"not null;default:false" json:"-"`

	CoffeeShopID uint       `gorm:"index;not null" json:"coffeeShopId"`
	CoffeeShop   CoffeeShop `json:"-"`
}
