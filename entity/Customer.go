package entity

import "time"

// Customer phone is unique within a shop, not globally; the same person
// may be a customer of several shops.
type Customer struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	Name    string    `gorm:"not null" json:"name"`
	PhoneNo string    `gorm:"not null;uniqueIndex:idx_customer_phone_shop,priority:1" json:"phoneNo"`
	Created time.Time `gorm:"not null;autoCreateTime" json:"created"`

	CoffeeShopID uint       `gorm:"not null;uniqueIndex:idx_customer_phone_shop,priority:2" json:"coffeeShopId"`
	CoffeeShop   CoffeeShop `json:"-"`

	Orders []Order `json:"-"`
}
