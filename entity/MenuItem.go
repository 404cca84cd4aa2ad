package entity

type MenuItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Deleted     bool    `gorm:"not null;default:false" json:"-"`

	CoffeeShopID uint       `gorm:"index;not null" json:"coffeeShopId"`
	CoffeeShop   CoffeeShop `json:"-"`

	OrderItems []OrderItem `gorm:"foreignKey:ItemID" json:"-"`
}
