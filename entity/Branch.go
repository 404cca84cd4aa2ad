package entity

type Branch struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Location string `gorm:"not null" json:"location"`
	Deleted  bool   `gorm:"not null;default:false" json:"-"`

	CoffeeShopID uint       `gorm:"index;not null" json:"coffeeShopId"`
	CoffeeShop   CoffeeShop `json:"-"`

	Users []User `json:"-"`
}
