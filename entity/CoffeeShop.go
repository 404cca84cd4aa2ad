package entity

// CoffeeShop is the root tenant entity. Everything else in the system
// belongs to exactly one coffee shop, directly or through its branch.
type CoffeeShop struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Location    string `gorm:"not null" json:"location"`
	ContactInfo string `json:"contactInfo"`

	Branches       []Branch        `json:"-"`
	Customers      []Customer      `json:"-"`
	MenuItems      []MenuItem      `json:"-"`
	InventoryItems []InventoryItem `json:"-"`
}
