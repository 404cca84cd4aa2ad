package entity

// OrderItem is the many-to-many row between orders and menu items with a
// quantity payload. Composite primary key, one row per item per order.
type OrderItem struct {
	OrderID  uint `gorm:"primaryKey;autoIncrement:false" json:"orderId"`
	ItemID   uint `gorm:"primaryKey;autoIncrement:false" json:"itemId"`
	Quantity int  `gorm:"not null" json:"quantity"`

	Order    Order    `json:"-"`
	MenuItem MenuItem `gorm:"foreignKey:ItemID" json:"-"`
}
