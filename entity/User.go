package entity

type UserRole string

const (
	RoleAdmin         UserRole = "ADMIN"
	RoleCashier       UserRole = "CASHIER"
	RoleChef          UserRole = "CHEF"
	RoleOrderReceiver UserRole = "ORDER_RECEIVER"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleCashier, RoleChef, RoleOrderReceiver:
		return true
	}
	return false
}

// User is a staff member. Email and phone are unique across the whole
// system, not per shop; a soft-deleted user keeps occupying both.
type User struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	FirstName string   `gorm:"not null" json:"firstName"`
	LastName  string   `gorm:"not null" json:"lastName"`
	Email     string   `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNo   string   `gorm:"uniqueIndex;not null" json:"phoneNo"`
	Password  string   `gorm:"not null" json:"-"`
	Role      UserRole `gorm:"type:varchar(20);not null" json:"role"`
	Deleted   bool     `gorm:"not null;default:false" json:"-"`

	BranchID uint   `gorm:"index;not null" json:"branchId"`
	Branch   Branch `json:"-"`
}
