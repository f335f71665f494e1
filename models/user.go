package models

type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleAttendant Role = "ATTENDANT"
	RoleCustomer  Role = "CUSTOMER"
)

// User is a staff account. Customers order without an account, so only
// ADMIN and ATTENDANT users exist in the table.
type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Name         string `json:"name,omitempty"`
	Role         Role   `gorm:"type:VARCHAR(20)" json:"role"`
	PasswordHash string `json:"-"`
}

// RedirectPath is the landing route for a role right after login.
func (r Role) RedirectPath() string {
	switch r {
	case RoleAdmin:
		return "/admin/dashboard"
	case RoleAttendant:
		return "/attendant/orders"
	default:
		return "/"
	}
}
