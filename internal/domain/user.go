package domain

// Role values for staff accounts. ADMIN can do everything; EMPLOYEE is
// limited to day-to-day counter operations.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

// User is a staff account operating the rental counter, not a customer.
type User struct {
	ID           int32  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}
