package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	Base
	Email   string   `db:"email"`
	Name    string   `db:"name"`
	Role    UserRole `db:"role"`
	Phone   *string  `db:"phone"`
	Address *string  `db:"address"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
