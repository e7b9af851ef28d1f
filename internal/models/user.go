package models

const (
	RoleCustomer = "customer"
	RoleSales    = "sales"
)

// User matches the users table.
// Columns: uid, pwd (argon2id encoded hash), role ('customer' or 'sales')
type User struct {
	UID  int    `json:"uid"`
	Pwd  string `json:"-"`
	Role string `json:"role"`
}

func (u *User) IsCustomer() bool {
	return u.Role == RoleCustomer
}

func (u *User) IsSales() bool {
	return u.Role == RoleSales
}
