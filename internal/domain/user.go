package domain

type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleStaff UserRole = "STAFF"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusInactive UserStatus = "INACTIVE"
)

type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Name         string     `json:"name"`
	Role         UserRole   `json:"role"`
	Status       UserStatus `json:"status"`
	CreatedOn    string     `json:"created_on"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == UserRoleAdmin
}

type BranchStatus string

const (
	BranchStatusActive BranchStatus = "ACTIVE"
)

type Branch struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Address string       `json:"address"`
	Phone   string       `json:"phone"`
	Email   string       `json:"email"`
	Status  BranchStatus `json:"status"`
}
