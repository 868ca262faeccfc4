package domain

// UserRole роль пользователя
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User пользователь с балансом
type User struct {
	ID      int64
	Name    string
	Email   string
	Role    UserRole
	Balance float64
}

// IsAdmin возвращает true для администратора
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
