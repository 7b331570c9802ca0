package user

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound = errors.New("usuário não encontrado")
	ErrNoUsersFound = errors.New("nenhum usuário encontrado")
)

// Role representa o papel/função do usuário
type Role string

// Constantes para Role
const (
	RoleAdmin  Role = "admin"  // Administrador do sistema
	RoleClient Role = "client" // Cliente comum (papel padrão)
	RoleFilial Role = "filial" // Operador de filial
)

// User representa um usuário do sistema
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Role           Role      `json:"role"`
	SelectedFilial string    `json:"selected_filial"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// IsAdmin verifica se o usuário é um administrador
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsFilial verifica se o usuário é um operador de filial
func (u *User) IsFilial() bool {
	return u.Role == RoleFilial
}

// SetRole altera o papel do usuário
func (u *User) SetRole(role Role) {
	u.Role = role
	u.UpdatedAt = time.Now()
}
