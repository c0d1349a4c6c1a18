package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// User representa un usuario de la aplicación (login con email + contraseña).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string // "admin" | "operador"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
