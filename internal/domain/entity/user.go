package entity

import "time"

// Role cargo del usuario dentro del equipo comercial.
type Role string

// Roles válidos para UserProfile.
const (
	RoleVendor     Role = "vendor"
	RoleSupervisor Role = "supervisor"
	RoleManager    Role = "manager"
	RoleAdmin      Role = "admin"
)

// Valid indica si r es uno de los cargos conocidos.
func (r Role) Valid() bool {
	switch r {
	case RoleVendor, RoleSupervisor, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// UserProfile perfil de una cuenta (tabla profiles). Uno por cuenta.
type UserProfile struct {
	ID        string
	Email     string
	Role      Role
	CreatedAt time.Time
}

// Session sesión autenticada entregada por el proveedor de identidad externo.
type Session struct {
	UserID    string
	Email     string
	Token     string
	ExpiresAt time.Time
}

// SessionEvent cambio de sesión: Session nil significa cierre de sesión de UserID.
type SessionEvent struct {
	UserID  string
	Session *Session
}

// Started indica si el evento abre una sesión.
func (e SessionEvent) Started() bool { return e.Session != nil }
