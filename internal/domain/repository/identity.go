package repository

import (
	"context"
	"io"

	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
)

// SessionSource proveedor de identidad externo (opaco).
type SessionSource interface {
	// Session valida el token y devuelve la sesión; nil si no hay sesión.
	Session(token string) (*entity.Session, error)
	// OnSessionChange registra fn para inicios y cierres de sesión. Devuelve la función para desuscribir.
	OnSessionChange(fn func(entity.SessionEvent)) (unsubscribe func())
	// SignOut cierra la sesión de userID.
	SignOut(userID string)
}

// RoleLookup consulta el cargo almacenado de una cuenta. ok=false si no hay perfil.
type RoleLookup interface {
	Role(ctx context.Context, userID string) (role entity.Role, ok bool, err error)
}

// ImageUpload archivo de imagen a subir.
type ImageUpload struct {
	Name        string // nombre original, solo se usa la extensión
	ContentType string
	Body        io.Reader
}

// ImageStorage almacenamiento de imágenes del catálogo. Upload devuelve la URL pública.
type ImageStorage interface {
	Upload(ctx context.Context, img ImageUpload) (string, error)
}
