package dto

import (
	"time"

	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
)

// MeResponse sesión actual con el cargo resuelto.
type MeResponse struct {
	UserID         string `json:"user_id"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	CanEditCatalog bool   `json:"can_edit_catalog"`
	Loading        bool   `json:"loading"`
	SelectedDate   string `json:"selected_date"`
}

// ProfileResponse perfil para la administración de cargos.
type ProfileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateRoleRequest nuevo cargo de una cuenta.
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// NewProfileResponse convierte la entidad.
func NewProfileResponse(p entity.UserProfile) ProfileResponse {
	return ProfileResponse{ID: p.ID, Email: p.Email, Role: string(p.Role), CreatedAt: p.CreatedAt}
}
