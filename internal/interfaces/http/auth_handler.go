package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vendas-dashboard/internal/application/auth"
	"github.com/jhoicas/vendas-dashboard/internal/application/dto"
	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
)

// AuthHandler sesión actual y cierre de sesión. El inicio de sesión lo hace el cliente
// directamente contra Supabase Auth.
type AuthHandler struct {
	manager sessionManager
	policy  auth.Policy
}

// NewAuthHandler construye el handler.
func NewAuthHandler(manager sessionManager, policy auth.Policy) *AuthHandler {
	return &AuthHandler{manager: manager, policy: policy}
}

// Me GET /api/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	st := GetStore(c)
	role := entity.Role(GetRole(c))
	return c.JSON(dto.MeResponse{
		UserID:         GetUserID(c),
		Email:          GetEmail(c),
		Role:           string(role),
		CanEditCatalog: h.policy.CanEditCatalog(role),
		Loading:        st.Loading(),
		SelectedDate:   st.SelectedDate(),
	})
}

// SignOut POST /api/auth/signout: cierra la sesión y descarta su store.
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	h.manager.SignOut(GetUserID(c))
	return c.JSON(dto.MessageResponse{Message: "sesión cerrada"})
}
