package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/vendas-dashboard/internal/application/dto"
	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
)

// AdminHandler administración de cargos (solo admin).
type AdminHandler struct {
	manager sessionManager
	log     zerolog.Logger
}

// NewAdminHandler construye el handler.
func NewAdminHandler(manager sessionManager, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{manager: manager, log: log}
}

// ListProfiles GET /api/admin/profiles
func (h *AdminHandler) ListProfiles(c *fiber.Ctx) error {
	profiles := GetStore(c).ListProfiles(c.UserContext())
	out := make([]dto.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, dto.NewProfileResponse(p))
	}
	return c.JSON(out)
}

// UpdateRole PUT /api/admin/profiles/:id/role. Si la cuenta tiene sesión abierta, su cargo
// se vuelve a resolver.
func (h *AdminHandler) UpdateRole(c *fiber.Ctx) error {
	var in dto.UpdateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id := c.Params("id")
	out, err := GetStore(c).UpdateProfileRole(c.UserContext(), id, entity.Role(in.Role))
	if err != nil {
		return writeError(c, h.log, err)
	}
	h.manager.RefreshRole(c.UserContext(), id)
	h.log.Info().Str("profile_id", id).Str("role", in.Role).Str("by", GetUserID(c)).Msg("cargo actualizado")
	return c.JSON(dto.NewProfileResponse(out))
}
