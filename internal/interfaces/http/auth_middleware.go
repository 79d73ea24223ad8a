package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vendas-dashboard/internal/application/auth"
	"github.com/jhoicas/vendas-dashboard/internal/application/dto"
	"github.com/jhoicas/vendas-dashboard/internal/application/store"
	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
)

// Locals keys de la sesión en Fiber.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
	LocalRole   = "role"
	LocalStore  = "store"
)

// sessionManager lo que los handlers necesitan de *auth.Manager.
type sessionManager interface {
	Open(ctx context.Context, sess *entity.Session) (auth.Active, error)
	SignOut(userID string)
	RefreshRole(ctx context.Context, userID string)
}

// AuthMiddleware valida el Bearer Token de Supabase, abre (o reutiliza) la sesión y deja en
// c.Locals el usuario, su cargo y su store.
func AuthMiddleware(sessions repository.SessionSource, manager sessionManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		sess, err := sessions.Session(tokenString)
		if err != nil || sess == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		active, err := manager.Open(c.UserContext(), sess)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: "sesión no disponible"})
		}
		c.Locals(LocalUserID, active.UserID)
		c.Locals(LocalEmail, active.Email)
		c.Locals(LocalRole, string(active.Role))
		c.Locals(LocalStore, active.Store)
		return c.Next()
	}
}

// RequireRole permite el paso solo a los cargos indicados. Debe usarse después de AuthMiddleware.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "cargo no resuelto"})
		}
		for _, r := range roles {
			if entity.Role(role) == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el cargo '" + role + "' no tiene acceso"})
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetEmail devuelve el email de la sesión.
func GetEmail(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalEmail).(string)
	return s
}

// GetRole devuelve el cargo resuelto de la sesión.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

// GetStore devuelve el store de la sesión; nil fuera de rutas protegidas.
func GetStore(c *fiber.Ctx) *store.Store {
	s, _ := c.Locals(LocalStore).(*store.Store)
	return s
}
