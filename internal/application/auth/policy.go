// Package auth resuelve el cargo de cada cuenta y administra el ciclo de vida del store de
// cada sesión (se construye al iniciar sesión y se descarta al cerrarla).
package auth

import (
	"strings"

	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
)

// Policy reglas de autorización.
type Policy struct {
	adminEmail string
}

// NewPolicy crea la política. adminEmail es la cuenta que siempre es admin; vacío la desactiva.
func NewPolicy(adminEmail string) Policy {
	return Policy{adminEmail: normalizeEmail(adminEmail)}
}

// ResolveRole aplica, en orden:
//  1. el email de administrador configurado => admin;
//  2. un cargo almacenado válido => ese cargo;
//  3. en otro caso => vendor.
func (p Policy) ResolveRole(email string, stored entity.Role, ok bool) entity.Role {
	if p.adminEmail != "" && normalizeEmail(email) == p.adminEmail {
		return entity.RoleAdmin
	}
	if ok && stored.Valid() {
		return stored
	}
	return entity.RoleVendor
}

// CanEditCatalog solo admin crea, edita o borra productos y objeciones.
func (p Policy) CanEditCatalog(r entity.Role) bool { return r == entity.RoleAdmin }

// CanManageProfiles solo admin cambia cargos.
func (p Policy) CanManageProfiles(r entity.Role) bool { return r == entity.RoleAdmin }

func normalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
