package auth

import (
	"context"
	"fmt"

	"github.com/jhoicas/vendas-dashboard/internal/application/schema"
	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
)

// ProfileRoles consulta el cargo en la colección profiles.
type ProfileRoles struct {
	remote repository.RemoteStore
}

// NewProfileRoles construye la consulta de cargos.
func NewProfileRoles(remote repository.RemoteStore) *ProfileRoles {
	return &ProfileRoles{remote: remote}
}

var _ repository.RoleLookup = (*ProfileRoles)(nil)

// Role devuelve el cargo almacenado; ok=false si la cuenta no tiene perfil o el cargo está vacío.
func (r *ProfileRoles) Role(ctx context.Context, userID string) (entity.Role, bool, error) {
	recs, err := r.remote.List(ctx, repository.CollectionProfiles, repository.Query{}.Eq("id", userID))
	if err != nil {
		return "", false, fmt.Errorf("consultar cargo de %s: %w", userID, err)
	}
	if len(recs) == 0 {
		return "", false, nil
	}
	p := schema.ProfileToInternal(recs[0])
	return p.Role, p.Role != "", nil
}
