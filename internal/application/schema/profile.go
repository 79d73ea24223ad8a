package schema

import (
	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
)

// ProfileRolePatch update parcial del cargo.
func ProfileRolePatch(role entity.Role) repository.Record {
	return repository.Record{"role": string(role)}
}

// ProfileToInternal convierte una fila de profiles en entidad. El cargo se copia tal cual;
// la política de autorización decide qué hacer con cargos desconocidos.
func ProfileToInternal(rec repository.Record) entity.UserProfile {
	return entity.UserProfile{
		ID:        asID(rec[colID]),
		Email:     asString(rec["email"]),
		Role:      entity.Role(asString(rec["role"])),
		CreatedAt: asTime(rec[colCreatedAt]),
	}
}

// ProfilesToInternal convierte un conjunto de filas preservando el orden.
func ProfilesToInternal(recs []repository.Record) []entity.UserProfile {
	out := make([]entity.UserProfile, 0, len(recs))
	for _, r := range recs {
		out = append(out, ProfileToInternal(r))
	}
	return out
}
