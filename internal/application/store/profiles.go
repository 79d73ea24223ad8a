package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/vendas-dashboard/internal/application/schema"
	"github.com/jhoicas/vendas-dashboard/internal/domain"
	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
)

const colProfiles = repository.CollectionProfiles

// ListProfiles lista los perfiles (más recientes primero) para la administración de cargos.
// Los perfiles no se guardan en la caché; una lectura fallida devuelve lista vacía.
func (s *Store) ListProfiles(ctx context.Context) []entity.UserProfile {
	return schema.ProfilesToInternal(s.list(ctx, colProfiles, newestFirst))
}

// UpdateProfileRole cambia el cargo almacenado de una cuenta.
func (s *Store) UpdateProfileRole(ctx context.Context, id string, role entity.Role) (entity.UserProfile, error) {
	if err := s.checkOpen(); err != nil {
		return entity.UserProfile{}, err
	}
	if id == "" || !role.Valid() {
		return entity.UserProfile{}, fmt.Errorf("%w: cargo %q", domain.ErrInvalidInput, role)
	}
	recs, err := s.remote.Update(ctx, colProfiles, id, schema.ProfileRolePatch(role))
	if err == nil && len(recs) == 0 {
		err = fmt.Errorf("%w: %w", domain.ErrNotFound, ErrEmptyResponse)
	}
	if err != nil {
		remoteWriteFailures.WithLabelValues(colProfiles, opUpdate).Inc()
		s.log.Error().Err(err).Str("profile_id", id).Str("role", string(role)).Msg("actualización de cargo fallida")
		return entity.UserProfile{}, &domain.RemoteWriteError{Collection: colProfiles, Op: opUpdate, Err: err}
	}
	return schema.ProfileToInternal(recs[0]), nil
}
