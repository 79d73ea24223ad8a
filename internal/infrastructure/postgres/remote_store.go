package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
)

var _ repository.RemoteStore = (*RemoteStore)(nil)

// RemoteStore implementación del puerto RemoteStore sobre las tablas de Supabase (usable con pool o tx).
type RemoteStore struct {
	q   Querier
	log zerolog.Logger
}

// NewRemoteStore construye el gateway. Pasar pool o tx (Querier).
func NewRemoteStore(q Querier, log zerolog.Logger) *RemoteStore {
	return &RemoteStore{q: q, log: log.With().Str("component", "gateway").Logger()}
}

// List devuelve las filas que cumplen los filtros, en el orden pedido.
func (r *RemoteStore) List(ctx context.Context, collection string, q repository.Query) ([]repository.Record, error) {
	sql, args, err := buildSelect(collection, q)
	if err != nil {
		return nil, err
	}
	recs, err := r.collect(ctx, sql, args)
	if err != nil {
		return nil, wrapPgError("list", collection, err)
	}
	r.log.Debug().Str("collection", collection).Int("rows", len(recs)).Msg("list")
	return recs, nil
}

// Insert inserta y devuelve la fila canónica (id y created_at del servidor).
func (r *RemoteStore) Insert(ctx context.Context, collection string, rec repository.Record) ([]repository.Record, error) {
	sql, args, err := buildInsert(collection, rec)
	if err != nil {
		return nil, err
	}
	recs, err := r.collect(ctx, sql, args)
	if err != nil {
		return nil, wrapPgError("insert", collection, err)
	}
	return recs, nil
}

// Update aplica el patch a la fila id. Sin coincidencias devuelve una lista vacía.
func (r *RemoteStore) Update(ctx context.Context, collection, id string, patch repository.Record) ([]repository.Record, error) {
	sql, args, err := buildUpdate(collection, id, patch)
	if err != nil {
		return nil, err
	}
	recs, err := r.collect(ctx, sql, args)
	if err != nil {
		return nil, wrapPgError("update", collection, err)
	}
	return recs, nil
}

// Delete borra la fila id. Borrar una fila inexistente no es error.
func (r *RemoteStore) Delete(ctx context.Context, collection, id string) error {
	sql, args, err := buildDelete(collection, id)
	if err != nil {
		return err
	}
	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return wrapPgError("delete", collection, err)
	}
	if tag.RowsAffected() == 0 {
		r.log.Debug().Str("collection", collection).Str("id", id).Msg("delete sin filas")
	}
	return nil
}

func (r *RemoteStore) collect(ctx context.Context, sql string, args []any) ([]repository.Record, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, err
	}
	out := make([]repository.Record, len(maps))
	for i, m := range maps {
		out[i] = repository.Record(m)
	}
	return out, nil
}
