package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/vendas-dashboard/internal/application/schema"
	"github.com/jhoicas/vendas-dashboard/internal/domain"
	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
)

const colObjections = repository.CollectionObjections

// CreateObjection igual que CreateProduct: sin inserción optimista.
func (s *Store) CreateObjection(ctx context.Context, o entity.Objection) (entity.Objection, error) {
	if err := s.checkOpen(); err != nil {
		return entity.Objection{}, err
	}
	if err := o.Validate(); err != nil {
		return entity.Objection{}, err
	}
	recs, err := s.remote.Insert(ctx, colObjections, schema.ObjectionToExternal(o, false))
	if err == nil && len(recs) == 0 {
		err = ErrEmptyResponse
	}
	if err != nil {
		return entity.Objection{}, s.writeFailed(colObjections, opInsert, "", err)
	}
	created := schema.ObjectionToInternal(recs[0])

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.objections = prepend(s.objections, created)
		s.setState(colObjections, created.ID, StateSynced)
	}
	return created, nil
}

// UpdateObjection actualiza por id; ante falla la memoria no cambia.
func (s *Store) UpdateObjection(ctx context.Context, o entity.Objection) (entity.Objection, error) {
	if err := s.checkOpen(); err != nil {
		return entity.Objection{}, err
	}
	if o.ID == "" {
		return entity.Objection{}, fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	if err := o.Validate(); err != nil {
		return entity.Objection{}, err
	}
	recs, err := s.remote.Update(ctx, colObjections, o.ID, schema.ObjectionToExternal(o, false))
	if err == nil && len(recs) == 0 {
		err = fmt.Errorf("%w: %w", domain.ErrNotFound, ErrEmptyResponse)
	}
	if err != nil {
		return entity.Objection{}, s.writeFailed(colObjections, opUpdate, o.ID, err)
	}
	saved := schema.ObjectionToInternal(recs[0])

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.objections, _ = replaceByID(s.objections, o.ID, objectionID, saved)
		s.setState(colObjections, saved.ID, StateSynced)
	}
	return saved, nil
}

// RemoveObjection borra por id.
func (s *Store) RemoveObjection(ctx context.Context, id string) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if err := s.remote.Delete(ctx, colObjections, id); err != nil {
		return s.writeFailed(colObjections, opDelete, id, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.objections, _ = removeByID(s.objections, id, objectionID)
		delete(s.states, stateKey(colObjections, id))
	}
	return nil
}
