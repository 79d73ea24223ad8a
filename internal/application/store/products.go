package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/vendas-dashboard/internal/application/schema"
	"github.com/jhoicas/vendas-dashboard/internal/domain"
	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
)

const colProducts = repository.CollectionProducts

// CreateProduct inserta el producto en el store remoto y, si responde, antepone la versión
// canónica en memoria. Sin inserción optimista: ante falla devuelve RemoteWriteError.
func (s *Store) CreateProduct(ctx context.Context, p entity.Product) (entity.Product, error) {
	if err := s.checkOpen(); err != nil {
		return entity.Product{}, err
	}
	if err := p.Validate(); err != nil {
		return entity.Product{}, err
	}
	recs, err := s.remote.Insert(ctx, colProducts, schema.ProductToExternal(p, false))
	if err == nil && len(recs) == 0 {
		err = ErrEmptyResponse
	}
	if err != nil {
		return entity.Product{}, s.writeFailed(colProducts, opInsert, "", err)
	}
	created := schema.ProductToInternal(recs[0])

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.products = prepend(s.products, created)
		s.setState(colProducts, created.ID, StateSynced)
	}
	return created.Clone(), nil
}

// UpdateProduct actualiza el registro completo por id y reemplaza la copia en memoria con
// la respuesta del servidor. Ante falla la memoria no cambia.
func (s *Store) UpdateProduct(ctx context.Context, p entity.Product) (entity.Product, error) {
	if err := s.checkOpen(); err != nil {
		return entity.Product{}, err
	}
	if p.ID == "" {
		return entity.Product{}, fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	if err := p.Validate(); err != nil {
		return entity.Product{}, err
	}
	recs, err := s.remote.Update(ctx, colProducts, p.ID, schema.ProductToExternal(p, false))
	if err == nil && len(recs) == 0 {
		err = fmt.Errorf("%w: %w", domain.ErrNotFound, ErrEmptyResponse)
	}
	if err != nil {
		return entity.Product{}, s.writeFailed(colProducts, opUpdate, p.ID, err)
	}
	saved := schema.ProductToInternal(recs[0])

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.products, _ = replaceByID(s.products, p.ID, productID, saved)
		s.setState(colProducts, saved.ID, StateSynced)
	}
	return saved.Clone(), nil
}

// RemoveProduct borra por id; solo quita de memoria si el servidor confirma.
func (s *Store) RemoveProduct(ctx context.Context, id string) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if err := s.remote.Delete(ctx, colProducts, id); err != nil {
		return s.writeFailed(colProducts, opDelete, id, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.products, _ = removeByID(s.products, id, productID)
		delete(s.states, stateKey(colProducts, id))
	}
	return nil
}
