package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/vendas-dashboard/internal/domain"
	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
)

// AttachProductImages sube las imágenes y las agrega a la galería del producto. Una subida
// fallida se registra y se omite; si ninguna sube se devuelve ErrNoImagesUploaded. La imagen
// principal queda igual a la primera de la galería.
func (s *Store) AttachProductImages(ctx context.Context, id string, uploads []repository.ImageUpload) (entity.Product, error) {
	if s.images == nil {
		return entity.Product{}, ErrNoImageStorage
	}
	p, ok := s.Product(id)
	if !ok {
		return entity.Product{}, domain.ErrNotFound
	}
	urls := make([]string, 0, len(uploads))
	for _, up := range uploads {
		url, err := s.images.Upload(ctx, up)
		if err != nil {
			s.log.Warn().Err(err).Str("product_id", id).Str("file", up.Name).Msg("subida de imagen fallida")
			continue
		}
		urls = append(urls, url)
	}
	if len(urls) == 0 {
		return entity.Product{}, ErrNoImagesUploaded
	}
	p.AddImages(urls...)
	return s.UpdateProduct(ctx, p)
}

// DetachProductImage quita la imagen en la posición index de la galería.
func (s *Store) DetachProductImage(ctx context.Context, id string, index int) (entity.Product, error) {
	p, ok := s.Product(id)
	if !ok {
		return entity.Product{}, domain.ErrNotFound
	}
	if !p.RemoveImage(index) {
		return entity.Product{}, fmt.Errorf("%w: índice de imagen %d", domain.ErrInvalidInput, index)
	}
	return s.UpdateProduct(ctx, p)
}
