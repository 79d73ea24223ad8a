package dto

import (
	"time"

	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
)

// ProductRequest entrada para crear o actualizar un producto. Images nil conserva la galería
// actual en una actualización.
type ProductRequest struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Desc     string   `json:"desc"`
	Cavaben  string   `json:"cavaben"`
	Images   []string `json:"images,omitempty"`
}

// Apply copia los campos de la petición sobre p. Si trae imágenes, la principal pasa a ser la primera.
func (r ProductRequest) Apply(p *entity.Product) {
	p.Name = r.Name
	p.Category = r.Category
	p.Desc = r.Desc
	p.Cavaben = r.Cavaben
	if r.Images != nil {
		p.Images = nil
		p.Img = ""
		p.AddImages(r.Images...)
	}
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Desc      string    `json:"desc"`
	Cavaben   string    `json:"cavaben"`
	Img       string    `json:"img"`
	Images    []string  `json:"images"`
	CreatedAt time.Time `json:"created_at"`
	SyncState string    `json:"sync_state,omitempty"`
}

// ProductListResponse listado filtrado.
type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	Categories []string          `json:"categories"`
	Loading    bool              `json:"loading"`
}

// NewProductResponse convierte la entidad.
func NewProductResponse(p entity.Product, state string) ProductResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Desc:      p.Desc,
		Cavaben:   p.Cavaben,
		Img:       p.Img,
		Images:    images,
		CreatedAt: p.CreatedAt,
		SyncState: state,
	}
}
