package entity

import (
	"strings"
	"time"

	"github.com/jhoicas/vendas-dashboard/internal/domain"
)

// Categorías válidas del catálogo.
const (
	CategoryCobertura  = "Cobertura"
	CategoryEstrutura  = "Estrutura"
	CategoryAcabamento = "Acabamento"
	CategoryFixacao    = "Fixação"
)

// ProductCategories en el orden en que se muestran en la vitrina.
var ProductCategories = []string{CategoryCobertura, CategoryEstrutura, CategoryAcabamento, CategoryFixacao}

// Product representa un producto del catálogo técnico.
// Img es la imagen principal; Images la galería completa (nunca nil después de adaptar).
type Product struct {
	ID        string
	Name      string
	Category  string
	Desc      string // descripción técnica
	Cavaben   string // texto libre CARACTERÍSTICA / VANTAGEM / BENEFÍCIO
	Img       string
	Images    []string
	CreatedAt time.Time
}

// IsProductCategory indica si c pertenece al conjunto fijo de categorías.
func IsProductCategory(c string) bool {
	for _, known := range ProductCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Validate comprueba nombre y categoría antes de cualquier escritura remota.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return domain.ErrInvalidInput
	}
	if !IsProductCategory(p.Category) {
		return domain.ErrInvalidInput
	}
	return nil
}

// AddImages agrega URLs a la galería. La imagen principal pasa a ser la primera de la lista.
func (p *Product) AddImages(urls ...string) {
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			p.Images = append(p.Images, u)
		}
	}
	p.syncPrimary()
}

// RemoveImage quita la imagen en la posición i. Índices fuera de rango se ignoran.
func (p *Product) RemoveImage(i int) bool {
	if i < 0 || i >= len(p.Images) {
		return false
	}
	imgs := make([]string, 0, len(p.Images)-1)
	imgs = append(imgs, p.Images[:i]...)
	imgs = append(imgs, p.Images[i+1:]...)
	p.Images = imgs
	p.syncPrimary()
	return true
}

func (p *Product) syncPrimary() {
	if len(p.Images) > 0 {
		p.Img = p.Images[0]
		return
	}
	p.Images = []string{}
	p.Img = ""
}

// Clone copia profunda (la galería no se comparte).
func (p Product) Clone() Product {
	c := p
	c.Images = append([]string{}, p.Images...)
	return c
}
