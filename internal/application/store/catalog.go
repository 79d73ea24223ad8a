package store

import (
	"math"
	"strings"

	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
)

// AllCategories valor de filtro que no restringe por categoría.
const AllCategories = "Todas"

// FilterProducts filtra por categoría (vacío o "Todas" = todas) y por nombre, sin distinguir
// mayúsculas.
func (s *Store) FilterProducts(category, term string) []entity.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	out := []entity.Product{}
	for _, p := range s.Products() {
		if !matchesCategory(p.Category, category) {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterObjections filtra por categoría y por texto en la pregunta o en la respuesta.
func (s *Store) FilterObjections(category, term string) []entity.Objection {
	term = strings.ToLower(strings.TrimSpace(term))
	out := []entity.Objection{}
	for _, o := range s.Objections() {
		if !matchesCategory(o.Category, category) {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(o.Question), term) &&
			!strings.Contains(strings.ToLower(o.Answer), term) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// ObjectionCategories categorías distintas en orden de aparición.
func (s *Store) ObjectionCategories() []string {
	seen := map[string]bool{}
	out := []string{}
	for _, o := range s.Objections() {
		if !seen[o.Category] {
			seen[o.Category] = true
			out = append(out, o.Category)
		}
	}
	return out
}

// Progress avance de la agenda del día.
type Progress struct {
	Done    int `json:"done"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// TaskProgress cuenta tareas completadas de la fecha activa.
func (s *Store) TaskProgress() Progress {
	tasks := s.Tasks()
	p := Progress{Total: len(tasks)}
	for _, t := range tasks {
		if t.Done {
			p.Done++
		}
	}
	if p.Total > 0 {
		p.Percent = int(math.Round(float64(p.Done) / float64(p.Total) * 100))
	}
	return p
}

func matchesCategory(value, filter string) bool {
	return filter == "" || filter == AllCategories || value == filter
}
