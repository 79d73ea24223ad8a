package dto

import (
	"time"

	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
)

// ObjectionRequest entrada para crear o actualizar una objeción.
type ObjectionRequest struct {
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Apply copia los campos de la petición sobre o.
func (r ObjectionRequest) Apply(o *entity.Objection) {
	o.Category = r.Category
	o.Question = r.Question
	o.Answer = r.Answer
}

// ObjectionResponse salida de una objeción.
type ObjectionResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
	SyncState string    `json:"sync_state,omitempty"`
}

// ObjectionListResponse listado filtrado con las categorías presentes.
type ObjectionListResponse struct {
	Items      []ObjectionResponse `json:"items"`
	Categories []string            `json:"categories"`
}

// NewObjectionResponse convierte la entidad.
func NewObjectionResponse(o entity.Objection, state string) ObjectionResponse {
	return ObjectionResponse{
		ID:        o.ID,
		Category:  o.Category,
		Question:  o.Question,
		Answer:    o.Answer,
		CreatedAt: o.CreatedAt,
		SyncState: state,
	}
}
