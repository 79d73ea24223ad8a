package entity

import (
	"strings"
	"time"

	"github.com/jhoicas/vendas-dashboard/internal/domain"
)

// Categorías observadas en la matriz de objeciones (la categoría es abierta).
const (
	ObjectionCusto        = "Custo"
	ObjectionDurabilidade = "Durabilidade"
	ObjectionConforto     = "Conforto"
	ObjectionPrazo        = "Prazo"
	ObjectionConcorrencia = "Concorrência"
)

// Objection objeción de cliente con su respuesta SENTIR / SENTIU / DESCOBRIU.
type Objection struct {
	ID        string
	Category  string
	Question  string // columna q
	Answer    string // columna a
	CreatedAt time.Time
}

// Validate exige la pregunta (la respuesta puede quedar vacía mientras se redacta).
func (o *Objection) Validate() error {
	if strings.TrimSpace(o.Question) == "" {
		return domain.ErrInvalidInput
	}
	return nil
}
