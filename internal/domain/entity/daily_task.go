package entity

import (
	"strings"
	"time"

	"github.com/jhoicas/vendas-dashboard/internal/domain"
)

// DateLayout formato de la clave de día de las tareas (sin zona horaria).
const DateLayout = "2006-01-02"

// DailyTask tarea de la agenda diaria de un vendedor.
type DailyTask struct {
	ID        string
	UserID    string
	Date      string // YYYY-MM-DD, clave opaca
	Time      string // HH:MM[:SS]
	Title     string
	Desc      string
	Done      bool
	CreatedAt time.Time
}

// Validate exige título y fecha.
func (t *DailyTask) Validate() error {
	if strings.TrimSpace(t.Title) == "" || strings.TrimSpace(t.Date) == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

// ShortTime devuelve HH:MM para mostrar.
func (t *DailyTask) ShortTime() string {
	if len(t.Time) > 5 {
		return t.Time[:5]
	}
	return t.Time
}
