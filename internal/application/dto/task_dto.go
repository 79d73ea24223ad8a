package dto

import (
	"time"

	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
)

// TaskRequest entrada para crear o actualizar una tarea. Date vacío usa la fecha activa.
type TaskRequest struct {
	Date  string `json:"date"`
	Time  string `json:"time"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
	Done  *bool  `json:"done,omitempty"`
}

// Apply copia los campos de la petición sobre t. Done solo cambia si viene en la petición.
func (r TaskRequest) Apply(t *entity.DailyTask) {
	if r.Date != "" {
		t.Date = r.Date
	}
	t.Time = r.Time
	t.Title = r.Title
	t.Desc = r.Desc
	if r.Done != nil {
		t.Done = *r.Done
	}
}

// TaskResponse salida de una tarea.
type TaskResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Title     string    `json:"title"`
	Desc      string    `json:"desc"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
	SyncState string    `json:"sync_state,omitempty"`
}

// ProgressResponse avance de la agenda.
type ProgressResponse struct {
	Done    int `json:"done"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// TaskListResponse agenda de un día.
type TaskListResponse struct {
	Date     string           `json:"date"`
	Items    []TaskResponse   `json:"items"`
	Progress ProgressResponse `json:"progress"`
}

// NewTaskResponse convierte la entidad. La hora se devuelve como HH:MM.
func NewTaskResponse(t entity.DailyTask, state string) TaskResponse {
	return TaskResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		Date:      t.Date,
		Time:      t.ShortTime(),
		Title:     t.Title,
		Desc:      t.Desc,
		Done:      t.Done,
		CreatedAt: t.CreatedAt,
		SyncState: state,
	}
}
