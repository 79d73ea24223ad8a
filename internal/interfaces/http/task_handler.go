package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/vendas-dashboard/internal/application/dto"
	"github.com/jhoicas/vendas-dashboard/internal/application/store"
	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
)

// TaskHandler maneja la agenda diaria del usuario de la sesión.
type TaskHandler struct {
	log zerolog.Logger
}

// NewTaskHandler construye el handler.
func NewTaskHandler(log zerolog.Logger) *TaskHandler {
	return &TaskHandler{log: log}
}

func taskResponse(st *store.Store, t entity.DailyTask) dto.TaskResponse {
	state, _ := st.State(repository.CollectionTasks, t.ID)
	return dto.NewTaskResponse(t, string(state))
}

// List GET /api/tasks?date=YYYY-MM-DD. Si la fecha cambia, recarga la agenda de ese día.
func (h *TaskHandler) List(c *fiber.Ctx) error {
	st := GetStore(c)
	if date := c.Query("date"); date != "" && date != st.SelectedDate() {
		if err := st.SelectDate(c.UserContext(), date); err != nil {
			return writeError(c, h.log, err)
		}
	}
	tasks := st.Tasks()
	progress := st.TaskProgress()
	out := dto.TaskListResponse{
		Date:     st.SelectedDate(),
		Items:    make([]dto.TaskResponse, 0, len(tasks)),
		Progress: dto.ProgressResponse{Done: progress.Done, Total: progress.Total, Percent: progress.Percent},
	}
	for _, t := range tasks {
		out.Items = append(out.Items, taskResponse(st, t))
	}
	return c.JSON(out)
}

// Create POST /api/tasks
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.TaskRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	var t entity.DailyTask
	in.Apply(&t)
	st := GetStore(c)
	out, err := st.CreateTask(c.UserContext(), t)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(taskResponse(st, out))
}

// Update PUT /api/tasks/:id
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	st := GetStore(c)
	t, ok := st.Task(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tarea no encontrada"})
	}
	var in dto.TaskRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	in.Apply(&t)
	out, err := st.UpdateTask(c.UserContext(), t)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(taskResponse(st, out))
}

// Toggle PATCH /api/tasks/:id/toggle
func (h *TaskHandler) Toggle(c *fiber.Ctx) error {
	st := GetStore(c)
	out, err := st.ToggleTaskDone(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(taskResponse(st, out))
}

// Delete DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	if err := GetStore(c).RemoveTask(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "tarea eliminada"})
}
