package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/vendas-dashboard/internal/application/dto"
	"github.com/jhoicas/vendas-dashboard/internal/application/script"
	"github.com/jhoicas/vendas-dashboard/internal/application/store"
	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
)

// ObjectionHandler maneja la base de objeciones.
type ObjectionHandler struct {
	log zerolog.Logger
}

// NewObjectionHandler construye el handler.
func NewObjectionHandler(log zerolog.Logger) *ObjectionHandler {
	return &ObjectionHandler{log: log}
}

func objectionResponse(st *store.Store, o entity.Objection) dto.ObjectionResponse {
	state, _ := st.State(repository.CollectionObjections, o.ID)
	return dto.NewObjectionResponse(o, string(state))
}

// List GET /api/objections?category=&q=
func (h *ObjectionHandler) List(c *fiber.Ctx) error {
	st := GetStore(c)
	items := st.FilterObjections(c.Query("category"), c.Query("q"))
	out := dto.ObjectionListResponse{
		Items:      make([]dto.ObjectionResponse, 0, len(items)),
		Categories: st.ObjectionCategories(),
	}
	for _, o := range items {
		out.Items = append(out.Items, objectionResponse(st, o))
	}
	return c.JSON(out)
}

// Create POST /api/objections
func (h *ObjectionHandler) Create(c *fiber.Ctx) error {
	var in dto.ObjectionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	var o entity.Objection
	in.Apply(&o)
	st := GetStore(c)
	out, err := st.CreateObjection(c.UserContext(), o)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(objectionResponse(st, out))
}

// Update PUT /api/objections/:id
func (h *ObjectionHandler) Update(c *fiber.Ctx) error {
	st := GetStore(c)
	o, ok := st.Objection(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "objeción no encontrada"})
	}
	var in dto.ObjectionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	in.Apply(&o)
	out, err := st.UpdateObjection(c.UserContext(), o)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(objectionResponse(st, out))
}

// Delete DELETE /api/objections/:id
func (h *ObjectionHandler) Delete(c *fiber.Ctx) error {
	if err := GetStore(c).RemoveObjection(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "objeción eliminada"})
}

// Script GET /api/objections/:id/script: la respuesta en pasos SENTIR / SENTIU / DESCOBRIU.
func (h *ObjectionHandler) Script(c *fiber.Ctx) error {
	o, ok := GetStore(c).Objection(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "objeción no encontrada"})
	}
	parsed := script.ParseFeelFeltFound(o.Answer)
	return c.JSON(dto.ScriptResponse{
		Structured: parsed.Structured(),
		Steps:      parsed.Steps(),
		Unlabeled:  parsed.Unlabeled,
	})
}
