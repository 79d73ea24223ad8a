package http

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/vendas-dashboard/internal/application/dto"
	"github.com/jhoicas/vendas-dashboard/internal/application/script"
	"github.com/jhoicas/vendas-dashboard/internal/application/store"
	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
)

// maxImagesPerUpload límite de archivos por petición de subida.
const maxImagesPerUpload = 10

// ProductHandler maneja el catálogo de productos (lectura para todos, escritura solo admin).
type ProductHandler struct {
	log zerolog.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(log zerolog.Logger) *ProductHandler {
	return &ProductHandler{log: log}
}

func productResponse(st *store.Store, p entity.Product) dto.ProductResponse {
	state, _ := st.State(repository.CollectionProducts, p.ID)
	return dto.NewProductResponse(p, string(state))
}

// List GET /api/products?category=&q=
func (h *ProductHandler) List(c *fiber.Ctx) error {
	st := GetStore(c)
	items := st.FilterProducts(c.Query("category"), c.Query("q"))
	out := dto.ProductListResponse{
		Items:      make([]dto.ProductResponse, 0, len(items)),
		Categories: entity.ProductCategories,
		Loading:    st.Loading(),
	}
	for _, p := range items {
		out.Items = append(out.Items, productResponse(st, p))
	}
	return c.JSON(out)
}

// GetByID GET /api/products/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	st := GetStore(c)
	p, ok := st.Product(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(productResponse(st, p))
}

// Create POST /api/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	var p entity.Product
	in.Apply(&p)
	st := GetStore(c)
	out, err := st.CreateProduct(c.UserContext(), p)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(productResponse(st, out))
}

// Update PUT /api/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	st := GetStore(c)
	p, ok := st.Product(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	in.Apply(&p)
	out, err := st.UpdateProduct(c.UserContext(), p)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(productResponse(st, out))
}

// Delete DELETE /api/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := GetStore(c).RemoveProduct(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto eliminado"})
}

// UploadImages POST /api/products/:id/images (multipart, campo "images").
func (h *ProductHandler) UploadImages(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return badBody(c)
	}
	files := form.File["images"]
	if len(files) == 0 || len(files) > maxImagesPerUpload {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "envíe entre 1 y 10 imágenes en el campo images"})
	}
	uploads, closeAll, err := openUploads(files)
	defer closeAll()
	if err != nil {
		return badBody(c)
	}
	st := GetStore(c)
	out, err := st.AttachProductImages(c.UserContext(), c.Params("id"), uploads)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(productResponse(st, out))
}

// DeleteImage DELETE /api/products/:id/images/:index
func (h *ProductHandler) DeleteImage(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice inválido"})
	}
	st := GetStore(c)
	out, err := st.DetachProductImage(c.UserContext(), c.Params("id"), index)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(productResponse(st, out))
}

// Cavaben GET /api/products/:id/cavaben
func (h *ProductHandler) Cavaben(c *fiber.Ctx) error {
	p, ok := GetStore(c).Product(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	parsed := script.ParseCavaben(p.Cavaben)
	return c.JSON(dto.ScriptResponse{
		Structured: parsed.Structured(),
		Steps:      parsed.Steps(),
		Unlabeled:  parsed.Unlabeled,
	})
}

func openUploads(files []*multipart.FileHeader) ([]repository.ImageUpload, func(), error) {
	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}
	uploads := make([]repository.ImageUpload, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, closeAll, err
		}
		opened = append(opened, f)
		uploads = append(uploads, repository.ImageUpload{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Body:        f,
		})
	}
	return uploads, closeAll, nil
}
