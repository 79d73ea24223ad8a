package schema

import (
	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
)

// ProductToExternal arma la fila de products. withID=false en inserciones (el id lo asigna el servidor).
// La columna externa de la descripción es descr.
func ProductToExternal(p entity.Product, withID bool) repository.Record {
	images := make([]string, 0, len(p.Images))
	images = append(images, p.Images...)
	rec := repository.Record{
		"name":     p.Name,
		"category": p.Category,
		"descr":    p.Desc,
		"img":      p.Img,
		"images":   images,
		"cavaben":  p.Cavaben,
	}
	if withID {
		rec[colID] = p.ID
	}
	return rec
}

// ProductToInternal convierte una fila de products en entidad (descr -> Desc, galería normalizada).
func ProductToInternal(rec repository.Record) entity.Product {
	img := asString(rec["img"])
	return entity.Product{
		ID:        asID(rec[colID]),
		Name:      asString(rec["name"]),
		Category:  asString(rec["category"]),
		Desc:      asString(rec["descr"]),
		Cavaben:   asString(rec["cavaben"]),
		Img:       img,
		Images:    NormalizeImages(rec["images"], img),
		CreatedAt: asTime(rec[colCreatedAt]),
	}
}

// ProductsToInternal convierte un conjunto de filas preservando el orden.
func ProductsToInternal(recs []repository.Record) []entity.Product {
	out := make([]entity.Product, 0, len(recs))
	for _, r := range recs {
		out = append(out, ProductToInternal(r))
	}
	return out
}
