package schema

import (
	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
)

// ObjectionToExternal arma la fila de objections (q = pregunta, a = respuesta).
func ObjectionToExternal(o entity.Objection, withID bool) repository.Record {
	rec := repository.Record{
		"category": o.Category,
		"q":        o.Question,
		"a":        o.Answer,
	}
	if withID {
		rec[colID] = o.ID
	}
	return rec
}

// ObjectionToInternal convierte una fila de objections en entidad.
func ObjectionToInternal(rec repository.Record) entity.Objection {
	return entity.Objection{
		ID:        asID(rec[colID]),
		Category:  asString(rec["category"]),
		Question:  asString(rec["q"]),
		Answer:    asString(rec["a"]),
		CreatedAt: asTime(rec[colCreatedAt]),
	}
}

// ObjectionsToInternal convierte un conjunto de filas preservando el orden.
func ObjectionsToInternal(recs []repository.Record) []entity.Objection {
	out := make([]entity.Objection, 0, len(recs))
	for _, r := range recs {
		out = append(out, ObjectionToInternal(r))
	}
	return out
}
