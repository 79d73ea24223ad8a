package postgres

import (
	"fmt"

	"github.com/jhoicas/vendas-dashboard/internal/domain"
	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
)

// table columnas expuestas de una colección. id, fechas y horas se leen como texto para que
// el adaptador de esquema reciba la misma forma que entrega la API de Supabase.
type table struct {
	name string
	// selectList lista del SELECT y del RETURNING.
	selectList string
	// filters columna externa -> expresión usada en WHERE / ORDER BY.
	filters map[string]string
	// writable columna -> plantilla del valor (%s = placeholder).
	writable map[string]string
}

var tables = map[string]table{
	repository.CollectionProducts: {
		name:       "products",
		selectList: "id::text AS id, name, category, descr, img, images, cavaben, created_at",
		filters: map[string]string{
			"id": "id::text", "category": "category", "name": "name", "created_at": "created_at",
		},
		writable: map[string]string{
			"name": "%s", "category": "%s", "descr": "%s", "img": "%s", "images": "%s", "cavaben": "%s",
		},
	},
	repository.CollectionObjections: {
		name:       "objections",
		selectList: "id::text AS id, category, q, a, created_at",
		filters: map[string]string{
			"id": "id::text", "category": "category", "created_at": "created_at",
		},
		writable: map[string]string{"category": "%s", "q": "%s", "a": "%s"},
	},
	repository.CollectionTasks: {
		name:       "tasks",
		selectList: "id::text AS id, user_id::text AS user_id, date::text AS date, time::text AS time, title, \"desc\", done, created_at",
		filters: map[string]string{
			"id": "id::text", "user_id": "user_id::text", "date": "date::text", "done": "done", "created_at": "created_at",
		},
		writable: map[string]string{
			"user_id": "NULLIF(%s, '')::uuid",
			"date":    "(%s::text)::date",
			"time":    "NULLIF(%s, '')::time",
			"title":   "%s",
			"desc":    "%s",
			"done":    "%s",
		},
	},
	repository.CollectionProfiles: {
		name:       "profiles",
		selectList: "id::text AS id, email, role, created_at",
		filters: map[string]string{
			"id": "id::text", "email": "email", "role": "role", "created_at": "created_at",
		},
		writable: map[string]string{"email": "%s", "role": "%s"},
	},
}

func lookupTable(collection string) (table, error) {
	t, ok := tables[collection]
	if !ok {
		return table{}, fmt.Errorf("%w: %q", domain.ErrUnknownCollection, collection)
	}
	return t, nil
}

// quoteIdent desc es palabra reservada; el resto de columnas no necesita comillas.
func quoteIdent(col string) string {
	if col == "desc" {
		return `"desc"`
	}
	return col
}
