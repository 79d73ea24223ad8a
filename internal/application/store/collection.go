package store

import "github.com/jhoicas/vendas-dashboard/internal/domain/entity"

// Las colecciones se tratan como inmutables: toda modificación produce un slice nuevo, así
// las copias entregadas por Products/Objections/Tasks nunca cambian por debajo.

func productID(p entity.Product) string     { return p.ID }
func objectionID(o entity.Objection) string { return o.ID }
func taskID(t entity.DailyTask) string      { return t.ID }

func indexByID[T any](list []T, id string, idOf func(T) string) int {
	for i, v := range list {
		if idOf(v) == id {
			return i
		}
	}
	return -1
}

func prepend[T any](list []T, v T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, v)
	return append(out, list...)
}

// replaceByID reemplaza en su lugar el elemento con ese id. ok=false si no existe.
func replaceByID[T any](list []T, id string, idOf func(T) string, v T) ([]T, bool) {
	i := indexByID(list, id, idOf)
	if i < 0 {
		return list, false
	}
	out := append([]T{}, list...)
	out[i] = v
	return out, true
}

func removeByID[T any](list []T, id string, idOf func(T) string) ([]T, bool) {
	i := indexByID(list, id, idOf)
	if i < 0 {
		return list, false
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...), true
}
