package repository

import "context"

// Colecciones del store remoto.
const (
	CollectionProducts   = "products"
	CollectionObjections = "objections"
	CollectionTasks      = "tasks"
	CollectionProfiles   = "profiles"
)

// Record fila en la forma externa (nombres de columna del store remoto).
type Record map[string]any

// Filter igualdad columna = valor.
type Filter struct {
	Column string
	Value  any
}

// Order criterio de orden.
type Order struct {
	Column string
	Desc   bool
}

// Query filtros y orden opcionales para List.
type Query struct {
	Filters []Filter
	OrderBy []Order
}

// Eq agrega un filtro de igualdad.
func (q Query) Eq(column string, value any) Query {
	q.Filters = append(append([]Filter{}, q.Filters...), Filter{Column: column, Value: value})
	return q
}

// Order agrega un criterio de orden.
func (q Query) Order(column string, desc bool) Query {
	q.OrderBy = append(append([]Order{}, q.OrderBy...), Order{Column: column, Desc: desc})
	return q
}

// RemoteStore puerto hacia el store remoto (request/response por colección).
// Insert y Update devuelven la fila canónica del servidor (id y created_at generados).
type RemoteStore interface {
	List(ctx context.Context, collection string, q Query) ([]Record, error)
	Insert(ctx context.Context, collection string, rec Record) ([]Record, error)
	Update(ctx context.Context, collection, id string, patch Record) ([]Record, error)
	Delete(ctx context.Context, collection, id string) error
}
