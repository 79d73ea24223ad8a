// Package store mantiene en memoria los productos, objeciones y tareas de una sesión y los
// reconcilia con el store remoto. El store remoto es el sistema de registro; la memoria es
// una caché que se reemplaza completa en cada carga y se parchea por id en cada mutación.
package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/vendas-dashboard/internal/domain"
	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
)

// SyncState estado de sincronización de un registro en memoria.
type SyncState string

const (
	StatePendingLocal  SyncState = "pending-local"
	StateSynced        SyncState = "synced"
	StateErrorUnsynced SyncState = "error-unsynced"
)

// Operaciones de escritura (etiqueta de métricas y de RemoteWriteError).
const (
	opInsert = "insert"
	opUpdate = "update"
	opDelete = "delete"
)

// localIDPrefix identifica tareas creadas localmente que aún no tienen id del servidor.
const localIDPrefix = "local-"

var (
	// ErrEmptyResponse el servidor no devolvió la fila canónica.
	ErrEmptyResponse = errors.New("respuesta remota sin filas")
	// ErrLocalOnly el registro todavía no existe en el store remoto.
	ErrLocalOnly = errors.New("registro aún no sincronizado")
	// ErrNoImageStorage no se configuró almacenamiento de imágenes.
	ErrNoImageStorage = errors.New("almacenamiento de imágenes no configurado")
	// ErrNoImagesUploaded ninguna de las imágenes pudo subirse.
	ErrNoImagesUploaded = errors.New("ninguna imagen pudo subirse")
)

// Deps dependencias del Store.
type Deps struct {
	Remote repository.RemoteStore
	Images repository.ImageStorage // opcional
	Log    zerolog.Logger
	UserID string
	// Today devuelve la fecha inicial de la agenda (YYYY-MM-DD). Por defecto, la fecha local.
	Today func() string
}

// Store caché autoritativa en memoria de una sesión. Se construye al iniciar sesión y se
// descarta con Close al cerrarla. El mutex nunca se mantiene durante una llamada remota.
type Store struct {
	remote repository.RemoteStore
	images repository.ImageStorage
	log    zerolog.Logger
	userID string

	mu           sync.RWMutex
	products     []entity.Product
	objections   []entity.Objection
	tasks        []entity.DailyTask
	states       map[string]SyncState
	loading      bool
	closed       bool
	selectedDate string
	taskSeq      uint64 // número de la última petición de tareas emitida
}

// New construye el store de una sesión. Loading() es true hasta la primera LoadAll.
func New(deps Deps) *Store {
	today := deps.Today
	if today == nil {
		today = func() string { return time.Now().Format(entity.DateLayout) }
	}
	return &Store{
		remote:       deps.Remote,
		images:       deps.Images,
		log:          deps.Log.With().Str("component", "store").Str("user_id", deps.UserID).Logger(),
		userID:       deps.UserID,
		products:     []entity.Product{},
		objections:   []entity.Objection{},
		tasks:        []entity.DailyTask{},
		states:       make(map[string]SyncState),
		loading:      true,
		selectedDate: today(),
	}
}

// UserID cuenta dueña del store.
func (s *Store) UserID() string { return s.userID }

// Loading indica si hay una carga completa en curso (o si aún no se cargó nada).
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// SelectedDate fecha activa de la agenda.
func (s *Store) SelectedDate() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedDate
}

// Products copia de la colección de productos (más recientes primero).
func (s *Store) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p.Clone())
	}
	return out
}

// Objections copia de la colección de objeciones.
func (s *Store) Objections() []entity.Objection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Objection{}, s.objections...)
}

// Tasks copia de las tareas de la fecha activa.
func (s *Store) Tasks() []entity.DailyTask {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.DailyTask{}, s.tasks...)
}

// Product busca un producto en memoria.
func (s *Store) Product(id string) (entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexByID(s.products, id, productID); i >= 0 {
		return s.products[i].Clone(), true
	}
	return entity.Product{}, false
}

// Objection busca una objeción en memoria.
func (s *Store) Objection(id string) (entity.Objection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexByID(s.objections, id, objectionID); i >= 0 {
		return s.objections[i], true
	}
	return entity.Objection{}, false
}

// Task busca una tarea en memoria.
func (s *Store) Task(id string) (entity.DailyTask, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexByID(s.tasks, id, taskID); i >= 0 {
		return s.tasks[i], true
	}
	return entity.DailyTask{}, false
}

// State estado de sincronización de un registro (colección + id).
func (s *Store) State(collection, id string) (SyncState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.states[stateKey(collection, id)]
	return st, ok
}

// Close descarta la caché. Las mutaciones posteriores devuelven domain.ErrNoSession.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.products = []entity.Product{}
	s.objections = []entity.Objection{}
	s.tasks = []entity.DailyTask{}
	s.states = make(map[string]SyncState)
	s.loading = false
}

func (s *Store) checkOpen() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return domain.ErrNoSession
	}
	return nil
}

// setState debe llamarse con s.mu tomado.
func (s *Store) setState(collection, id string, st SyncState) {
	s.states[stateKey(collection, id)] = st
}

func (s *Store) markState(collection, id string, st SyncState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.setState(collection, id, st)
	}
}

// writeFailed registra la falla, la cuenta y la envuelve en RemoteWriteError.
func (s *Store) writeFailed(collection, op, id string, err error) error {
	remoteWriteFailures.WithLabelValues(collection, op).Inc()
	s.log.Error().Err(err).Str("collection", collection).Str("op", op).Str("id", id).Msg("escritura remota fallida")
	if id != "" {
		s.markState(collection, id, StateErrorUnsynced)
	}
	return &domain.RemoteWriteError{Collection: collection, Op: op, Err: err}
}

func stateKey(collection, id string) string { return collection + "/" + id }

func newLocalID() string { return localIDPrefix + uuid.NewString() }

// IsLocalID indica si id es un identificador temporal asignado en el cliente.
func IsLocalID(id string) bool {
	return strings.HasPrefix(id, localIDPrefix)
}
