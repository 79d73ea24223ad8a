package auth

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/vendas-dashboard/internal/application/store"
	"github.com/jhoicas/vendas-dashboard/internal/domain"
	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
)

const defaultLoadTimeout = 15 * time.Second

// ManagerDeps dependencias del Manager.
type ManagerDeps struct {
	Sessions    repository.SessionSource
	Roles       repository.RoleLookup
	Remote      repository.RemoteStore
	Images      repository.ImageStorage // opcional
	Policy      Policy
	Log         zerolog.Logger
	LoadTimeout time.Duration
	Today       func() string // opcional, se pasa a cada store
}

// Active sesión abierta: su store y el cargo resuelto.
type Active struct {
	UserID string
	Email  string
	Role   entity.Role
	Store  *store.Store
}

type activeSession struct {
	ready chan struct{} // se cierra cuando termina la carga inicial
	email string
	role  entity.Role
	store *store.Store
}

// Manager mantiene un store por sesión abierta. Escucha los cambios de sesión del proveedor
// de identidad: al iniciar construye el store, resuelve el cargo y carga las colecciones;
// al cerrar descarta el store.
type Manager struct {
	deps        ManagerDeps
	log         zerolog.Logger
	unsubscribe func()

	mu     sync.Mutex
	active map[string]*activeSession
	closed bool
}

// NewManager construye el Manager y se suscribe a los cambios de sesión.
func NewManager(deps ManagerDeps) *Manager {
	if deps.LoadTimeout <= 0 {
		deps.LoadTimeout = defaultLoadTimeout
	}
	m := &Manager{
		deps:   deps,
		log:    deps.Log.With().Str("component", "session_manager").Logger(),
		active: make(map[string]*activeSession),
	}
	m.unsubscribe = deps.Sessions.OnSessionChange(m.handle)
	return m
}

func (m *Manager) handle(ev entity.SessionEvent) {
	if ev.Started() {
		if _, err := m.Open(context.Background(), ev.Session); err != nil {
			m.log.Warn().Err(err).Str("user_id", ev.UserID).Msg("no se pudo abrir la sesión")
		}
		return
	}
	m.end(ev.UserID)
}

// Open devuelve la sesión abierta de la cuenta, creándola si no existe. Si otra llamada la
// está creando, espera a que termine la carga inicial.
func (m *Manager) Open(ctx context.Context, sess *entity.Session) (Active, error) {
	if sess == nil || sess.UserID == "" {
		return Active{}, domain.ErrNoSession
	}
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return Active{}, domain.ErrNoSession
	}
	if a, ok := m.active[sess.UserID]; ok {
		m.mu.Unlock()
		return m.wait(ctx, sess.UserID, a)
	}
	a := &activeSession{
		ready: make(chan struct{}),
		email: sess.Email,
		store: store.New(store.Deps{
			Remote: m.deps.Remote,
			Images: m.deps.Images,
			Log:    m.deps.Log,
			UserID: sess.UserID,
			Today:  m.deps.Today,
		}),
	}
	m.active[sess.UserID] = a
	m.mu.Unlock()

	loadCtx, cancel := context.WithTimeout(context.Background(), m.deps.LoadTimeout)
	defer cancel()
	role := m.resolveRole(loadCtx, sess.UserID, sess.Email)
	a.store.LoadAll(loadCtx)

	m.mu.Lock()
	a.role = role
	m.mu.Unlock()
	close(a.ready)

	m.log.Info().Str("user_id", sess.UserID).Str("role", string(role)).Msg("sesión abierta")
	return m.snapshot(sess.UserID, a)
}

func (m *Manager) wait(ctx context.Context, userID string, a *activeSession) (Active, error) {
	select {
	case <-a.ready:
		return m.snapshot(userID, a)
	case <-ctx.Done():
		return Active{}, ctx.Err()
	}
}

func (m *Manager) snapshot(userID string, a *activeSession) (Active, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.active[userID] != a {
		return Active{}, domain.ErrNoSession
	}
	return Active{UserID: userID, Email: a.email, Role: a.role, Store: a.store}, nil
}

// Get devuelve la sesión abierta de userID, si existe y terminó de cargar.
func (m *Manager) Get(userID string) (Active, bool) {
	m.mu.Lock()
	a, ok := m.active[userID]
	m.mu.Unlock()
	if !ok {
		return Active{}, false
	}
	select {
	case <-a.ready:
	default:
		return Active{}, false
	}
	act, err := m.snapshot(userID, a)
	return act, err == nil
}

// RefreshRole vuelve a resolver el cargo de una sesión abierta (tras cambiarlo en profiles).
func (m *Manager) RefreshRole(ctx context.Context, userID string) {
	act, ok := m.Get(userID)
	if !ok {
		return
	}
	role := m.resolveRole(ctx, userID, act.Email)
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.active[userID]; ok {
		a.role = role
	}
}

// SignOut cierra la sesión en el proveedor de identidad; el evento de cierre descarta el store.
func (m *Manager) SignOut(userID string) {
	m.deps.Sessions.SignOut(userID)
	m.end(userID)
}

func (m *Manager) end(userID string) {
	m.mu.Lock()
	a, ok := m.active[userID]
	delete(m.active, userID)
	m.mu.Unlock()
	if !ok {
		return
	}
	a.store.Close()
	m.log.Info().Str("user_id", userID).Msg("sesión cerrada, store descartado")
}

// Close se desuscribe y descarta todos los stores.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	active := m.active
	m.active = make(map[string]*activeSession)
	m.mu.Unlock()

	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	for _, a := range active {
		a.store.Close()
	}
}

func (m *Manager) resolveRole(ctx context.Context, userID, email string) entity.Role {
	var (
		stored entity.Role
		ok     bool
	)
	if m.deps.Roles != nil {
		var err error
		stored, ok, err = m.deps.Roles.Role(ctx, userID)
		if err != nil {
			m.log.Warn().Err(err).Str("user_id", userID).Msg("consulta de cargo fallida, se usa el cargo por defecto")
			ok = false
		}
	}
	return m.deps.Policy.ResolveRole(email, stored, ok)
}
