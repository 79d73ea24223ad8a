package auth_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jhoicas/vendas-dashboard/internal/application/auth"
	"github.com/jhoicas/vendas-dashboard/internal/domain"
	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

const adminEmail = "jonatha.vieira@telhaco.com.br"

// memRemote store remoto mínimo: filas por colección, filtros de igualdad.
type memRemote struct {
	mu      sync.Mutex
	rows    map[string][]repository.Record
	listErr error
}

func newMemRemote() *memRemote {
	return &memRemote{rows: make(map[string][]repository.Record)}
}

func (r *memRemote) List(_ context.Context, collection string, q repository.Query) ([]repository.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := []repository.Record{}
	for _, row := range r.rows[collection] {
		match := true
		for _, f := range q.Filters {
			if fmt.Sprint(row[f.Column]) != fmt.Sprint(f.Value) {
				match = false
			}
		}
		if match {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *memRemote) Insert(context.Context, string, repository.Record) ([]repository.Record, error) {
	return nil, errors.New("no soportado")
}

func (r *memRemote) Update(context.Context, string, string, repository.Record) ([]repository.Record, error) {
	return nil, errors.New("no soportado")
}

func (r *memRemote) Delete(context.Context, string, string) error { return errors.New("no soportado") }

func (r *memRemote) setRole(userID string, role entity.Role) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[repository.CollectionProfiles] = []repository.Record{{"id": userID, "email": "x", "role": string(role)}}
}

// fakeSessions proveedor de identidad controlado por el test.
type fakeSessions struct {
	mu        sync.Mutex
	listeners map[int]func(entity.SessionEvent)
	next      int
	signedOut []string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{listeners: make(map[int]func(entity.SessionEvent))}
}

func (f *fakeSessions) Session(string) (*entity.Session, error) { return nil, domain.ErrUnauthorized }

func (f *fakeSessions) OnSessionChange(fn func(entity.SessionEvent)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.next
	f.next++
	f.listeners[id] = fn
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		delete(f.listeners, id)
	}
}

func (f *fakeSessions) SignOut(userID string) {
	f.mu.Lock()
	f.signedOut = append(f.signedOut, userID)
	f.mu.Unlock()
	f.emit(entity.SessionEvent{UserID: userID})
}

func (f *fakeSessions) emit(ev entity.SessionEvent) {
	f.mu.Lock()
	fns := make([]func(entity.SessionEvent), 0, len(f.listeners))
	for _, fn := range f.listeners {
		fns = append(fns, fn)
	}
	f.mu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}

func (f *fakeSessions) subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.listeners)
}

func newManager(sessions *fakeSessions, remote *memRemote) *auth.Manager {
	return auth.NewManager(auth.ManagerDeps{
		Sessions: sessions,
		Roles:    auth.NewProfileRoles(remote),
		Remote:   remote,
		Policy:   auth.NewPolicy(adminEmail),
		Log:      zerolog.Nop(),
		Today:    func() string { return "2024-05-10" },
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Policy
// ──────────────────────────────────────────────────────────────────────────────

func TestPolicy_ResolveRole(t *testing.T) {
	p := auth.NewPolicy(adminEmail)
	tests := []struct {
		name   string
		email  string
		stored entity.Role
		ok     bool
		want   entity.Role
	}{
		{"email admin gana al cargo almacenado", adminEmail, entity.RoleVendor, true, entity.RoleAdmin},
		{"email admin sin distinguir mayúsculas", "  Jonatha.Vieira@Telhaco.com.br ", "", false, entity.RoleAdmin},
		{"cargo almacenado válido", "ana@x.com", entity.RoleManager, true, entity.RoleManager},
		{"cargo almacenado desconocido", "ana@x.com", entity.Role("dono"), true, entity.RoleVendor},
		{"sin perfil", "ana@x.com", "", false, entity.RoleVendor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ResolveRole(tt.email, tt.stored, tt.ok))
		})
	}
}

func TestPolicy_SinEmailAdmin(t *testing.T) {
	p := auth.NewPolicy("")
	assert.Equal(t, entity.RoleVendor, p.ResolveRole("", "", false))
	assert.True(t, p.CanEditCatalog(entity.RoleAdmin))
	assert.False(t, p.CanEditCatalog(entity.RoleManager))
	assert.False(t, p.CanManageProfiles(entity.RoleSupervisor))
}

func TestProfileRoles(t *testing.T) {
	remote := newMemRemote()
	roles := auth.NewProfileRoles(remote)

	_, ok, err := roles.Role(context.Background(), "u1")
	require.NoError(t, err)
	assert.False(t, ok)

	remote.setRole("u1", entity.RoleSupervisor)
	role, ok, err := roles.Role(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, entity.RoleSupervisor, role)

	remote.listErr = errors.New("caído")
	_, _, err = roles.Role(context.Background(), "u1")
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Manager
// ──────────────────────────────────────────────────────────────────────────────

func TestManager_InicioYCierreDeSesion(t *testing.T) {
	sessions := newFakeSessions()
	remote := newMemRemote()
	remote.setRole("u1", entity.RoleManager)
	m := newManager(sessions, remote)
	defer m.Close()

	sessions.emit(entity.SessionEvent{UserID: "u1", Session: &entity.Session{UserID: "u1", Email: "ana@x.com"}})

	act, ok := m.Get("u1")
	require.True(t, ok)
	assert.Equal(t, entity.RoleManager, act.Role)
	assert.False(t, act.Store.Loading(), "la carga inicial ya terminó")
	assert.Equal(t, "u1", act.Store.UserID())

	sessions.emit(entity.SessionEvent{UserID: "u1"})
	_, ok = m.Get("u1")
	assert.False(t, ok)
	_, err := act.Store.CreateTask(context.Background(), entity.DailyTask{Title: "x"})
	assert.ErrorIs(t, err, domain.ErrNoSession, "el store descartado rechaza mutaciones")
}

func TestManager_OpenEsIdempotente(t *testing.T) {
	sessions := newFakeSessions()
	m := newManager(sessions, newMemRemote())
	defer m.Close()

	sess := &entity.Session{UserID: "u2", Email: adminEmail}
	a1, err := m.Open(context.Background(), sess)
	require.NoError(t, err)
	a2, err := m.Open(context.Background(), sess)
	require.NoError(t, err)

	assert.Same(t, a1.Store, a2.Store)
	assert.Equal(t, entity.RoleAdmin, a1.Role)
}

func TestManager_FallaDeCargoUsaVendor(t *testing.T) {
	sessions := newFakeSessions()
	remote := newMemRemote()
	remote.listErr = errors.New("caído")
	m := newManager(sessions, remote)
	defer m.Close()

	act, err := m.Open(context.Background(), &entity.Session{UserID: "u3", Email: "v@x.com"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendor, act.Role)
	assert.Empty(t, act.Store.Products(), "la carga parcial no impide abrir la sesión")
}

func TestManager_RefreshRoleYSignOut(t *testing.T) {
	sessions := newFakeSessions()
	remote := newMemRemote()
	m := newManager(sessions, remote)
	defer m.Close()

	_, err := m.Open(context.Background(), &entity.Session{UserID: "u4", Email: "v@x.com"})
	require.NoError(t, err)

	remote.setRole("u4", entity.RoleSupervisor)
	m.RefreshRole(context.Background(), "u4")
	act, ok := m.Get("u4")
	require.True(t, ok)
	assert.Equal(t, entity.RoleSupervisor, act.Role)

	m.SignOut("u4")
	_, ok = m.Get("u4")
	assert.False(t, ok)
	assert.Equal(t, []string{"u4"}, sessions.signedOut)
}

func TestManager_CloseSeDesuscribe(t *testing.T) {
	sessions := newFakeSessions()
	m := newManager(sessions, newMemRemote())
	require.Equal(t, 1, sessions.subscribers())

	act, err := m.Open(context.Background(), &entity.Session{UserID: "u5"})
	require.NoError(t, err)

	m.Close()
	assert.Zero(t, sessions.subscribers())
	assert.Empty(t, act.Store.Tasks())
	_, err = m.Open(context.Background(), &entity.Session{UserID: "u6"})
	assert.ErrorIs(t, err, domain.ErrNoSession)
}
