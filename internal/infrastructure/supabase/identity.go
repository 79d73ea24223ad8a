// Package supabase adapta Supabase Auth al puerto SessionSource: verifica los access tokens
// (HS256 con el secreto del proyecto) y avisa de inicios y cierres de sesión.
package supabase

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/vendas-dashboard/internal/domain"
	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
	"github.com/jhoicas/vendas-dashboard/pkg/jwt"
)

var _ repository.SessionSource = (*Identity)(nil)

// Identity sesiones conocidas por el servidor. La primera vez que llega un token válido de una
// cuenta se emite un evento de inicio; SignOut y el vencimiento emiten el de cierre.
type Identity struct {
	secret string
	log    zerolog.Logger
	now    func() time.Time

	mu        sync.Mutex
	sessions  map[string]*entity.Session // por userID
	revoked   map[string]time.Time       // token -> vencimiento
	listeners map[uint64]func(entity.SessionEvent)
	nextID    uint64
}

// NewIdentity construye el adaptador con el secreto JWT del proyecto.
func NewIdentity(secret string, log zerolog.Logger) *Identity {
	return &Identity{
		secret:    secret,
		log:       log.With().Str("component", "identity").Logger(),
		now:       time.Now,
		sessions:  make(map[string]*entity.Session),
		revoked:   make(map[string]time.Time),
		listeners: make(map[uint64]func(entity.SessionEvent)),
	}
}

// Session valida el token. Un token inválido, vencido o revocado devuelve domain.ErrUnauthorized.
func (i *Identity) Session(token string) (*entity.Session, error) {
	claims, err := jwt.Parse(i.secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	sess := &entity.Session{
		UserID:    claims.UserID(),
		Email:     claims.Email,
		Token:     token,
		ExpiresAt: claims.Expiry(),
	}

	i.mu.Lock()
	if _, ok := i.revoked[token]; ok {
		i.mu.Unlock()
		return nil, fmt.Errorf("%w: sesión cerrada", domain.ErrUnauthorized)
	}
	_, known := i.sessions[sess.UserID]
	i.sessions[sess.UserID] = sess
	i.mu.Unlock()

	if !known {
		i.log.Info().Str("user_id", sess.UserID).Msg("inicio de sesión")
		i.emit(entity.SessionEvent{UserID: sess.UserID, Session: sess})
	}
	return sess, nil
}

// OnSessionChange registra fn. Los eventos se entregan en la goroutine que los produce.
func (i *Identity) OnSessionChange(fn func(entity.SessionEvent)) func() {
	i.mu.Lock()
	defer i.mu.Unlock()
	id := i.nextID
	i.nextID++
	i.listeners[id] = fn
	return func() {
		i.mu.Lock()
		defer i.mu.Unlock()
		delete(i.listeners, id)
	}
}

// SignOut revoca el último token visto de la cuenta hasta su vencimiento y emite el cierre.
func (i *Identity) SignOut(userID string) {
	i.mu.Lock()
	sess, ok := i.sessions[userID]
	if ok {
		delete(i.sessions, userID)
		i.revoked[sess.Token] = sess.ExpiresAt
	}
	i.mu.Unlock()
	if ok {
		i.log.Info().Str("user_id", userID).Msg("cierre de sesión")
		i.emit(entity.SessionEvent{UserID: userID})
	}
}

// PruneExpired cierra las sesiones cuyo token venció y olvida revocaciones ya vencidas.
// Devuelve cuántas sesiones cerró.
func (i *Identity) PruneExpired() int {
	now := i.now()
	var expired []string
	i.mu.Lock()
	for id, s := range i.sessions {
		if !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt) {
			expired = append(expired, id)
			delete(i.sessions, id)
		}
	}
	for tok, exp := range i.revoked {
		if now.After(exp) {
			delete(i.revoked, tok)
		}
	}
	i.mu.Unlock()

	for _, id := range expired {
		i.emit(entity.SessionEvent{UserID: id})
	}
	if len(expired) > 0 {
		i.log.Info().Int("sessions", len(expired)).Msg("sesiones vencidas cerradas")
	}
	return len(expired)
}

func (i *Identity) emit(ev entity.SessionEvent) {
	i.mu.Lock()
	fns := make([]func(entity.SessionEvent), 0, len(i.listeners))
	for _, fn := range i.listeners {
		fns = append(fns, fn)
	}
	i.mu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}
