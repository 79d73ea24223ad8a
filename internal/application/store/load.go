package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/vendas-dashboard/internal/application/schema"
	"github.com/jhoicas/vendas-dashboard/internal/domain"
	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
)

var newestFirst = repository.Query{}.Order("created_at", true)

// LoadAll carga las tres colecciones en paralelo y de forma independiente. Una falla en una
// colección la deja vacía (se registra como RemoteReadError) sin afectar a las otras; nunca
// devuelve error. Las colecciones se reemplazan completas y Loading() queda en false.
func (s *Store) LoadAll(ctx context.Context) {
	start := time.Now()
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.loading = true
	date := s.selectedDate
	s.taskSeq++
	seq := s.taskSeq
	s.mu.Unlock()

	var (
		products   []entity.Product
		objections []entity.Objection
		tasks      []entity.DailyTask
	)
	var g errgroup.Group
	g.Go(func() error {
		products = schema.ProductsToInternal(s.list(ctx, repository.CollectionProducts, newestFirst))
		return nil
	})
	g.Go(func() error {
		objections = schema.ObjectionsToInternal(s.list(ctx, repository.CollectionObjections, newestFirst))
		return nil
	})
	g.Go(func() error {
		tasks = s.fetchTasks(ctx, date)
		return nil
	})
	_ = g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	loadAllDuration.Observe(time.Since(start).Seconds())
	s.loading = false
	if s.closed {
		return
	}
	s.products = products
	s.objections = objections
	s.clearStates(repository.CollectionProducts)
	s.clearStates(repository.CollectionObjections)
	for _, p := range products {
		s.setState(repository.CollectionProducts, p.ID, StateSynced)
	}
	for _, o := range objections {
		s.setState(repository.CollectionObjections, o.ID, StateSynced)
	}
	if seq == s.taskSeq {
		s.applyTasks(tasks)
	} else {
		staleTaskResponses.Inc()
	}
	s.log.Info().
		Int("products", len(products)).
		Int("objections", len(objections)).
		Int("tasks", len(s.tasks)).
		Dur("elapsed", time.Since(start)).
		Msg("colecciones cargadas")
}

// SelectDate cambia la fecha activa de la agenda y recarga sus tareas. Gana la última fecha
// pedida: si mientras tanto se pidió otra, esta respuesta se descarta.
func (s *Store) SelectDate(ctx context.Context, date string) error {
	if _, err := time.Parse(entity.DateLayout, date); err != nil {
		return fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, date)
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrNoSession
	}
	s.selectedDate = date
	s.taskSeq++
	seq := s.taskSeq
	s.mu.Unlock()

	tasks := s.fetchTasks(ctx, date)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrNoSession
	}
	if seq != s.taskSeq {
		staleTaskResponses.Inc()
		s.log.Debug().Str("date", date).Msg("respuesta de tareas obsoleta descartada")
		return nil
	}
	s.applyTasks(tasks)
	return nil
}

// applyTasks debe llamarse con s.mu tomado.
func (s *Store) applyTasks(tasks []entity.DailyTask) {
	s.clearStates(repository.CollectionTasks)
	s.tasks = tasks
	for _, t := range tasks {
		s.setState(repository.CollectionTasks, t.ID, StateSynced)
	}
}

// clearStates debe llamarse con s.mu tomado.
func (s *Store) clearStates(collection string) {
	prefix := collection + "/"
	for key := range s.states {
		if strings.HasPrefix(key, prefix) {
			delete(s.states, key)
		}
	}
}

func (s *Store) fetchTasks(ctx context.Context, date string) []entity.DailyTask {
	q := repository.Query{}.Eq("date", date)
	if s.userID != "" {
		q = q.Eq("user_id", s.userID)
	}
	q = q.Order("created_at", true)
	return schema.TasksToInternal(s.list(ctx, repository.CollectionTasks, q))
}

// list lectura remota con la falla absorbida: devuelve nil, registra y cuenta.
func (s *Store) list(ctx context.Context, collection string, q repository.Query) []repository.Record {
	recs, err := s.remote.List(ctx, collection, q)
	if err != nil {
		rerr := &domain.RemoteReadError{Collection: collection, Err: err}
		remoteReadFailures.WithLabelValues(collection).Inc()
		s.log.Error().Err(rerr).Str("collection", collection).Msg("lectura remota fallida, se usa colección vacía")
		return nil
	}
	return recs
}
