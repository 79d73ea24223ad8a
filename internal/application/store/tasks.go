package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/vendas-dashboard/internal/application/schema"
	"github.com/jhoicas/vendas-dashboard/internal/domain"
	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
)

const colTasks = repository.CollectionTasks

// CreateTask inserta primero una copia local con id temporal (pending-local) y luego llama
// al store remoto. Si responde, la copia local se reemplaza en su lugar por la canónica; si
// falla, la fila local queda (error-unsynced) y se devuelve RemoteWriteError junto con ella.
func (s *Store) CreateTask(ctx context.Context, t entity.DailyTask) (entity.DailyTask, error) {
	if err := s.checkOpen(); err != nil {
		return entity.DailyTask{}, err
	}
	s.mu.RLock()
	if t.Date == "" {
		t.Date = s.selectedDate
	}
	s.mu.RUnlock()
	if t.UserID == "" {
		t.UserID = s.userID
	}
	if err := t.Validate(); err != nil {
		return entity.DailyTask{}, err
	}

	local := t
	local.ID = newLocalID()
	local.CreatedAt = time.Now()
	s.mu.Lock()
	if t.Date == s.selectedDate {
		s.tasks = prepend(s.tasks, local)
	}
	s.setState(colTasks, local.ID, StatePendingLocal)
	s.mu.Unlock()

	recs, err := s.remote.Insert(ctx, colTasks, schema.TaskToExternal(t, false))
	if err == nil && len(recs) == 0 {
		err = ErrEmptyResponse
	}
	if err != nil {
		return local, s.writeFailed(colTasks, opInsert, local.ID, err)
	}
	created := schema.TaskToInternal(recs[0])

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.tasks, _ = replaceByID(s.tasks, local.ID, taskID, created)
		delete(s.states, stateKey(colTasks, local.ID))
		s.setState(colTasks, created.ID, StateSynced)
	}
	return created, nil
}

// UpdateTask actualiza el contenido (título, descripción, hora, marca) por id.
func (s *Store) UpdateTask(ctx context.Context, t entity.DailyTask) (entity.DailyTask, error) {
	if err := s.checkOpen(); err != nil {
		return entity.DailyTask{}, err
	}
	if t.ID == "" {
		return entity.DailyTask{}, fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	if IsLocalID(t.ID) {
		return entity.DailyTask{}, localOnly(opUpdate)
	}
	if t.UserID == "" {
		t.UserID = s.userID
	}
	if err := t.Validate(); err != nil {
		return entity.DailyTask{}, err
	}
	recs, err := s.remote.Update(ctx, colTasks, t.ID, schema.TaskToExternal(t, false))
	if err == nil && len(recs) == 0 {
		err = fmt.Errorf("%w: %w", domain.ErrNotFound, ErrEmptyResponse)
	}
	if err != nil {
		return entity.DailyTask{}, s.writeFailed(colTasks, opUpdate, t.ID, err)
	}
	saved := schema.TaskToInternal(recs[0])

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.tasks, _ = replaceByID(s.tasks, t.ID, taskID, saved)
		s.setState(colTasks, saved.ID, StateSynced)
	}
	return saved, nil
}

// ToggleTaskDone invierte la marca en memoria antes de llamar al store remoto y envía un
// update parcial con solo done. Si el servidor falla, la marca vuelve a su valor anterior
// (salvo que otra operación ya la haya cambiado) y se devuelve RemoteWriteError.
func (s *Store) ToggleTaskDone(ctx context.Context, id string) (entity.DailyTask, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return entity.DailyTask{}, domain.ErrNoSession
	}
	i := indexByID(s.tasks, id, taskID)
	if i < 0 {
		s.mu.Unlock()
		return entity.DailyTask{}, domain.ErrNotFound
	}
	if IsLocalID(id) {
		s.mu.Unlock()
		return entity.DailyTask{}, localOnly(opUpdate)
	}
	toggled := s.tasks[i]
	toggled.Done = !toggled.Done
	s.tasks, _ = replaceByID(s.tasks, id, taskID, toggled)
	s.mu.Unlock()

	recs, err := s.remote.Update(ctx, colTasks, id, schema.TaskDonePatch(toggled.Done))
	if err == nil && len(recs) == 0 {
		err = fmt.Errorf("%w: %w", domain.ErrNotFound, ErrEmptyResponse)
	}
	if err != nil {
		s.rollbackToggle(id, toggled.Done)
		return entity.DailyTask{}, s.writeFailed(colTasks, opUpdate, id, err)
	}
	saved := schema.TaskToInternal(recs[0])

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.tasks, _ = replaceByID(s.tasks, id, taskID, saved)
		s.setState(colTasks, id, StateSynced)
	}
	return saved, nil
}

// localOnly rechaza escrituras sobre filas que el servidor aún no conoce, sin tocar su estado.
func localOnly(op string) error {
	return &domain.RemoteWriteError{Collection: colTasks, Op: op, Err: ErrLocalOnly}
}

func (s *Store) rollbackToggle(id string, optimistic bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexByID(s.tasks, id, taskID)
	if i < 0 || s.tasks[i].Done != optimistic {
		return
	}
	prev := s.tasks[i]
	prev.Done = !optimistic
	s.tasks, _ = replaceByID(s.tasks, id, taskID, prev)
}

// RemoveTask borra por id. Una tarea que solo existe en memoria (su inserción falló) se
// quita sin llamar al store remoto.
func (s *Store) RemoveTask(ctx context.Context, id string) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if !IsLocalID(id) {
		if err := s.remote.Delete(ctx, colTasks, id); err != nil {
			return s.writeFailed(colTasks, opDelete, id, err)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.tasks, _ = removeByID(s.tasks, id, taskID)
		delete(s.states, stateKey(colTasks, id))
	}
	return nil
}
