package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
)

var errBoom = errors.New("servidor caído")

// fakeRemote store remoto en memoria. Los hooks se llaman sin el mutex tomado para que los
// tests puedan bloquear una llamada y observar el estado intermedio.
type fakeRemote struct {
	mu      sync.Mutex
	rows    map[string][]repository.Record // orden de inserción
	seq     int
	clock   time.Time
	patches []repository.Record

	listErr   map[string]error
	insertErr error
	updateErr error
	deleteErr error
	deletes   int

	onInsert func(collection string)
	onList   func(collection string, q repository.Query)
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		rows:    make(map[string][]repository.Record),
		listErr: make(map[string]error),
		clock:   time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

// seed agrega una fila con id y created_at asignados; devuelve el id.
func (f *fakeRemote) seed(collection string, rec repository.Record) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.add(collection, rec)
}

func (f *fakeRemote) add(collection string, rec repository.Record) string {
	f.seq++
	f.clock = f.clock.Add(time.Minute)
	row := copyRecord(rec)
	row["id"] = fmt.Sprintf("%d", f.seq)
	row["created_at"] = f.clock
	f.rows[collection] = append(f.rows[collection], row)
	return row["id"].(string)
}

func (f *fakeRemote) List(_ context.Context, collection string, q repository.Query) ([]repository.Record, error) {
	if f.onList != nil {
		f.onList(collection, q)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.listErr[collection]; err != nil {
		return nil, err
	}
	out := []repository.Record{}
	rows := f.rows[collection]
	for i := len(rows) - 1; i >= 0; i-- { // más recientes primero
		if matches(rows[i], q.Filters) {
			out = append(out, copyRecord(rows[i]))
		}
	}
	return out, nil
}

func (f *fakeRemote) Insert(_ context.Context, collection string, rec repository.Record) ([]repository.Record, error) {
	if f.onInsert != nil {
		f.onInsert(collection)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.add(collection, rec)
	rows := f.rows[collection]
	return []repository.Record{copyRecord(rows[len(rows)-1])}, nil
}

func (f *fakeRemote) Update(_ context.Context, collection, id string, patch repository.Record) ([]repository.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.patches = append(f.patches, copyRecord(patch))
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for _, row := range f.rows[collection] {
		if row["id"] == id {
			for k, v := range patch {
				row[k] = v
			}
			return []repository.Record{copyRecord(row)}, nil
		}
	}
	return []repository.Record{}, nil
}

func (f *fakeRemote) Delete(_ context.Context, collection, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	rows := f.rows[collection]
	for i, row := range rows {
		if row["id"] == id {
			f.rows[collection] = append(rows[:i:i], rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeRemote) lastPatch() repository.Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.patches) == 0 {
		return nil
	}
	return f.patches[len(f.patches)-1]
}

func (f *fakeRemote) deleteCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.deletes
}

func matches(row repository.Record, filters []repository.Filter) bool {
	for _, flt := range filters {
		if fmt.Sprint(row[flt.Column]) != fmt.Sprint(flt.Value) {
			return false
		}
	}
	return true
}

func copyRecord(rec repository.Record) repository.Record {
	out := make(repository.Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}

// fakeImages sube todo salvo los archivos cuyo nombre contiene "roto".
type fakeImages struct{}

func (fakeImages) Upload(_ context.Context, img repository.ImageUpload) (string, error) {
	if strings.Contains(img.Name, "roto") {
		return "", errBoom
	}
	if img.Body != nil {
		_, _ = io.Copy(io.Discard, img.Body)
	}
	return "https://cdn.test/" + img.Name, nil
}

var _ repository.RemoteStore = (*fakeRemote)(nil)
var _ repository.ImageStorage = fakeImages{}
