package schema

import (
	"github.com/jhoicas/vendas-dashboard/internal/domain/entity"
	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
)

// TaskToExternal arma la fila de tasks.
func TaskToExternal(t entity.DailyTask, withID bool) repository.Record {
	rec := repository.Record{
		"user_id": t.UserID,
		"date":    t.Date,
		"time":    t.Time,
		"title":   t.Title,
		"desc":    t.Desc,
		"done":    t.Done,
	}
	if withID {
		rec[colID] = t.ID
	}
	return rec
}

// TaskDonePatch update parcial con solo la marca de completada.
func TaskDonePatch(done bool) repository.Record {
	return repository.Record{"done": done}
}

// TaskToInternal convierte una fila de tasks en entidad.
func TaskToInternal(rec repository.Record) entity.DailyTask {
	return entity.DailyTask{
		ID:        asID(rec[colID]),
		UserID:    asID(rec["user_id"]),
		Date:      asString(rec["date"]),
		Time:      asString(rec["time"]),
		Title:     asString(rec["title"]),
		Desc:      asString(rec["desc"]),
		Done:      asBool(rec["done"]),
		CreatedAt: asTime(rec[colCreatedAt]),
	}
}

// TasksToInternal convierte un conjunto de filas preservando el orden.
func TasksToInternal(recs []repository.Record) []entity.DailyTask {
	out := make([]entity.DailyTask, 0, len(recs))
	for _, r := range recs {
		out = append(out, TaskToInternal(r))
	}
	return out
}
