package postgres

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/vendas-dashboard/internal/domain"
	"github.com/jhoicas/vendas-dashboard/internal/domain/repository"
)

// Solo nombres de columna de la lista blanca de cada tabla llegan al SQL; los valores van
// siempre como parámetros.

func buildSelect(collection string, q repository.Query) (string, []any, error) {
	t, err := lookupTable(collection)
	if err != nil {
		return "", nil, err
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s", t.selectList, t.name)

	args := make([]any, 0, len(q.Filters))
	for i, f := range q.Filters {
		expr, ok := t.filters[f.Column]
		if !ok {
			return "", nil, unknownColumn(collection, f.Column)
		}
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		args = append(args, f.Value)
		fmt.Fprintf(&sb, "%s = $%d", expr, len(args))
	}
	for i, o := range q.OrderBy {
		expr, ok := t.filters[o.Column]
		if !ok {
			return "", nil, unknownColumn(collection, o.Column)
		}
		if i == 0 {
			sb.WriteString(" ORDER BY ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(expr)
		if o.Desc {
			sb.WriteString(" DESC")
		}
	}
	return sb.String(), args, nil
}

func buildInsert(collection string, rec repository.Record) (string, []any, error) {
	t, err := lookupTable(collection)
	if err != nil {
		return "", nil, err
	}
	cols, err := writableColumns(t, collection, rec)
	if err != nil {
		return "", nil, err
	}
	if len(cols) == 0 {
		return "", nil, fmt.Errorf("%w: inserción sin columnas en %s", domain.ErrInvalidInput, collection)
	}
	names := make([]string, len(cols))
	values := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, c := range cols {
		names[i] = quoteIdent(c)
		values[i] = fmt.Sprintf(t.writable[c], fmt.Sprintf("$%d", i+1))
		args[i] = rec[c]
	}
	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		t.name, strings.Join(names, ", "), strings.Join(values, ", "), t.selectList)
	return sql, args, nil
}

func buildUpdate(collection, id string, patch repository.Record) (string, []any, error) {
	t, err := lookupTable(collection)
	if err != nil {
		return "", nil, err
	}
	cols, err := writableColumns(t, collection, patch)
	if err != nil {
		return "", nil, err
	}
	if len(cols) == 0 {
		return "", nil, fmt.Errorf("%w: actualización vacía en %s", domain.ErrInvalidInput, collection)
	}
	sets := make([]string, len(cols))
	args := make([]any, 0, len(cols)+1)
	for i, c := range cols {
		args = append(args, patch[c])
		sets[i] = fmt.Sprintf("%s = %s", quoteIdent(c), fmt.Sprintf(t.writable[c], fmt.Sprintf("$%d", len(args))))
	}
	args = append(args, id)
	sql := fmt.Sprintf("UPDATE %s SET %s WHERE id::text = $%d RETURNING %s",
		t.name, strings.Join(sets, ", "), len(args), t.selectList)
	return sql, args, nil
}

func buildDelete(collection, id string) (string, []any, error) {
	t, err := lookupTable(collection)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("DELETE FROM %s WHERE id::text = $1", t.name), []any{id}, nil
}

// writableColumns columnas del registro en orden estable. id y created_at los asigna el servidor
// y se ignoran.
func writableColumns(t table, collection string, rec repository.Record) ([]string, error) {
	cols := make([]string, 0, len(rec))
	for c := range rec {
		if c == "id" || c == "created_at" {
			continue
		}
		if _, ok := t.writable[c]; !ok {
			return nil, unknownColumn(collection, c)
		}
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols, nil
}

func unknownColumn(collection, col string) error {
	return fmt.Errorf("%w: columna %q en %s", domain.ErrInvalidInput, col, collection)
}
