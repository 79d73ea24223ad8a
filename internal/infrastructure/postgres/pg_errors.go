package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/vendas-dashboard/internal/domain"
)

// Códigos SQLSTATE que se traducen a errores de dominio.
const (
	codeUniqueViolation  = "23505"
	codeForeignKey       = "23503"
	codeNotNull          = "23502"
	codeCheckViolation   = "23514"
	codeInvalidText      = "22P02"
	codeInvalidDatetime  = "22007"
	codeDatetimeOverflow = "22008"
)

// wrapPgError envuelve err con la operación y, si Postgres lo identifica, con el error de
// dominio correspondiente. Los errores de red o de pool solo se envuelven.
func wrapPgError(op, collection string, err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s %s: %w", op, collection, err)
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return fmt.Errorf("%s %s: %w: %s", op, collection, domain.ErrDuplicate, pgErr.ConstraintName)
	case codeForeignKey, codeNotNull, codeCheckViolation, codeInvalidText, codeInvalidDatetime, codeDatetimeOverflow:
		return fmt.Errorf("%s %s: %w: %s", op, collection, domain.ErrInvalidInput, pgErr.Message)
	}
	return fmt.Errorf("%s %s: %w", op, collection, err)
}
