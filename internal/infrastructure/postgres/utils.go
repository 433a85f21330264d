package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Backoffice-api/internal/domain/query"
	"github.com/jhoicas/Backoffice-api/internal/domain/repository"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation verifica si un error es una violación de clave foránea (23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// listSQL arma el SELECT paginado y el COUNT del mismo filtro.
// cols y from no llevan WHERE; el orden es siempre created_at DESC.
func listSQL(cols, from string, t query.Table, c query.Criteria) (selectSQL, countSQL string, args []any) {
	where, args := c.Where(t, 1)
	n := len(args)
	selectSQL = fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d",
		cols, from, where, n+1, n+2)
	countSQL = fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", from, where)
	return selectSQL, countSQL, args
}

// pageArgs agrega LIMIT y OFFSET a los argumentos del filtro.
func pageArgs(args []any, page repository.Page) []any {
	out := make([]any, 0, len(args)+2)
	out = append(out, args...)
	return append(out, page.Limit, page.Offset)
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// nullIfEmpty guarda NULL en columnas opcionales cuando el dominio usa "".
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
