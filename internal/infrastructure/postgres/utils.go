package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgCode(err) == "23505"
}

// isForeignKeyViolation 23503: la fila referenciada no existe o sigue referenciada.
func isForeignKeyViolation(err error) bool {
	return pgCode(err) == "23503"
}

// isCheckViolation 23514, por ejemplo stock negativo.
func isCheckViolation(err error) bool {
	return pgCode(err) == "23514"
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// filter arma cláusulas WHERE con placeholders numerados.
type filter struct {
	conds []string
	args  []any
}

// add agrega una condición; cada "?" se reemplaza por el siguiente $n.
func (f *filter) add(cond string, args ...any) {
	for _, a := range args {
		f.args = append(f.args, a)
		cond = strings.Replace(cond, "?", fmt.Sprintf("$%d", len(f.args)), 1)
	}
	f.conds = append(f.conds, cond)
}

func (f *filter) where() string {
	if len(f.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.conds, " AND ")
}

// page agrega LIMIT/OFFSET como placeholders y devuelve el sufijo.
func (f *filter) page(limit, offset int) (string, []any) {
	if limit <= 0 {
		return fmt.Sprintf(" OFFSET $%d", len(f.args)+1), append(append([]any{}, f.args...), offset)
	}
	n := len(f.args)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", n+1, n+2), append(append([]any{}, f.args...), limit, offset)
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
