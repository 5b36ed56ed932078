package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/refnet-api/internal/domain/store"
)

// Querier subconjunto común de *pgxpool.Pool y pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func identList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = ident(n)
	}
	return strings.Join(quoted, ", ")
}

// whereClause arma "WHERE a = $n AND b IS NULL" con placeholders a partir de start.
func whereClause(f store.Filter, start int) (string, []any) {
	if len(f) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(f))
	args := make([]any, 0, len(f))
	for _, col := range store.Keys(f) {
		v := f[col]
		if v == nil {
			parts = append(parts, ident(col)+" IS NULL")
			continue
		}
		args = append(args, v)
		parts = append(parts, fmt.Sprintf("%s = $%d", ident(col), start+len(args)-1))
	}
	return " WHERE " + strings.Join(parts, " AND "), args
}

func buildSelect(table string, q store.Query) (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT ")
	if len(q.Columns) == 0 {
		b.WriteString("*")
	} else {
		b.WriteString(identList(q.Columns))
	}
	b.WriteString(" FROM ")
	b.WriteString(ident(table))
	where, args := whereClause(q.Filter, 1)
	b.WriteString(where)
	if q.Order != nil {
		dir := "DESC"
		if q.Order.Ascending {
			dir = "ASC"
		}
		fmt.Fprintf(&b, " ORDER BY %s %s", ident(q.Order.Column), dir)
	}
	if q.Limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", q.Limit)
	}
	if q.ForUpdate {
		b.WriteString(" FOR UPDATE")
	}
	return b.String(), args
}

func buildInsert(table string, row store.Row) (string, []any) {
	cols := store.Keys(row)
	if len(cols) == 0 {
		return fmt.Sprintf("INSERT INTO %s DEFAULT VALUES RETURNING *", ident(table)), nil
	}
	args := make([]any, len(cols))
	ph := make([]string, len(cols))
	for i, c := range cols {
		args[i] = row[c]
		ph[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		ident(table), identList(cols), strings.Join(ph, ", ")), args
}

func buildUpdate(table string, patch store.Row, filter store.Filter) (string, []any) {
	cols := store.Keys(patch)
	sets := make([]string, len(cols))
	args := make([]any, 0, len(cols)+len(filter))
	for i, c := range cols {
		args = append(args, patch[c])
		sets[i] = fmt.Sprintf("%s = $%d", ident(c), i+1)
	}
	where, wargs := whereClause(filter, len(cols)+1)
	args = append(args, wargs...)
	return fmt.Sprintf("UPDATE %s SET %s%s", ident(table), strings.Join(sets, ", "), where), args
}

// normalizeRow convierte tipos de pgx que no viajan bien como any (uuid como [16]byte).
func normalizeRow(m map[string]any) store.Row {
	row := make(store.Row, len(m))
	for k, v := range m {
		if b, ok := v.([16]byte); ok {
			v = uuid.UUID(b).String()
		}
		row[k] = v
	}
	return row
}
