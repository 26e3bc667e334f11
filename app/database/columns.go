package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// ErrNoColumns is returned when a statement cannot be built because no
// candidate physical column exists for a required field (or for any field at
// all). Surfaced to clients as "no valid columns available".
var ErrNoColumns = errors.New("no valid columns available")

// Field maps one logical field onto an ordered list of candidate physical
// columns. The canonical column is tried first, then each alias; the value is
// written to at most one of them. Fields whose columns are all absent are
// silently dropped unless Required is set.
type Field struct {
	Column   string
	Aliases  []string
	Value    interface{}
	Required bool
}

func (f Field) resolve(cols map[string]bool) (string, bool) {
	if cols[f.Column] {
		return f.Column, true
	}
	for _, alias := range f.Aliases {
		if cols[alias] {
			return alias, true
		}
	}
	return "", false
}

// TableColumns fetches the table's current physical column set. Results are
// deliberately not cached: the schema can change between calls.
func TableColumns(db *sql.DB, table string) (map[string]bool, error) {
	rows, err := db.Query(
		`SELECT column_name FROM information_schema.columns WHERE table_name = $1`,
		table,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		cols[name] = true
	}
	return cols, rows.Err()
}

// BuildInsert produces an INSERT statement covering only the fields whose
// columns currently exist, with a RETURNING id clause.
func BuildInsert(table string, cols map[string]bool, fields []Field) (string, []interface{}, error) {
	var names []string
	var args []interface{}

	for _, f := range fields {
		col, ok := f.resolve(cols)
		if !ok {
			if f.Required {
				return "", nil, fmt.Errorf("%w for required field %s.%s", ErrNoColumns, table, f.Column)
			}
			continue
		}
		names = append(names, col)
		args = append(args, f.Value)
	}

	if len(names) == 0 {
		return "", nil, ErrNoColumns
	}

	placeholders := make([]string, len(names))
	for i := range names {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		table, strings.Join(names, ", "), strings.Join(placeholders, ", "),
	)
	return query, args, nil
}

// BuildUpdate produces an UPDATE statement with the same tolerance policy as
// BuildInsert. The WHERE clause is appended by the caller's extra conditions:
// placeholders continue after the SET arguments.
func BuildUpdate(table string, cols map[string]bool, fields []Field, where string, whereArgs ...interface{}) (string, []interface{}, error) {
	var sets []string
	var args []interface{}

	for _, f := range fields {
		col, ok := f.resolve(cols)
		if !ok {
			if f.Required {
				return "", nil, fmt.Errorf("%w for required field %s.%s", ErrNoColumns, table, f.Column)
			}
			continue
		}
		args = append(args, f.Value)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if len(sets) == 0 {
		return "", nil, ErrNoColumns
	}

	conds := where
	for _, wa := range whereArgs {
		args = append(args, wa)
		conds = strings.Replace(conds, "?", fmt.Sprintf("$%d", len(args)), 1)
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s, updated_at = NOW() WHERE %s",
		table, strings.Join(sets, ", "), conds,
	)
	return query, args, nil
}

// InsertTolerant probes the table's columns and executes the adapted insert,
// returning the new row id.
func InsertTolerant(db *sql.DB, table string, fields []Field) (int, error) {
	cols, err := TableColumns(db, table)
	if err != nil {
		return 0, err
	}
	query, args, err := BuildInsert(table, cols, fields)
	if err != nil {
		return 0, err
	}
	var id int
	if err := db.QueryRow(query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateTolerant probes the table's columns and executes the adapted update.
func UpdateTolerant(db *sql.DB, table string, fields []Field, where string, whereArgs ...interface{}) error {
	cols, err := TableColumns(db, table)
	if err != nil {
		return err
	}
	query, args, err := BuildUpdate(table, cols, fields, where, whereArgs...)
	if err != nil {
		return err
	}
	_, err = db.Exec(query, args...)
	return err
}

// isUndefinedColumn reports whether err is Postgres 42703 (undefined_column).
func isUndefinedColumn(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "42703"
}

// QueryOrderFallback runs the query with each candidate order column in turn.
// queryFmt must contain exactly one %s for the column name. The fallback is a
// runtime one: a missing column is only observable when the statement
// executes, so each candidate is actually tried against the live schema.
func QueryOrderFallback(db *sql.DB, queryFmt string, orderCols []string, args ...interface{}) (*sql.Rows, error) {
	var lastErr error
	for _, col := range orderCols {
		rows, err := db.Query(fmt.Sprintf(queryFmt, col), args...)
		if err == nil {
			return rows, nil
		}
		if !isUndefinedColumn(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}
