// Package querybuilder renders the small set of PostgreSQL statements the repositories
// need, numbering placeholders as $1..$n in the order arguments are bound.
package querybuilder

import (
	"errors"
	"strconv"
	"strings"
)

var (
	errNoTable   = errors.New("querybuilder: table is required")
	errNoColumns = errors.New("querybuilder: columns are required")
)

// sqlWriter accumulates statement text and its bound arguments.
type sqlWriter struct {
	strings.Builder
	args []any
}

func (w *sqlWriter) bind(value any) {
	w.args = append(w.args, value)
	w.WriteString("$")
	w.WriteString(strconv.Itoa(len(w.args)))
}

func (w *sqlWriter) where(conditions []Condition) {
	for i, c := range conditions {
		if i == 0 {
			w.WriteString(" WHERE ")
		} else {
			w.WriteString(" AND ")
		}
		c.writeTo(w)
	}
}

// Condition is one predicate of a WHERE clause. Conditions are joined with AND.
type Condition interface {
	writeTo(w *sqlWriter)
}

type eqCondition struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCondition{column: column, value: value}
}

func (c eqCondition) writeTo(w *sqlWriter) {
	w.WriteString(c.column)
	w.WriteString(" = ")
	w.bind(c.value)
}

type SelectBuilder struct {
	columns []string
	table   string
	joins   []string
	where   []Condition
	orderBy []string
	limit   int
	offset  int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

// Join adds an INNER JOIN. on is written verbatim and must not carry user input.
func (b *SelectBuilder) Join(table, on string) *SelectBuilder {
	b.joins = append(b.joins, "JOIN "+table+" ON "+on)
	return b
}

func (b *SelectBuilder) LeftJoin(table, on string) *SelectBuilder {
	b.joins = append(b.joins, "LEFT JOIN "+table+" ON "+on)
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

// Limit of zero or less renders no LIMIT clause.
func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) Offset(offset int) *SelectBuilder {
	b.offset = offset
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, errNoColumns
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, errNoTable
	}

	var w sqlWriter
	w.WriteString("SELECT ")
	w.WriteString(strings.Join(b.columns, ", "))
	w.WriteString(" FROM ")
	w.WriteString(b.table)
	for _, join := range b.joins {
		w.WriteString(" ")
		w.WriteString(join)
	}
	w.where(b.where)
	if len(b.orderBy) > 0 {
		w.WriteString(" ORDER BY ")
		w.WriteString(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		w.WriteString(" LIMIT ")
		w.WriteString(strconv.Itoa(b.limit))
	}
	if b.offset > 0 {
		w.WriteString(" OFFSET ")
		w.WriteString(strconv.Itoa(b.offset))
	}

	return w.String(), w.args, nil
}

type assignment struct {
	column string
	value  any
	raw    string
}

type UpdateBuilder struct {
	table string
	sets  []assignment
	where []Condition
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, value: value})
	return b
}

// SetExpr assigns a raw SQL expression such as NOW().
func (b *UpdateBuilder) SetExpr(column, expr string) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, raw: expr})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, errNoTable
	}
	if len(b.sets) == 0 {
		return "", nil, errNoColumns
	}

	var w sqlWriter
	w.WriteString("UPDATE ")
	w.WriteString(b.table)
	w.WriteString(" SET ")
	for i, s := range b.sets {
		if i > 0 {
			w.WriteString(", ")
		}
		w.WriteString(s.column)
		w.WriteString(" = ")
		if s.raw != "" {
			w.WriteString(s.raw)
			continue
		}
		w.bind(s.value)
	}
	w.where(b.where)

	return w.String(), w.args, nil
}

type DeleteBuilder struct {
	table string
	where []Condition
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(conditions ...Condition) *DeleteBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, errNoTable
	}
	if len(b.where) == 0 {
		return "", nil, errors.New("querybuilder: delete requires a where clause")
	}

	var w sqlWriter
	w.WriteString("DELETE FROM ")
	w.WriteString(b.table)
	w.where(b.where)

	return w.String(), w.args, nil
}
