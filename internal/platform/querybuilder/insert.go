package querybuilder

import (
	"errors"
	"fmt"
)

// Conflict is an ON CONFLICT clause for inserts.
type Conflict struct {
	target  []string
	updates []string
}

// OnConflict targets the unique index over columns. Without DoUpdate the
// conflicting row is skipped.
func OnConflict(columns ...string) Conflict {
	return Conflict{target: columns}
}

// DoUpdate overwrites columns with the values from the rejected row.
func (c Conflict) DoUpdate(columns ...string) Conflict {
	c.updates = columns
	return c
}

func (c Conflict) render(w *sqlWriter) {
	w.WriteString(" ON CONFLICT (")
	w.list(c.target)
	w.WriteByte(')')
	if len(c.updates) == 0 {
		w.WriteString(" DO NOTHING")
		return
	}
	w.WriteString(" DO UPDATE SET ")
	for i, col := range c.updates {
		if i > 0 {
			w.WriteString(", ")
		}
		w.WriteString(col)
		w.WriteString(" = EXCLUDED.")
		w.WriteString(col)
	}
}

type InsertBuilder struct {
	table    string
	columns  []string
	rows     [][]any
	conflict *Conflict
	err      error
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = columns
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, values)
	return b
}

func (b *InsertBuilder) OnConflict(c Conflict) *InsertBuilder {
	b.conflict = &c
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	switch {
	case b.err != nil:
		return "", nil, b.err
	case blank(b.table):
		return "", nil, errors.New("insert: no table")
	case len(b.columns) == 0:
		return "", nil, errors.New("insert: no columns")
	case len(b.rows) == 0:
		return "", nil, errors.New("insert: no rows")
	}

	var w sqlWriter
	w.WriteString("INSERT INTO ")
	w.WriteString(b.table)
	w.WriteString(" (")
	w.list(b.columns)
	w.WriteString(") VALUES ")
	for i, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert: row %d has %d values for %d columns", i, len(row), len(b.columns))
		}
		if i > 0 {
			w.WriteString(", ")
		}
		w.WriteByte('(')
		for j, v := range row {
			if j > 0 {
				w.WriteString(", ")
			}
			w.bind(v)
		}
		w.WriteByte(')')
	}
	if b.conflict != nil {
		b.conflict.render(&w)
	}
	return w.String(), w.args, nil
}
