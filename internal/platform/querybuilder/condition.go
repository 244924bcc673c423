package querybuilder

// Condition is one AND-ed predicate of a WHERE clause.
type Condition interface {
	render(w *sqlWriter)
}

type conditionFunc func(w *sqlWriter)

func (f conditionFunc) render(w *sqlWriter) { f(w) }

func Eq(column string, value any) Condition {
	return conditionFunc(func(w *sqlWriter) {
		w.WriteString(column)
		w.WriteString(" = ")
		w.bind(value)
	})
}

func IsNull(column string) Condition {
	return conditionFunc(func(w *sqlWriter) {
		w.WriteString(column)
		w.WriteString(" IS NULL")
	})
}
