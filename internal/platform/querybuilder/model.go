package querybuilder

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// InsertModel starts an insert whose columns and values come from the `db`
// tags of a struct. Fields tagged "-" or untagged are skipped.
func InsertModel(table string, model any) *InsertBuilder {
	return InsertModels(table, []any{model})
}

// InsertModels is InsertModel for many rows; models may be any slice. Every
// row must produce the same columns.
func InsertModels(table string, models any) *InsertBuilder {
	b := InsertInto(table)

	slice := reflect.ValueOf(models)
	if slice.Kind() != reflect.Slice {
		b.err = fmt.Errorf("insert %s: models must be a slice, got %T", table, models)
		return b
	}
	for i := range slice.Len() {
		cols, vals, err := taggedFields(slice.Index(i))
		if err != nil {
			b.err = fmt.Errorf("insert %s: row %d: %w", table, i, err)
			return b
		}
		if i == 0 {
			b.Columns(cols...)
		} else if len(cols) != len(b.columns) {
			b.err = fmt.Errorf("insert %s: row %d has different columns", table, i)
			return b
		}
		b.Values(vals...)
	}
	return b
}

func taggedFields(v reflect.Value) ([]string, []any, error) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, nil, errors.New("nil model")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be a struct, got %s", v.Kind())
	}

	t := v.Type()
	var (
		cols []string
		vals []any
	)
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		if name == "" || name == "-" {
			continue
		}
		cols = append(cols, name)
		vals = append(vals, v.Field(i).Interface())
	}
	if len(cols) == 0 {
		return nil, nil, errors.New("model has no db columns")
	}
	return cols, vals, nil
}
