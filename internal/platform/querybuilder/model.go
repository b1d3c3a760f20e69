package querybuilder

import (
	"errors"
	"reflect"
	"strings"
	"sync"
)

// columnIndex maps a struct type to its db-tagged field positions.
var columnIndex sync.Map

type modelColumn struct {
	name  string
	field int
}

// InsertModel renders a single-row INSERT from the exported db-tagged fields of model.
// A non-empty returning list adds a RETURNING clause.
func InsertModel(table string, model any, returning ...string) (string, []any, error) {
	if strings.TrimSpace(table) == "" {
		return "", nil, errNoTable
	}

	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return "", nil, errors.New("querybuilder: model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return "", nil, errors.New("querybuilder: model must be a struct")
	}

	columns := modelColumns(value.Type())
	if len(columns) == 0 {
		return "", nil, errNoColumns
	}

	var w sqlWriter
	w.WriteString("INSERT INTO ")
	w.WriteString(table)
	w.WriteString(" (")
	for i, col := range columns {
		if i > 0 {
			w.WriteString(", ")
		}
		w.WriteString(col.name)
	}
	w.WriteString(") VALUES (")
	for i, col := range columns {
		if i > 0 {
			w.WriteString(", ")
		}
		w.bind(value.Field(col.field).Interface())
	}
	w.WriteString(")")
	if len(returning) > 0 {
		w.WriteString(" RETURNING ")
		w.WriteString(strings.Join(returning, ", "))
	}

	return w.String(), w.args, nil
}

func modelColumns(typ reflect.Type) []modelColumn {
	if cached, ok := columnIndex.Load(typ); ok {
		return cached.([]modelColumn)
	}

	columns := make([]modelColumn, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		name = strings.TrimSpace(name)
		if name == "" || name == "-" {
			continue
		}
		columns = append(columns, modelColumn{name: name, field: i})
	}

	columnIndex.Store(typ, columns)
	return columns
}
