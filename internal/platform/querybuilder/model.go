package querybuilder

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"
)

var identifierRegex = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

var timeType = reflect.TypeOf(time.Time{})

// Column is one persisted struct field.
type Column struct {
	Name    string
	SQLType string
	index   []int
}

// Schema is the ordered list of db-tagged fields of a row struct.
type Schema struct {
	Columns []Column
	typ     reflect.Type
}

func InsertModel(table string, model any, suffix string) (string, []any, error) {
	schema, err := SchemaOf(model)
	if err != nil {
		return "", nil, err
	}
	value := reflect.Indirect(reflect.ValueOf(model))
	return InsertInto(table).
		Columns(schema.Names()...).
		Values(schema.Values(value)...).
		Suffix(suffix).
		ToSQL()
}

// SchemaOf reads db tags from a struct, a pointer to one, or a slice of either.
// SQL types come from the dbtype tag when present, otherwise from the Go type.
func SchemaOf(model any) (Schema, error) {
	if model == nil {
		return Schema{}, fmt.Errorf("model cannot be nil")
	}
	typ := reflect.TypeOf(model)
	for typ.Kind() == reflect.Pointer || typ.Kind() == reflect.Slice {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return Schema{}, fmt.Errorf("model must be struct, got %s", typ.Kind())
	}

	cols, err := columnsOf(typ, nil)
	if err != nil {
		return Schema{}, err
	}

	if len(cols) == 0 {
		return Schema{}, fmt.Errorf("model has no db columns")
	}
	return Schema{Columns: cols, typ: typ}, nil
}

// columnsOf walks exported fields; untagged embedded structs contribute their
// own columns in place.
func columnsOf(typ reflect.Type, parent []int) ([]Column, error) {
	cols := make([]Column, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		index := append(append([]int(nil), parent...), i)
		tag := strings.TrimSpace(field.Tag.Get("db"))

		if field.Anonymous && tag == "" && field.Type.Kind() == reflect.Struct {
			embedded, err := columnsOf(field.Type, index)
			if err != nil {
				return nil, err
			}
			cols = append(cols, embedded...)
			continue
		}
		if field.PkgPath != "" {
			continue
		}
		if tag == "" || tag == "-" {
			continue
		}
		name := strings.TrimSpace(strings.Split(tag, ",")[0])
		if name == "" || name == "-" {
			continue
		}

		sqlType := strings.TrimSpace(field.Tag.Get("dbtype"))
		if sqlType == "" {
			mapped, err := sqlTypeOf(field.Type)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", field.Name, err)
			}
			sqlType = mapped
		}
		cols = append(cols, Column{Name: name, SQLType: sqlType, index: index})
	}
	return cols, nil
}

func sqlTypeOf(t reflect.Type) (string, error) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == timeType {
		return "TIMESTAMP", nil
	}

	switch t.Kind() {
	case reflect.String:
		return "TEXT", nil
	case reflect.Bool:
		return "BOOLEAN", nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return "BIGINT", nil
	case reflect.Float32, reflect.Float64:
		return "DOUBLE PRECISION", nil
	default:
		return "", fmt.Errorf("unsupported column type %s", t)
	}
}

func (s Schema) Names() []string {
	out := make([]string, 0, len(s.Columns))
	for _, c := range s.Columns {
		out = append(out, c.Name)
	}
	return out
}

// Values returns the column values of row in schema order.
func (s Schema) Values(row reflect.Value) []any {
	row = reflect.Indirect(row)
	out := make([]any, 0, len(s.Columns))
	for _, c := range s.Columns {
		field := row.FieldByIndex(c.index)
		if field.Kind() == reflect.Pointer {
			if field.IsNil() {
				out = append(out, nil)
				continue
			}
			field = field.Elem()
		}
		out = append(out, field.Interface())
	}
	return out
}

// Without drops the named columns.
func (s Schema) Without(names ...string) Schema {
	if len(names) == 0 {
		return s
	}
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		drop[n] = struct{}{}
	}
	cols := make([]Column, 0, len(s.Columns))
	for _, c := range s.Columns {
		if _, ok := drop[c.Name]; ok {
			continue
		}
		cols = append(cols, c)
	}
	return Schema{Columns: cols, typ: s.typ}
}

func ValidateIdentifier(name string) error {
	if !identifierRegex.MatchString(name) {
		return fmt.Errorf("invalid sql identifier %q", name)
	}
	return nil
}

func CreateTable(table string, schema Schema) (string, error) {
	if err := ValidateIdentifier(table); err != nil {
		return "", err
	}
	if len(schema.Columns) == 0 {
		return "", fmt.Errorf("create table %s: no columns", table)
	}

	var buf strings.Builder
	buf.WriteString("CREATE TABLE ")
	buf.WriteString(table)
	buf.WriteString(" (")
	for i, c := range schema.Columns {
		if err := ValidateIdentifier(c.Name); err != nil {
			return "", err
		}
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(c.Name)
		buf.WriteString(" ")
		buf.WriteString(c.SQLType)
	}
	buf.WriteString(")")
	return buf.String(), nil
}

func DropTableIfExists(table string) (string, error) {
	if err := ValidateIdentifier(table); err != nil {
		return "", err
	}
	return "DROP TABLE IF EXISTS " + table, nil
}

func CreateTableAs(table, selectSQL string) (string, error) {
	if err := ValidateIdentifier(table); err != nil {
		return "", err
	}
	selectSQL = strings.TrimSpace(selectSQL)
	if selectSQL == "" {
		return "", fmt.Errorf("create table %s: select is required", table)
	}
	return "CREATE TABLE " + table + " AS " + selectSQL, nil
}
