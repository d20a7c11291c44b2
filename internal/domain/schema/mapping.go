// Package schema maps the two raw column conventions onto canonical fields.
//
// The flat legacy variant names columns by their canonical name (or a
// variant-specific flat spelling); the nested variant uses dotted paths. A
// Mapping is resolved once per batch into a Resolver, so per-row lookups are a
// single map access.
package schema

import "github.com/riskibarqy/football-analytics/internal/domain/raw"

type Variant int

const (
	VariantFlat Variant = iota
	VariantNested
	variantCount
)

func (v Variant) String() string {
	switch v {
	case VariantFlat:
		return "flat"
	case VariantNested:
		return "nested"
	default:
		return "unknown"
	}
}

// Field is a canonical column name.
type Field string

// Sources holds the source column spelling per variant; empty means the
// variant has no such column.
type Sources [variantCount]string

// Mapping is the enumerated {variant} x {canonical field} table.
type Mapping struct {
	fields []Field
	table  map[Field]Sources
}

type Entry struct {
	Field  Field
	Flat   string
	Nested string
}

func NewMapping(entries ...Entry) Mapping {
	m := Mapping{
		fields: make([]Field, 0, len(entries)),
		table:  make(map[Field]Sources, len(entries)),
	}
	for _, e := range entries {
		if _, dup := m.table[e.Field]; dup {
			panic("schema: duplicate mapping entry " + string(e.Field))
		}
		m.fields = append(m.fields, e.Field)
		m.table[e.Field] = Sources{VariantFlat: e.Flat, VariantNested: e.Nested}
	}
	return m
}

func (m Mapping) Fields() []Field {
	return append([]Field(nil), m.fields...)
}

func (m Mapping) Sources(f Field) (Sources, bool) {
	s, ok := m.table[f]
	return s, ok
}

// Resolver binds each canonical field to the source column present in one batch.
type Resolver struct {
	columns map[Field]string
	variant Variant
}

// Resolve picks, per field, the first variant spelling present in columns
// (flat first, then nested). Fields without a present spelling resolve to
// nothing and read as nil. The reported variant is the one that bound the
// most fields.
func (m Mapping) Resolve(columns []string) Resolver {
	present := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		present[c] = struct{}{}
	}

	var hits [variantCount]int
	bound := make(map[Field]string, len(m.fields))
	for _, f := range m.fields {
		sources := m.table[f]
		for v := Variant(0); v < variantCount; v++ {
			col := sources[v]
			if col == "" {
				continue
			}
			if _, ok := present[col]; ok {
				bound[f] = col
				hits[v]++
				break
			}
		}
	}

	variant := VariantFlat
	if hits[VariantNested] > hits[VariantFlat] {
		variant = VariantNested
	}
	return Resolver{columns: bound, variant: variant}
}

// ResolveRecords resolves against the union of columns of records.
func (m Mapping) ResolveRecords(records []*raw.Record) Resolver {
	return m.Resolve(raw.Columns(records))
}

func (r Resolver) Variant() Variant {
	return r.variant
}

// Column returns the bound source column for f.
func (r Resolver) Column(f Field) (string, bool) {
	c, ok := r.columns[f]
	return c, ok
}

// Get reads f from rec; unbound or absent fields are nil.
func (r Resolver) Get(rec *raw.Record, f Field) any {
	col, ok := r.columns[f]
	if !ok {
		return nil
	}
	return rec.Value(col)
}
