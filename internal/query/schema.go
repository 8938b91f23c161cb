package query

// Kind decides how a filter value is matched against a column.
type Kind int

const (
	// KindText columns match string values by case-insensitive substring.
	KindText Kind = iota
	// KindNumber columns match by equality; numeric strings are accepted.
	KindNumber
	// KindTime columns can be sorted but not filtered.
	KindTime
)

type Field struct {
	Column     string
	Kind       Kind
	Sortable   bool
	Filterable bool
}

func Text(column string) Field   { return Field{Column: column, Kind: KindText, Sortable: true, Filterable: true} }
func Number(column string) Field { return Field{Column: column, Kind: KindNumber, Sortable: true, Filterable: true} }
func Time(column string) Field   { return Field{Column: column, Kind: KindTime, Sortable: true} }

// Schema is the whitelist of fields a list endpoint accepts in sort and
// filter, keyed by their API (JSON) name.
type Schema struct {
	// Resource is the unit name written into Content-Range.
	Resource    string
	Fields      map[string]Field
	DefaultSort Sort
	// Pinned, when set, is always applied before the requested sort.
	Pinned *Sort
}

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

type Sort struct {
	Field     string
	Direction Direction
}

// BaseFields returns the fields every resource shares.
func BaseFields() map[string]Field {
	return map[string]Field{
		"id":        Number("id"),
		"createdAt": Time("created_at"),
		"updatedAt": Time("updated_at"),
	}
}

// With returns a copy of fields extended by extra.
func With(fields map[string]Field, extra map[string]Field) map[string]Field {
	out := make(map[string]Field, len(fields)+len(extra))
	for k, v := range fields {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
