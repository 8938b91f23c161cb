// Package query turns the list parameters sent by admin UIs
// (range=[0,9], sort=["title","ASC"], filter={"title":"alps"}) into
// validated SQL fragments and the matching Content-Range header.
package query

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrInvalidQuery = errors.New("invalid query")

const defaultPageSize = 10

type Params struct {
	Resource string
	Start    int
	End      int

	sorts   []Sort
	schema  Schema
	filters []predicate
}

type predicate struct {
	sql  string
	args []any
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidQuery, fmt.Sprintf(format, args...))
}

// Parse validates the raw range, sort and filter parameters against schema.
// Empty strings select the defaults: the first page of ten rows, the
// schema's default sort and no filtering.
func Parse(schema Schema, rawRange, rawSort, rawFilter string) (Params, error) {
	p := Params{Resource: schema.Resource, schema: schema}

	start, end, err := parseRange(rawRange)
	if err != nil {
		return Params{}, err
	}
	p.Start, p.End = start, end

	requested, err := parseSort(schema, rawSort)
	if err != nil {
		return Params{}, err
	}
	if schema.Pinned != nil {
		p.sorts = append(p.sorts, *schema.Pinned)
	}
	if schema.Pinned == nil || schema.Pinned.Field != requested.Field {
		p.sorts = append(p.sorts, requested)
	}

	p.filters, err = parseFilter(schema, rawFilter)
	if err != nil {
		return Params{}, err
	}

	return p, nil
}

func parseRange(raw string) (int, int, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, defaultPageSize, nil
	}

	var bounds []json.Number
	if err := json.Unmarshal([]byte(raw), &bounds); err != nil || len(bounds) != 2 {
		return 0, 0, invalidf("range must be a JSON array [start, end]")
	}
	start, err := bounds[0].Int64()
	if err != nil {
		return 0, 0, invalidf("range start must be an integer")
	}
	end, err := bounds[1].Int64()
	if err != nil {
		return 0, 0, invalidf("range end must be an integer")
	}
	if start < 0 {
		return 0, 0, invalidf("range start must not be negative")
	}

	return int(start), int(end), nil
}

func parseSort(schema Schema, raw string) (Sort, error) {
	if strings.TrimSpace(raw) == "" {
		return schema.DefaultSort, nil
	}

	var parts []string
	if err := json.Unmarshal([]byte(raw), &parts); err != nil || len(parts) != 2 {
		return Sort{}, invalidf("sort must be a JSON array [field, order]")
	}

	field, ok := schema.Fields[parts[0]]
	if !ok || !field.Sortable {
		return Sort{}, invalidf("cannot sort by %q", parts[0])
	}

	dir := Direction(strings.ToUpper(parts[1]))
	if dir != Asc && dir != Desc {
		return Sort{}, invalidf("sort order must be ASC or DESC")
	}

	return Sort{Field: parts[0], Direction: dir}, nil
}

func parseFilter(schema Schema, raw string) ([]predicate, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, invalidf("filter must be a JSON object")
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	filters := make([]predicate, 0, len(names))
	for _, name := range names {
		field, ok := schema.Fields[name]
		if !ok || !field.Filterable {
			return nil, invalidf("cannot filter by %q", name)
		}
		pred, err := buildPredicate(name, field, entries[name])
		if err != nil {
			return nil, err
		}
		filters = append(filters, pred)
	}

	return filters, nil
}

func buildPredicate(name string, field Field, raw json.RawMessage) (predicate, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return predicate{}, invalidf("malformed value for %q", name)
	}

	column := pq.QuoteIdentifier(field.Column)

	switch v := value.(type) {
	case nil:
		return predicate{sql: column + " IS NULL"}, nil

	case []any:
		if len(v) == 0 {
			return predicate{sql: "1 = 0"}, nil
		}
		values := make([]any, 0, len(v))
		for _, elem := range v {
			sv, err := scalar(name, field, elem)
			if err != nil {
				return predicate{}, err
			}
			values = append(values, sv)
		}
		return predicate{sql: column + " IN ?", args: []any{values}}, nil

	case string:
		if field.Kind == KindText {
			pattern := "%" + escapeLike(strings.ToLower(v)) + "%"
			return predicate{sql: "LOWER(" + column + ") LIKE ? ESCAPE '\\'", args: []any{pattern}}, nil
		}
		sv, err := scalar(name, field, v)
		if err != nil {
			return predicate{}, err
		}
		return predicate{sql: column + " = ?", args: []any{sv}}, nil

	case json.Number:
		sv, err := scalar(name, field, v)
		if err != nil {
			return predicate{}, err
		}
		return predicate{sql: column + " = ?", args: []any{sv}}, nil

	default:
		return predicate{}, invalidf("unsupported value for %q", name)
	}
}

// scalar converts a single decoded JSON value to the Go value bound for
// field's column.
func scalar(name string, field Field, value any) (any, error) {
	switch field.Kind {
	case KindText:
		switch v := value.(type) {
		case string:
			return v, nil
		case json.Number:
			return v.String(), nil
		}
	case KindNumber:
		switch v := value.(type) {
		case json.Number:
			return parseNumber(name, v.String())
		case string:
			return parseNumber(name, strings.TrimSpace(v))
		}
	}
	return nil, invalidf("unsupported value for %q", name)
}

func parseNumber(name, s string) (any, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	return nil, invalidf("%q expects a number", name)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Where adds the filter predicates to db.
func (p Params) Where(db *gorm.DB) *gorm.DB {
	for _, f := range p.filters {
		db = db.Where(f.sql, f.args...)
	}
	return db
}

// Order adds the pinned sort, the requested sort and an id tie-breaker.
func (p Params) Order(db *gorm.DB) *gorm.DB {
	for _, col := range p.OrderColumns() {
		db = db.Order(col)
	}
	return db
}

func (p Params) OrderColumns() []clause.OrderByColumn {
	cols := make([]clause.OrderByColumn, 0, len(p.sorts)+1)
	hasID := false
	for _, s := range p.sorts {
		column := p.schema.Fields[s.Field].Column
		if column == "id" {
			hasID = true
		}
		cols = append(cols, clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: s.Direction == Desc})
	}
	if !hasID && len(p.sorts) > 0 {
		last := p.sorts[len(p.sorts)-1]
		cols = append(cols, clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: last.Direction == Desc})
	}
	return cols
}

func (p Params) Offset() int {
	return p.Start
}

// Limit is the page length for a filtered set of total rows:
// min(end-start+1, total), never negative. end may be as large as
// MaxInt64, so the span is compared before adding one.
func (p Params) Limit(total int64) int {
	span := int64(p.End) - int64(p.Start)
	switch {
	case span < 0 || total <= 0:
		return 0
	case span >= total:
		return int(total)
	}
	return int(span + 1)
}

// ContentRange renders "<resource> <start>-<min(end,total-1)>/<total>".
func (p Params) ContentRange(total int64) string {
	return fmt.Sprintf("%s %d-%d/%d", p.Resource, p.Start, min(int64(p.End), total-1), total)
}
