package request_models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/datatypes"
)

var jsonNull = []byte("null")

// Optional tracks whether a key appeared in an update payload and whether
// its value had the expected shape. A malformed value is remembered as
// present but not Valid instead of failing the whole request, so the
// stored value is kept.
type Optional[T any] struct {
	Value   T
	Present bool
	Null    bool
	Valid   bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Present: true, Valid: true}
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		o.Null = true
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		o.Valid = false
		return nil
	}
	o.Value, o.Valid = v, true
	return nil
}

// Apply overwrites dst with a well-formed value. Null is ignored, which
// is what required columns want.
func (o Optional[T]) Apply(dst *T) {
	if o.Valid {
		*dst = o.Value
	}
}

// ApplyNullable is Apply for nullable columns: an explicit null clears dst.
func (o Optional[T]) ApplyNullable(dst **T) {
	switch {
	case o.Null:
		*dst = nil
	case o.Valid:
		v := o.Value
		*dst = &v
	}
}

// ApplyList writes a list into a JSON array column. With nullable set an
// explicit null stores an empty array.
func ApplyList[L ~[]string](o Optional[L], dst *datatypes.JSONSlice[string], nullable bool) {
	switch {
	case o.Null && nullable:
		*dst = datatypes.JSONSlice[string]{}
	case o.Valid:
		*dst = ToJSONSlice(o.Value)
	}
}

// ListOrEmpty returns the supplied list, or an empty one when the key was
// absent, null or malformed.
func ListOrEmpty[L ~[]string](o Optional[L]) datatypes.JSONSlice[string] {
	if o.Valid {
		return ToJSONSlice(o.Value)
	}
	return datatypes.JSONSlice[string]{}
}

func ToJSONSlice[L ~[]string](l L) datatypes.JSONSlice[string] {
	out := make(datatypes.JSONSlice[string], len(l))
	copy(out, l)
	return out
}

// FlexID is an entity id that clients send either as a JSON number or as
// a numeric string.
type FlexID uint

var errInvalidID = errors.New("id must be a positive integer")

func (id *FlexID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, jsonNull) {
		*id = 0
		return nil
	}

	raw := string(trimmed)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}

	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return errInvalidID
	}
	*id = FlexID(n)
	return nil
}

func (id FlexID) Uint() uint {
	return uint(id)
}

// ImageList accepts image URLs as plain strings, as upload descriptors
// {"rawFile": {"path": "x.jpg"}} (stored as /uploads/x.jpg) or as
// {"src": "..."} objects.
type ImageList []string

type imageDescriptor struct {
	RawFile *struct {
		Path string `json:"path"`
	} `json:"rawFile"`
	Src string `json:"src"`
}

func (l *ImageList) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*l = nil
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("img must be an array: %w", err)
	}

	out := make(ImageList, 0, len(items))
	for _, item := range items {
		if bytes.Equal(bytes.TrimSpace(item), jsonNull) {
			return errors.New("invalid img entry: null")
		}

		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			if strings.TrimSpace(s) == "" {
				return errors.New("invalid img entry: blank url")
			}
			out = append(out, s)
			continue
		}

		var d imageDescriptor
		if err := json.Unmarshal(item, &d); err != nil {
			return fmt.Errorf("invalid img entry: %w", err)
		}
		switch {
		case d.RawFile != nil && d.RawFile.Path != "":
			out = append(out, "/uploads/"+strings.TrimPrefix(d.RawFile.Path, "/"))
		case d.Src != "":
			out = append(out, d.Src)
		default:
			return errors.New("img entry has neither rawFile.path nor src")
		}
	}

	*l = out
	return nil
}

// DayInput is one child record (itinerary day, comfort, place note)
// submitted with its parent.
type DayInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}
