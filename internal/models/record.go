package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Record is a business entity (order, equipment unit, employee, inventory item, ...)
// represented as a mapping from field name to value.
type Record map[string]any

// Collections maps a collection name to its records. A missing name is an empty collection.
type Collections map[string][]Record

// IDField is the identity field of every record.
const IDField = "id"

// Get returns the collection stored under name, never nil.
func (c Collections) Get(name string) []Record {
	if records, ok := c[name]; ok && records != nil {
		return records
	}
	return []Record{}
}

// ID returns the record identity as a string.
func (r Record) ID() string {
	return r.String(IDField)
}

// Lookup resolves a dotted path such as "customer.name" through nested records.
func (r Record) Lookup(path string) (any, bool) {
	if r == nil {
		return nil, false
	}
	if v, ok := r[path]; ok {
		return v, true
	}

	var current any = map[string]any(r)
	for _, part := range strings.Split(path, ".") {
		m, ok := asMap(current)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// String stringifies the value at path. Numbers are rendered without trailing zeros,
// so 15.0 becomes "15" and 15.5 stays "15.5". Missing values yield "".
func (r Record) String(path string) string {
	v, ok := r.Lookup(path)
	if !ok {
		return ""
	}
	return Stringify(v)
}

// Number returns the value at path as a float64. Missing or non-numeric values yield 0.
func (r Record) Number(path string) float64 {
	n, _ := r.NumberOK(path)
	return n
}

// NumberOK is Number with a flag reporting whether the value was numeric.
func (r Record) NumberOK(path string) (float64, bool) {
	v, ok := r.Lookup(path)
	if !ok {
		return 0, false
	}
	return ToNumber(v)
}

// Time parses the value at path as a timestamp or calendar date. Values without
// a zone are read as UTC.
func (r Record) Time(path string) (time.Time, bool) {
	return r.TimeIn(path, time.UTC)
}

// TimeIn is Time with values lacking a zone read in loc, so a plain date stays
// on its calendar day in loc.
func (r Record) TimeIn(path string, loc *time.Location) (time.Time, bool) {
	v, ok := r.Lookup(path)
	if !ok {
		return time.Time{}, false
	}
	return ToTimeIn(v, loc)
}

// Records returns the nested records stored at path (e.g. inventory locations).
func (r Record) Records(path string) []Record {
	v, ok := r.Lookup(path)
	if !ok {
		return nil
	}

	switch items := v.(type) {
	case []Record:
		return items
	case []map[string]any:
		out := make([]Record, 0, len(items))
		for _, m := range items {
			out = append(out, Record(m))
		}
		return out
	case []any:
		out := make([]Record, 0, len(items))
		for _, item := range items {
			if m, ok := asMap(item); ok {
				out = append(out, Record(m))
			}
		}
		return out
	}
	return nil
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case Record:
		return m, true
	case map[string]any:
		return m, true
	}
	return nil, false
}

// Stringify renders a field value the way it is compared by string filters.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.Format(time.RFC3339)
	}

	out, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(out)
}

// ToNumber coerces a field value to float64. Unparsable strings, NaN and
// infinities coerce to 0.
func ToNumber(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return finite(val)
	case float32:
		return finite(float64(val))
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0, false
		}
		return finite(f)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return finite(f)
	}
	return 0, false
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ToTime coerces a field value to a time.Time, reading zoneless values as UTC.
func ToTime(v any) (time.Time, bool) {
	return ToTimeIn(v, time.UTC)
}

// ToTimeIn coerces a field value to a time.Time, reading zoneless values in loc.
func ToTimeIn(v any, loc *time.Location) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, !val.IsZero()
	case string:
		return ParseTimeIn(val, loc)
	}
	return time.Time{}, false
}

// ParseTime parses RFC3339 timestamps, naive timestamps and plain dates as UTC.
func ParseTime(s string) (time.Time, bool) {
	return ParseTimeIn(s, time.UTC)
}

// ParseTimeIn parses RFC3339 timestamps, naive timestamps and plain dates.
func ParseTimeIn(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
