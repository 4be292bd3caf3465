package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind discriminates the typed cell values a table can hold.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindTime
)

// TimeOfDay is a wall-clock time without a date, as found in schedule cells.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Value is one typed table cell. Absent cells are simply not present in the
// row map, so Value never models absence itself.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
	Time TimeOfDay
}

// StringValue builds a string cell.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// NumberValue builds a numeric cell.
func NumberValue(n float64) Value {
	return Value{Kind: KindNumber, Num: n}
}

// TimeValue builds a time-of-day cell.
func TimeValue(t TimeOfDay) Value {
	return Value{Kind: KindTime, Time: t}
}

// Text returns the matching representation of the value: numbers without
// trailing zeros, times as HH:MM:SS.
func (v Value) Text() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindTime:
		return v.Time.String()
	default:
		return v.Str
	}
}

// JSONValue returns the value as it appears in a wire record: numbers stay
// numeric, times serialize as HH:MM:SS strings.
func (v Value) JSONValue() any {
	switch v.Kind {
	case KindNumber:
		return v.Num
	case KindTime:
		return v.Time.String()
	default:
		return v.Str
	}
}

var timeLayouts = []string{"15:04:05", "15:04", "3:04:05 PM", "3:04 PM"}

// ParseCell types a raw cell string. A blank cell is absent (ok false);
// numeric text becomes a number, recognizable clock text a time-of-day,
// anything else a trimmed string.
func ParseCell(raw string) (Value, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Value{}, false
	}

	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return NumberValue(n), true
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, strings.ToUpper(s)); err == nil {
			return TimeValue(TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}), true
		}
	}

	return StringValue(s), true
}
