package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValueKind tags the shape stored in a Value.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindNumber
	KindBool
	KindText
	KindList
	KindObject
)

func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	default:
		return "null"
	}
}

// Value is the content of an attribute: a scalar, a string, a list of strings
// or a JSON object kept as its compact text. The zero Value is null.
type Value struct {
	kind ValueKind
	num  float64
	b    bool
	text string
	list []string
}

func Null() Value                { return Value{} }
func Number(n float64) Value     { return Value{kind: KindNumber, num: n} }
func Bool(b bool) Value          { return Value{kind: KindBool, b: b} }
func Text(s string) Value        { return Value{kind: KindText, text: s} }
func List(items ...string) Value { return Value{kind: KindList, list: append([]string(nil), items...)} }

func (v Value) Kind() ValueKind { return v.kind }

// Items returns a copy of the list items, or nil for non-list values.
func (v Value) Items() []string {
	if v.kind != KindList {
		return nil
	}
	return append([]string(nil), v.list...)
}

// IsEmpty reports whether the value is skipped during compilation.
// The number 0 is deliberately not empty.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return !v.b
	case KindText:
		return v.text == ""
	case KindList:
		return len(v.list) == 0
	case KindNumber:
		return math.IsNaN(v.num)
	case KindObject:
		return false
	}
	return true
}

// Join renders the value as text, joining list items with sep.
func (v Value) Join(sep string) string {
	switch v.kind {
	case KindNumber:
		return FormatNumber(v.num)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindText, KindObject:
		return v.text
	case KindList:
		return strings.Join(v.list, sep)
	}
	return ""
}

// String renders lists comma-joined with ", ".
func (v Value) String() string {
	return v.Join(", ")
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return nil, fmt.Errorf("value %v is not representable in JSON", v.num)
		}
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	case KindText:
		return json.Marshal(v.text)
	case KindList:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	case KindObject:
		return []byte(v.text), nil
	}
	return []byte("null"), nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = Null()
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Text(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = Bool(b)
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		items := make([]string, 0, len(raw))
		for _, r := range raw {
			var item Value
			if err := item.UnmarshalJSON(r); err != nil {
				return err
			}
			items = append(items, item.Join(","))
		}
		*v = Value{kind: KindList, list: items}
	case '{':
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		*v = Value{kind: KindObject, text: buf.String()}
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("invalid attribute value %s: %w", data, err)
		}
		*v = Number(n)
	}
	return nil
}

// FormatNumber prints n the way the image service expects to read it:
// integers without a fraction, decimals in shortest form.
func FormatNumber(n float64) string {
	if math.IsInf(n, 1) {
		return "Infinity"
	}
	if math.IsInf(n, -1) {
		return "-Infinity"
	}
	if math.IsNaN(n) {
		return "NaN"
	}
	abs := math.Abs(n)
	if abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		s := strconv.FormatFloat(n, 'e', -1, 64)
		// Go prints 1e+21 / 1e-07; the exponent must not be zero padded.
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
