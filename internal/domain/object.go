package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// rawObject is a JSON object as it was read. Encoding a document back goes
// through it so that key order, keys the model does not know and the exact
// bytes of unedited fields survive a load/save cycle.
type rawObject struct {
	keys   []string
	values map[string]json.RawMessage
	// decoded holds each known field as encoded right after decoding. A nil
	// entry means the field was omitted.
	decoded map[string][]byte
}

// field is one known key of a document object with its current value.
type field struct {
	key   string
	value any
	omit  bool
}

func (f field) encode() ([]byte, error) {
	if f.omit {
		return nil, nil
	}
	return json.Marshal(f.value)
}

func decodeObject(data []byte) (*rawObject, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected a JSON object, got %s", data)
	}

	obj := &rawObject{values: map[string]json.RawMessage{}}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		if _, dup := obj.values[key]; !dup {
			obj.keys = append(obj.keys, key)
		}
		obj.values[key] = raw
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

// snapshot records the known fields as decoded.
func (o *rawObject) snapshot(fields []field) error {
	o.decoded = make(map[string][]byte, len(fields))
	for _, f := range fields {
		b, err := f.encode()
		if err != nil {
			return err
		}
		o.decoded[f.key] = b
	}
	return nil
}

// encodeObject writes the original keys in their original order, then known
// fields that were not present and have since been set. A known field that
// still encodes the way it did after decoding is written with its original
// bytes.
func encodeObject(o *rawObject, fields []field) ([]byte, error) {
	current := make(map[string][]byte, len(fields))
	for _, f := range fields {
		b, err := f.encode()
		if err != nil {
			return nil, err
		}
		current[f.key] = b
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	n := 0
	write := func(key string, val []byte) {
		if n > 0 {
			buf.WriteByte(',')
		}
		k, _ := json.Marshal(key)
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(val)
		n++
	}

	seen := map[string]bool{}
	if o != nil {
		for _, key := range o.keys {
			seen[key] = true
			cur, known := current[key]
			switch {
			case !known:
				write(key, o.values[key])
			case o.decoded != nil && bytes.Equal(cur, o.decoded[key]):
				write(key, o.values[key])
			case cur != nil:
				write(key, cur)
			}
		}
	}
	for _, f := range fields {
		if seen[f.key] {
			continue
		}
		cur := current[f.key]
		if cur == nil {
			continue
		}
		if o != nil && o.decoded != nil && bytes.Equal(cur, o.decoded[f.key]) {
			continue
		}
		write(f.key, cur)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Lenient readers. A value of the wrong type reads as the zero value; its
// original bytes are still written back as long as the field is not edited.

func (o *rawObject) text(key string) string {
	raw := o.values[key]
	switch jsonKind(raw) {
	case '"':
		var s string
		if json.Unmarshal(raw, &s) == nil {
			return s
		}
	case 't', 'f', '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return string(bytes.TrimSpace(raw))
	}
	return ""
}

func (o *rawObject) textPtr(key string) *string {
	if k := jsonKind(o.values[key]); k == 0 || k == 'n' {
		return nil
	}
	s := o.text(key)
	return &s
}

// boolean is true only for a JSON true.
func (o *rawObject) boolean(key string) bool {
	return jsonKind(o.values[key]) == 't'
}

// flag reads a tri-state flag: only JSON booleans count, anything else is unset.
func (o *rawObject) flag(key string) *bool {
	switch jsonKind(o.values[key]) {
	case 't':
		return Ptr(true)
	case 'f':
		return Ptr(false)
	}
	return nil
}

// number reads a JSON number or a string holding a finite number.
func (o *rawObject) number(key string) (float64, bool) {
	raw := o.values[key]
	switch jsonKind(raw) {
	case '"':
		var s string
		if json.Unmarshal(raw, &s) != nil {
			return 0, false
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case 0, 'n', 't', 'f', '{', '[':
		return 0, false
	}
	var n float64
	if json.Unmarshal(raw, &n) != nil {
		return 0, false
	}
	return n, true
}

func (o *rawObject) stringList(key string) []string {
	var items []json.RawMessage
	if jsonKind(o.values[key]) != '[' || json.Unmarshal(o.values[key], &items) != nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if json.Unmarshal(item, &s) == nil {
			out = append(out, s)
		}
	}
	return out
}

func (o *rawObject) raw(key string) json.RawMessage {
	if raw, ok := o.values[key]; ok {
		return append(json.RawMessage(nil), raw...)
	}
	return nil
}

// decodeEntries reads an array of objects. Entries that are not objects are
// skipped, and a value that is not an array reads as no entries.
func decodeEntries[T any, P interface {
	*T
	json.Unmarshaler
}](raw json.RawMessage) ([]*T, error) {
	if jsonKind(raw) != '[' {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	out := make([]*T, 0, len(items))
	for _, item := range items {
		if jsonKind(item) != '{' {
			continue
		}
		entry := new(T)
		if err := P(entry).UnmarshalJSON(item); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

// objectOrNil decodes raw into a new T when it is a JSON object.
func objectOrNil[T any, P interface {
	*T
	json.Unmarshaler
}](raw json.RawMessage) (*T, error) {
	if jsonKind(raw) != '{' {
		return nil, nil
	}
	entry := new(T)
	if err := P(entry).UnmarshalJSON(raw); err != nil {
		return nil, err
	}
	return entry, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// jsonKind returns the first significant byte of a JSON value, or 0 when raw
// is empty.
func jsonKind(raw []byte) byte {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0
	}
	return raw[0]
}
