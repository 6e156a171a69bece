package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// List is a JSON array of entries that is decoded one entry at a time.
// Unmarshalling only keeps the raw entries, so a malformed entry surfaces
// when a renderer reaches it and the entries before it are already placed.
//
// Placeholder entries carry a truthy "_instructions" marker; they exist to
// document the file format and are never rendered.
type List[T any] struct {
	raws    []json.RawMessage
	present bool
	err     error
}

// UnmarshalJSON keeps the raw entries. It never fails: a value that is not
// an array is reported by Each.
func (l *List[T]) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	*l = List[T]{}
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil
	}
	l.present = true
	if trimmed[0] != '[' {
		l.err = fmt.Errorf("%w: expected an array, got %.20s", ErrDecode, trimmed)
		return nil
	}
	if err := json.Unmarshal(trimmed, &l.raws); err != nil {
		l.err = fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

// Present reports whether the document carried a non-null value.
func (l List[T]) Present() bool { return l.present }

// Each decodes the non-placeholder entries in document order and calls fn
// with each one and its index in the array. It stops at the first entry
// that does not decode or for which fn returns an error.
func (l List[T]) Each(fn func(i int, v T) error) error {
	if l.err != nil {
		return l.err
	}
	for i, raw := range l.raws {
		if isPlaceholder(raw) {
			continue
		}
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("%w: entry %d: %v", ErrDecode, i, err)
		}
		if err := fn(i, v); err != nil {
			return err
		}
	}
	return nil
}

// Visible decodes every non-placeholder entry.
func (l List[T]) Visible() ([]T, error) {
	out := make([]T, 0, len(l.raws))
	err := l.Each(func(_ int, v T) error {
		out = append(out, v)
		return nil
	})
	return out, err
}

// Object is a nested JSON object decoded when it is rendered.
type Object[T any] struct {
	raw json.RawMessage
}

// UnmarshalJSON keeps the raw value.
func (o *Object[T]) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		o.raw = nil
		return nil
	}
	o.raw = append(json.RawMessage(nil), trimmed...)
	return nil
}

// Present reports whether the document carried a non-null value.
func (o Object[T]) Present() bool { return o.raw != nil }

// Get decodes the object. An absent object decodes to the zero value.
func (o Object[T]) Get() (T, error) {
	var v T
	if o.raw == nil {
		return v, nil
	}
	if err := json.Unmarshal(o.raw, &v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return v, nil
}

// decodeSequence accepts both document shapes used by the list sections:
// a bare array of entries, or an object that wraps the array under key next
// to an optional sectionTitle. An object without a truthy key is treated as
// a single entry, and a non-array value under key is wrapped into a
// one-element sequence.
func decodeSequence[T any](b []byte, key string) (title *Text, items List[T], err error) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 {
		return nil, items, fmt.Errorf("empty document")
	}

	var raws []json.RawMessage
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &raws); err != nil {
			return nil, items, err
		}
	case '{':
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return nil, items, err
		}
		if st, ok := wrapper["sectionTitle"]; ok && truthy(st) {
			var s Text
			if err := json.Unmarshal(st, &s); err == nil {
				title = &s
			}
		}
		inner, ok := wrapper[key]
		switch {
		case ok && truthy(inner) && bytes.TrimSpace(inner)[0] == '[':
			if err := json.Unmarshal(inner, &raws); err != nil {
				return nil, items, fmt.Errorf("%s: %w", key, err)
			}
		case ok && truthy(inner):
			raws = []json.RawMessage{inner}
		default:
			raws = []json.RawMessage{json.RawMessage(trimmed)}
		}
	default:
		return nil, items, fmt.Errorf("expected an array or object, got %.20s", trimmed)
	}

	return title, List[T]{raws: raws, present: true}, nil
}

// isPlaceholder reports whether raw is an object with a truthy _instructions field.
func isPlaceholder(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	var marker struct {
		Instructions json.RawMessage `json:"_instructions"`
	}
	if err := json.Unmarshal(trimmed, &marker); err != nil {
		return false
	}
	return truthy(marker.Instructions)
}

// truthy applies JavaScript truthiness to a raw JSON value: null, false, 0,
// "" and absent values are falsy; objects and arrays are always truthy.
func truthy(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}
	switch trimmed[0] {
	case 'n', 'f':
		return false
	case 't', '{', '[':
		return true
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return false
		}
		return s != ""
	default:
		n, err := strconv.ParseFloat(string(trimmed), 64)
		return err == nil && n != 0
	}
}

// Text is a text field that accepts any JSON value and holds what a browser
// would show for it: strings as written, numbers and booleans as their
// literal, arrays as their elements joined with ",", objects as
// "[object Object]" and null as "".
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(b []byte) error {
	s, err := textOf(bytes.TrimSpace(b))
	if err != nil {
		return err
	}
	*t = Text(s)
	return nil
}

func textOf(b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}
	switch b[0] {
	case 'n':
		return "", nil
	case '"':
		var s string
		err := json.Unmarshal(b, &s)
		return s, err
	case '{':
		return "[object Object]", nil
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(b, &elems); err != nil {
			return "", err
		}
		parts := make([]string, len(elems))
		for i, e := range elems {
			s, err := textOf(bytes.TrimSpace(e))
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return strings.Join(parts, ","), nil
	default:
		return string(b), nil
	}
}

// String returns the text value.
func (t Text) String() string { return string(t) }

// Flag is a boolean field that follows JavaScript truthiness, so "yes" and
// 1 are true while "" and 0 are false.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(b []byte) error {
	*f = Flag(truthy(b))
	return nil
}
