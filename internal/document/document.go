package document

import (
	"fmt"
	"sort"
)

// Number is a numeric scalar kept in its textual form.
type Number string

// List is a sequence of document values.
type List []any

// Entry is a single key/value pair of an Object.
type Entry struct {
	Key   string
	Value any
}

// Object is an ordered string-keyed mapping. Keys are unique.
type Object struct {
	entries []Entry
	index   map[string]int
}

// NewObject creates an Object from entries in the given order.
// It fails with ErrDuplicateKey if a key repeats.
func NewObject(entries ...Entry) (*Object, error) {
	o := &Object{}
	for _, e := range entries {
		if err := o.add(e.Key, e.Value); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// MustObject is like NewObject but panics on duplicate keys.
// Intended for tests and static fixtures.
func MustObject(entries ...Entry) *Object {
	o, err := NewObject(entries...)
	if err != nil {
		panic(err)
	}

	return o
}

func (o *Object) add(key string, value any) error {
	if o.index == nil {
		o.index = make(map[string]int)
	}

	if _, ok := o.index[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}

	o.index[key] = len(o.entries)
	o.entries = append(o.entries, Entry{Key: key, Value: value})

	return nil
}

// Len returns the number of entries.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}

	return len(o.entries)
}

// Entries returns a copy of the entries in declaration order.
func (o *Object) Entries() []Entry {
	if o == nil {
		return nil
	}

	return append([]Entry(nil), o.entries...)
}

// Keys returns the keys in declaration order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.Len())
	for _, e := range o.Entries() {
		keys = append(keys, e.Key)
	}

	return keys
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}

	i, ok := o.index[key]
	if !ok {
		return nil, false
	}

	return o.entries[i].Value, true
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Object returns the value under key if it is an object.
func (o *Object) Object(key string) (*Object, bool) {
	v, ok := o.Get(key)
	if !ok {
		return nil, false
	}

	obj, ok := v.(*Object)

	return obj, ok
}

// String returns the value under key if it is a string.
func (o *Object) String(key string) (string, bool) {
	v, ok := o.Get(key)
	if !ok {
		return "", false
	}

	s, ok := v.(string)

	return s, ok
}

// FromMap converts a plain Go map into an Object. Go maps carry no order, so
// keys are sorted to keep the result deterministic. Nested maps and slices
// are converted recursively; other values are kept as they are.
func FromMap(m map[string]any) *Object {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	o := &Object{}
	for _, k := range keys {
		_ = o.add(k, fromAny(m[k]))
	}

	return o
}

func fromAny(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return FromMap(t)
	case []any:
		list := make(List, 0, len(t))
		for _, item := range t {
			list = append(list, fromAny(item))
		}

		return list
	default:
		return v
	}
}
