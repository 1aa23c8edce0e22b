package lang

import "iter"

// ValueKind indicates the variant held by a Value.
type ValueKind int

const (
	// KindNumber is a double-precision numeric value.
	KindNumber ValueKind = iota

	// KindObject is an ordered mapping of keys to values.
	KindObject
)

// String returns a string representation of the value kind.
func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// Value is a single value of the language: a number or an ordered object.
// Exactly one of the variant fields is meaningful for a given Kind.
type Value struct {
	Object *Object
	Number float64
	Kind   ValueKind
}

// NumberValue creates a numeric value.
func NumberValue(f float64) Value {
	return Value{Kind: KindNumber, Number: f}
}

// ObjectValue creates an object value.
func ObjectValue(o *Object) Value {
	return Value{Kind: KindObject, Object: o}
}

// Equal reports whether two values are recursively equal.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}

	if v.Kind == KindNumber {
		return v.Number == other.Number
	}

	return v.Object.Equal(other.Object)
}

// Object is an insertion-ordered mapping from string keys to values.
//
// Overwriting an existing key replaces its value in place: iteration order
// keeps the position of the key's first assignment. This is a deliberate
// contract of the language, not an implementation detail.
type Object struct {
	index map[string]int
	keys  []string
	vals  []Value
}

// NewObject creates an empty ordered object.
func NewObject() *Object {
	return &Object{
		index: make(map[string]int),
	}
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.keys)
}

// Set assigns val to key. A new key is appended at the end of the iteration
// order; an existing key keeps its original position.
func (o *Object) Set(key string, val Value) {
	if i, ok := o.index[key]; ok {
		o.vals[i] = val

		return
	}

	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, val)
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	i, ok := o.index[key]
	if !ok {
		return Value{}, false
	}

	return o.vals[i], true
}

// Keys returns the keys in iteration order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)

	return keys
}

// Pairs returns an iterator over key-value pairs in insertion order.
func (o *Object) Pairs() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for i, key := range o.keys {
			if !yield(key, o.vals[i]) {
				return
			}
		}
	}
}

// Equal reports whether two objects hold the same keys in the same order
// with recursively equal values.
func (o *Object) Equal(other *Object) bool {
	if o == nil || other == nil {
		return o == other
	}

	if len(o.keys) != len(other.keys) {
		return false
	}

	for i, key := range o.keys {
		if other.keys[i] != key {
			return false
		}

		if !o.vals[i].Equal(other.vals[i]) {
			return false
		}
	}

	return true
}
