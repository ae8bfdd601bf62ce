// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import "fmt"

// Path traverses a sequential path through the structure of a value starting
// at v, where path elements are either strings (denoting object keys) or
// integers (denoting offsets into arrays). If the path is valid, the element
// reached is returned. In case of error, the input v is returned along with
// the error.
//
// Negative array indices count backward from the end of the array (-1 is
// last, -2 second last, etc.).
func Path(v Value, path ...any) (Value, error) {
	cur := v
	for _, elt := range path {
		switch t := elt.(type) {
		case string:
			o, ok := cur.(Object)
			if !ok {
				return v, fmt.Errorf("cannot traverse %T with %q", cur, t)
			}
			m := o.Find(t)
			if m == nil {
				return v, fmt.Errorf("key %q not found", t)
			}
			cur = m.Value
		case int:
			a, ok := cur.(Array)
			if !ok {
				return v, fmt.Errorf("cannot traverse %T with %v", cur, t)
			}
			i, ok := fixArrayBound(len(a), t)
			if !ok {
				return v, fmt.Errorf("array index %d out of bounds (n=%d)", t, len(a))
			}
			cur = a[i]
		default:
			return v, fmt.Errorf("invalid path element %T", elt)
		}
	}
	return cur, nil
}

func fixArrayBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}

// ToAny converts v into a plain Go value: nil, bool, int64, float64, string,
// []any, or map[string]any. Key order is not preserved by the conversion.
func ToAny(v Value) any {
	switch t := v.(type) {
	case Object:
		m := make(map[string]any, len(t))
		for _, f := range t {
			m[f.Key] = ToAny(f.Value)
		}
		return m
	case Array:
		a := make([]any, len(t))
		for i, elt := range t {
			a[i] = ToAny(elt)
		}
		return a
	case String:
		return string(t)
	case Int:
		return int64(t)
	case Float:
		return float64(t)
	case Bool:
		return bool(t)
	case nil, nullValue:
		return nil
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}

// MustPath is as Path, but panics if the path cannot be resolved.
func MustPath(v Value, path ...any) Value {
	out, err := Path(v, path...)
	if err != nil {
		panic(fmt.Sprintf("path %v: %v", path, err))
	}
	return out
}

// A Builder accumulates the members of an Object. Assigning a key that was
// already set replaces its value in place. The zero value is ready for use.
type Builder struct {
	obj Object
	pos map[string]int
}

// indexThreshold is the member count above which a Builder indexes keys.
const indexThreshold = 16

// Set assigns v to key.
func (b *Builder) Set(key string, v Value) {
	if b.pos != nil {
		if i, ok := b.pos[key]; ok {
			b.obj[i].Value = v
			return
		}
		b.pos[key] = len(b.obj)
	} else if m := b.obj.Find(key); m != nil {
		m.Value = v
		return
	} else if len(b.obj) >= indexThreshold {
		b.pos = make(map[string]int, 2*len(b.obj))
		for i, m := range b.obj {
			b.pos[m.Key] = i
		}
		b.pos[key] = len(b.obj)
	}
	b.obj = append(b.obj, Field(key, v))
}

// Len reports the number of distinct keys assigned so far.
func (b *Builder) Len() int { return len(b.obj) }

// Object returns the object built so far. It is never nil.
func (b *Builder) Object() Object {
	if b.obj == nil {
		return Object{}
	}
	return b.obj
}
