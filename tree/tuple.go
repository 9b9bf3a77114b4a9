package tree

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrStructure is returned when a description can't be turned into a tree,
// for example because a node doesn't have exactly 3 elements.
// Errors from the builders wrap it, so check with errors.Is.
var ErrStructure = errors.New("malformed tree description")

// Triple is a typed alternative to []any{key, left, right}
// for writing descriptions by hand.
// Left and Right are descriptions themselves (nil, a Triple,
// a *Triple or a 3 element slice).
type Triple struct {
	Key         any
	Left, Right any
}

var tripleType = reflect.TypeOf(Triple{})

// FromTuple builds a tree from a nested description.
// A description is either empty or a sequence of 3 elements
// (key, left, right), where left and right are descriptions too:
//
//	nil                          -> empty tree
//	[]any{1, nil, nil}           -> Leaf(1)
//	[]any{2, []any{1, nil, nil}, nil}
//	                             -> New(2, Leaf(1), nil)
//
// Any slice or array works as a sequence, and so does Triple.
// Descriptions may be behind interfaces or pointers; nil ones are empty.
// This is the format produced by ToTuple, and also what you get from
// decoding a JSON array like [1, null, null] into an any.
//
// Each key must be assignable to T. Numbers may also be converted
// to a numeric T as long as the value survives the round trip
// and keeps its sign, so 3.0 is accepted for an int key but 3.5 isn't,
// and -1 is never accepted for a uint key.
//
// The arity of each node is checked before its children are built.
// If anything is wrong, FromTuple returns an error wrapping ErrStructure
// and no tree at all.
func FromTuple[T any](desc any) (*Node[T], error) {
	return fromTuple[T](reflect.ValueOf(desc), "root")
}

func fromTuple[T any](rv reflect.Value, path string) (*Node[T], error) {
	for rv.IsValid() {
		kind := rv.Kind()
		if kind != reflect.Interface && kind != reflect.Pointer {
			break
		}
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}

	if !rv.IsValid() {
		// untyped nil
		return nil, nil
	}

	var key, left, right reflect.Value

	switch {
	case rv.Type() == tripleType:
		t := rv.Interface().(Triple)
		key, left, right = reflect.ValueOf(t.Key), reflect.ValueOf(t.Left), reflect.ValueOf(t.Right)
	case rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil, nil
		}
		if rv.Len() != 3 {
			return nil, fmt.Errorf("%w: %s: want 3 elements, got %d",
				ErrStructure, path, rv.Len())
		}
		key, left, right = rv.Index(0), rv.Index(1), rv.Index(2)
	default:
		return nil, fmt.Errorf("%w: %s: %s is not a sequence",
			ErrStructure, path, rv.Type())
	}

	k, err := keyOf[T](key, path)
	if err != nil {
		return nil, err
	}

	l, err := fromTuple[T](left, path+".L")
	if err != nil {
		return nil, err
	}

	r, err := fromTuple[T](right, path+".R")
	if err != nil {
		return nil, err
	}

	return New(k, l, r), nil
}

func keyOf[T any](rv reflect.Value, path string) (k T, err error) {
	want := reflect.TypeOf(&k).Elem()

	if rv.IsValid() && rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			rv = reflect.Value{}
		} else {
			rv = rv.Elem()
		}
	}

	if !rv.IsValid() {
		// A nil key is fine if T has a nil.
		switch want.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map,
			reflect.Slice, reflect.Chan, reflect.Func:
			return k, nil
		default:
			return k, fmt.Errorf("%w: %s: nil key for %s", ErrStructure, path, want)
		}
	}

	out := reflect.ValueOf(&k).Elem()

	if rv.Type().AssignableTo(want) {
		out.Set(rv)
		return k, nil
	}

	if isNumber(rv.Kind()) && isNumber(want.Kind()) {
		conv := rv.Convert(want)
		// must survive the trip back unchanged, eg. no 3.5 -> 3,
		// and keep its sign, since -1 -> uint -> int also survives
		if conv.Convert(rv.Type()).Interface() == rv.Interface() &&
			isNegative(conv) == isNegative(rv) {
			out.Set(conv)
			return k, nil
		}
	}

	return k, fmt.Errorf("%w: %s: key %v (%s) is not a %s",
		ErrStructure, path, rv, rv.Type(), want)
}

func isNegative(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() < 0
	case reflect.Float32, reflect.Float64:
		return v.Float() < 0
	default:
		return false
	}
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// ToTuple turns a tree back into a description that FromTuple accepts.
// The empty tree becomes nil and every node becomes []any{key, left, right}.
func ToTuple[T any](n *Node[T]) any {
	if n == nil {
		return nil
	}

	return []any{n.Key, ToTuple(n.Left), ToTuple(n.Right)}
}
