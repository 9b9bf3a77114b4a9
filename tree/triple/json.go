package triple

import (
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"go.lepak.sg/dstruct/tree"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errTrailingJSON = errors.New("triple: unexpected data after description")

// FromJSON builds a tree from a JSON description.
// The input is read once, front to back.
// If data is not valid JSON, the decoder's error is returned.
// If it is valid JSON but not a description, the error wraps
// tree.ErrStructure.
func FromJSON[T any](data []byte) (*tree.Node[T], error) {
	iter := json.BorrowIterator(data)
	defer json.ReturnIterator(iter)

	n, err := readJSON[T](iter, "root")
	if err != nil {
		return nil, err
	}

	// only whitespace may follow, so the iterator must run into EOF
	iter.WhatIsNext()
	switch iter.Error {
	case io.EOF:
		return n, nil
	case nil:
		return nil, errTrailingJSON
	default:
		return nil, iter.Error
	}
}

func readJSON[T any](iter *jsoniter.Iterator, path string) (*tree.Node[T], error) {
	switch next := iter.WhatIsNext(); next {
	case jsoniter.NilValue:
		iter.ReadNil()
		if iter.Error != nil {
			return nil, iterError(iter)
		}
		return nil, nil
	case jsoniter.ArrayValue:
	case jsoniter.InvalidValue:
		if iter.Error == nil {
			iter.ReportError("FromJSON", "expect a value")
		}
		return nil, iterError(iter)
	default:
		return nil, fmt.Errorf("%w: %s: %s is not an array",
			tree.ErrStructure, path, jsonKind(next))
	}

	var (
		k    T
		l, r *tree.Node[T]
		err  error
	)

	count := 0
	for iter.ReadArray() {
		switch count {
		case 0:
			iter.ReadVal(&k)
			if iter.Error != nil {
				return nil, fmt.Errorf("%w: %s: key: %v", tree.ErrStructure, path, iterError(iter))
			}
		case 1:
			l, err = readJSON[T](iter, path+".L")
		case 2:
			r, err = readJSON[T](iter, path+".R")
		default:
			// only to report how many there were
			iter.Skip()
		}
		if err != nil {
			return nil, err
		}
		if iter.Error != nil {
			return nil, iterError(iter)
		}
		count++
	}

	// a well formed array ends on ']' without reaching EOF
	if iter.Error != nil {
		return nil, iterError(iter)
	}

	if count != 3 {
		return nil, fmt.Errorf("%w: %s: want 3 elements, got %d",
			tree.ErrStructure, path, count)
	}

	return tree.New(k, l, r), nil
}

// iterError returns the iterator's error. Running into EOF
// in the middle of a description means the input was cut short.
func iterError(iter *jsoniter.Iterator) error {
	if iter.Error == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return iter.Error
}

func jsonKind(vt jsoniter.ValueType) string {
	switch vt {
	case jsoniter.StringValue:
		return "string"
	case jsoniter.NumberValue:
		return "number"
	case jsoniter.BoolValue:
		return "bool"
	case jsoniter.ObjectValue:
		return "object"
	default:
		return "value"
	}
}
