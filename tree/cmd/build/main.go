package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.lepak.sg/dstruct/tree"
	"go.lepak.sg/dstruct/tree/triple"
)

var (
	format  = flag.String("f", "json", "input format (json/yaml)")
	keyType = flag.String("t", "int", "key type (int/string)")
)

func main() {
	flag.Parse()

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		panic(err)
	}

	var s string
	switch *keyType {
	case "int":
		s, err = build[int](*format, data)
	case "string":
		s, err = build[string](*format, data)
	default:
		panic("not a valid key type")
	}
	if err != nil {
		panic(err)
	}

	fmt.Println("tree:")
	fmt.Print(s)
}

func build[T any](format string, data []byte) (string, error) {
	var impl func([]byte) (*tree.Node[T], error)
	switch format {
	case "json":
		impl = triple.FromJSON[T]
	case "yaml":
		impl = triple.FromYAML[T]
	default:
		return "", fmt.Errorf("not a valid format: %q", format)
	}

	tr, err := impl(data)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s(%d nodes)\n", tr, tr.Size()), nil
}
