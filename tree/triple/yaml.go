package triple

import (
	"fmt"

	"go.lepak.sg/dstruct/tree"
	"gopkg.in/yaml.v3"
)

const yamlNullTag = "!!null"

// FromYAML builds a tree from a YAML description.
// Both flow style ([2, [1, ~, ~], ~]) and block style sequences work,
// and so do anchors and aliases.
// An empty document is the empty tree.
// If data is not valid YAML, the decoder's error is returned.
// If it is valid YAML but not a description, the error wraps
// tree.ErrStructure.
func FromYAML[T any](data []byte) (*tree.Node[T], error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	return fromYAML[T](doc.Content[0], "root")
}

func fromYAML[T any](n *yaml.Node, path string) (*tree.Node[T], error) {
	for n.Kind == yaml.AliasNode {
		n = n.Alias
	}

	switch n.Kind {
	case yaml.ScalarNode:
		if n.ShortTag() == yamlNullTag {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s: %s is not a sequence (line %d)",
			tree.ErrStructure, path, n.ShortTag(), n.Line)
	case yaml.SequenceNode:
	default:
		return nil, fmt.Errorf("%w: %s: not a sequence (line %d)",
			tree.ErrStructure, path, n.Line)
	}

	if len(n.Content) != 3 {
		return nil, fmt.Errorf("%w: %s: want 3 elements, got %d (line %d)",
			tree.ErrStructure, path, len(n.Content), n.Line)
	}

	var k T
	if err := n.Content[0].Decode(&k); err != nil {
		return nil, fmt.Errorf("%w: %s: key: %v", tree.ErrStructure, path, err)
	}

	l, err := fromYAML[T](n.Content[1], path+".L")
	if err != nil {
		return nil, err
	}

	r, err := fromYAML[T](n.Content[2], path+".R")
	if err != nil {
		return nil, err
	}

	return tree.New(k, l, r), nil
}
