// Package config loads definition files. A file is a YAML mapping from
// names to expression text; nested mappings become dotted names. Document
// order is preserved, which fixes evaluation order and, under a fixed
// seed, the whole random sequence.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/rangen/pkg/rangen"
)

// valuesKey optionally wraps the definitions so files can carry other
// top-level sections later.
const valuesKey = "values"

// LoadFile reads definitions from a YAML file.
func LoadFile(path string) ([]rangen.Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	defs, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}

// Load reads definitions from YAML.
func Load(r io.Reader) ([]rangen.Definition, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) != 1 {
			return nil, fmt.Errorf("expected a single YAML document")
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("definitions must be a mapping, line %d", root.Line)
	}
	if inner := mappingValue(root, valuesKey); inner != nil {
		root = inner
	}

	var defs []rangen.Definition
	if err := flatten(root, "", &defs); err != nil {
		return nil, err
	}
	return defs, nil
}

// mappingValue returns the value node for key when the mapping has it and
// it is itself a mapping.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key && node.Content[i+1].Kind == yaml.MappingNode {
			return node.Content[i+1]
		}
	}
	return nil
}

func flatten(node *yaml.Node, prefix string, defs *[]rangen.Definition) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		name := keyNode.Value
		if prefix != "" {
			name = prefix + "." + name
		}
		switch valNode.Kind {
		case yaml.ScalarNode:
			*defs = append(*defs, rangen.Definition{Name: name, Expr: valNode.Value})
		case yaml.MappingNode:
			if err := flatten(valNode, name, defs); err != nil {
				return err
			}
		default:
			return fmt.Errorf("definition %q must be text or a mapping, line %d", name, valNode.Line)
		}
	}
	return nil
}
