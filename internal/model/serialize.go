package model

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadStringTable loads a string-table file from the given path.
// The file is a flat YAML mapping of key to value; key order is preserved.
func LoadStringTable(path string) (*StringTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read string table %s: %w", path, err)
	}

	t, err := DecodeStringTable(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse string table %s: %w", path, err)
	}
	return t, nil
}

// DecodeStringTable parses string-table YAML. An empty document decodes to
// an empty table; a duplicated key keeps its first position with the last
// value.
func DecodeStringTable(data []byte) (*StringTable, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	t := NewStringTable()
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return t, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping at the top level, got %s", nodeKind(root))
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: keys and values must be scalars", key.Line)
		}
		t.Set(key.Value, value.Value)
	}

	return t, nil
}

// SaveStringTable writes a string table to the given path as canonical
// YAML: keys in table order, multi-line values in literal block style.
func SaveStringTable(path string, t *StringTable) error {
	data, err := yaml.Marshal(buildTableNode(t))
	if err != nil {
		return fmt.Errorf("failed to encode string table: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write string table %s: %w", path, err)
	}
	return nil
}

// buildTableNode creates a yaml.Node tree for a StringTable with proper
// formatting.
func buildTableNode(t *StringTable) *yaml.Node {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range t.Keys() {
		value, _ := t.Get(key)
		addValueField(doc, key, value)
	}
	return doc
}

// addValueField appends one key/value pair, using literal block scalar
// style for multi-line values.
func addValueField(node *yaml.Node, key, value string) {
	var style yaml.Style
	if strings.Contains(value, "\n") {
		style = yaml.LiteralStyle
	}
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: value, Style: style},
	)
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
