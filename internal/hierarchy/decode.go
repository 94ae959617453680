package hierarchy

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidHierarchy is returned when a hierarchy document has no object root.
var ErrInvalidHierarchy = errors.New("invalid hierarchy")

// DecodeJSON reads a hierarchy from a JSON object, keeping key order.
// Children that are not objects, and empty objects, become leaves.
func DecodeJSON(r io.Reader) (*Branch, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read hierarchy: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: root must be a JSON object", ErrInvalidHierarchy)
	}

	tree, err := decodeObject(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to decode hierarchy: %w", err)
	}
	return tree, nil
}

func decodeObject(dec *json.Decoder) (*Branch, error) {
	b := &Branch{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected key %v", ErrInvalidHierarchy, tok)
		}

		node, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		b.set(key, node)
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return b, nil
}

func decodeValue(dec *json.Decoder) (Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return Leaf{}, nil
	}

	switch delim {
	case '{':
		child, err := decodeObject(dec)
		if err != nil {
			return nil, err
		}
		if child.Len() == 0 {
			return Leaf{}, nil
		}
		return child, nil
	case '[':
		for dec.More() {
			if _, err := decodeValue(dec); err != nil {
				return nil, err
			}
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return Leaf{}, nil
	default:
		return nil, fmt.Errorf("%w: unexpected delimiter %v", ErrInvalidHierarchy, delim)
	}
}

// DecodeYAML reads a hierarchy from a YAML mapping, keeping key order.
func DecodeYAML(r io.Reader) (*Branch, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode hierarchy: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: root must be a YAML mapping", ErrInvalidHierarchy)
	}

	return yamlBranch(root), nil
}

func yamlBranch(n *yaml.Node) *Branch {
	b := &Branch{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]

		var node Node = Leaf{}
		if value.Kind == yaml.MappingNode && len(value.Content) > 0 {
			node = yamlBranch(value)
		}
		b.set(key.Value, node)
	}
	return b
}

// ParseMarkdown builds a hierarchy from an indented outline, two spaces per
// level. Leading list markers ("- ", "* ", "+ ") are ignored.
func ParseMarkdown(text string) *Branch {
	root := &Branch{}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		level := indent / 2
		name := strings.TrimSpace(line)
		for _, marker := range []string{"- ", "* ", "+ "} {
			name = strings.TrimPrefix(name, marker)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		current := root
		for i := 0; i < level && len(current.Entries) > 0; i++ {
			last := &current.Entries[len(current.Entries)-1]
			child := asBranch(last.Node)
			if child == nil {
				child = &Branch{}
				last.Node = child
			}
			current = child
		}
		current.set(name, &Branch{})
	}

	normalize(root)
	return root
}

// normalize turns empty branches into leaves.
func normalize(b *Branch) {
	for i := range b.Entries {
		child := asBranch(b.Entries[i].Node)
		if child == nil || child.Len() == 0 {
			b.Entries[i].Node = Leaf{}
			continue
		}
		normalize(child)
	}
}

// DecodeFile reads a hierarchy file, choosing the format from its extension:
// .json, .yaml/.yml, or .md/.txt outlines.
func DecodeFile(path string) (*Branch, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from user configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read hierarchy file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DecodeJSON(bytes.NewReader(data))
	case ".yaml", ".yml":
		return DecodeYAML(bytes.NewReader(data))
	case ".md", ".txt":
		return ParseMarkdown(string(data)), nil
	default:
		return nil, fmt.Errorf("%w: unsupported hierarchy file %s", ErrInvalidHierarchy, path)
	}
}

// MarshalJSON encodes the branch as a JSON object in insertion order.
// Leaves are written as empty objects.
func (b *Branch) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (b *Branch) writeJSON(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	if b != nil {
		for i, e := range b.Entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(e.Name)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')

			if child := asBranch(e.Node); child != nil {
				if err := child.writeJSON(buf); err != nil {
					return err
				}
			} else {
				buf.WriteString("{}")
			}
		}
	}
	buf.WriteByte('}')
	return nil
}

// UnmarshalJSON decodes an order-preserving hierarchy.
func (b *Branch) UnmarshalJSON(data []byte) error {
	tree, err := DecodeJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*b = *tree
	return nil
}
