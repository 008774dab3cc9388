package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Indent is the mapping indentation used when encoding documents. yaml.v3
// also indents block sequences by this amount under their parent key, so
// sequence items land at four spaces with the dash offset by two.
const Indent = 2

// Separator is written before every emitted document.
const Separator = "---"

const mergeTag = "!!merge"

// Presence describes whether an optional field exists in a document.
type Presence int

const (
	// Absent means the key is not present.
	Absent Presence = iota
	// Null means the key is present with a null value.
	Null
	// Present means the key is present with a non-null value.
	Present
)

func (p Presence) String() string {
	switch p {
	case Absent:
		return "absent"
	case Null:
		return "null"
	case Present:
		return "present"
	default:
		return fmt.Sprintf("Presence(%d)", int(p))
	}
}

// Field is the result of looking up an optional field.
type Field struct {
	Presence Presence

	// Node is the value node. It is nil when the field is absent.
	Node *yaml.Node
}

// IsMapping reports whether the field holds a mapping.
func (f Field) IsMapping() bool {
	return f.Presence == Present && f.Node.Kind == yaml.MappingNode
}

// Scalar returns the field's scalar value.
func (f Field) Scalar() (string, bool) {
	if f.Presence != Present || f.Node.Kind != yaml.ScalarNode {
		return "", false
	}
	return f.Node.Value, true
}

// Document is one parsed YAML document. It keeps the node tree so key
// order, quoting and comments survive re-encoding.
type Document struct {
	root *yaml.Node
}

// ParseDocument parses data that holds exactly one YAML document.
func ParseDocument(data []byte) (*Document, error) {
	docs, err := ParseDocuments(data)
	if err != nil {
		return nil, err
	}
	if len(docs) > 1 {
		return nil, fmt.Errorf("expected 1 document, found %d", len(docs))
	}
	return docs[0], nil
}

// ParseDocuments decodes every document in data, including documents closed
// with a "..." end marker instead of separated by "---". Data with no
// document at all yields a single empty Document.
func ParseDocuments(data []byte) ([]*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var docs []*Document
	for {
		var root yaml.Node
		err := dec.Decode(&root)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, &Document{root: &root})
	}

	if len(docs) == 0 {
		docs = append(docs, &Document{})
	}
	return docs, nil
}

// content returns the top-level value node, or nil for an empty stream.
func (d *Document) content() *yaml.Node {
	if d.root == nil || d.root.Kind == 0 {
		return nil
	}
	if d.root.Kind != yaml.DocumentNode {
		return resolve(d.root)
	}
	if len(d.root.Content) == 0 {
		return nil
	}
	return resolve(d.root.Content[0])
}

// IsEmpty reports whether the document holds no data: nothing at all,
// only comments, null, an empty string or an empty collection.
func (d *Document) IsEmpty() bool {
	node := d.content()
	if node == nil {
		return true
	}

	switch node.Kind {
	case yaml.ScalarNode:
		return isNull(node) || (node.Value == "" && node.ShortTag() == "!!str")
	case yaml.MappingNode, yaml.SequenceNode:
		return len(node.Content) == 0
	default:
		return false
	}
}

// Kind returns the top-level kind, or "" when it is absent or not a scalar.
func (d *Document) Kind() string {
	kind, _ := d.Lookup("kind").Scalar()
	return kind
}

// Lookup walks nested mappings by key. With no path it returns the
// top-level value. A path through a non-mapping value is Absent. Keys
// pulled in through "<<" merge keys are found as well, direct keys first.
func (d *Document) Lookup(path ...string) Field {
	node := d.content()
	if node == nil {
		return Field{Presence: Absent}
	}

	for _, key := range path {
		if node.Kind != yaml.MappingNode {
			return Field{Presence: Absent}
		}
		value := lookupKey(node, key)
		if value == nil {
			return Field{Presence: Absent}
		}
		node = resolve(value)
	}

	if isNull(node) {
		return Field{Presence: Null, Node: node}
	}
	return Field{Presence: Present, Node: node}
}

// Set assigns a string value to key inside the mapping at path. An existing
// value is replaced, a new key is appended after the existing ones. It
// returns false when path does not lead to a mapping.
//
// Only direct keys are replaced. A path that resolves through an alias or a
// merge key writes into the anchored mapping.
func (d *Document) Set(path []string, key, value string) bool {
	parent := d.Lookup(path...)
	if !parent.IsMapping() {
		return false
	}

	valueNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
	if i, _ := mappingEntry(parent.Node, key); i >= 0 {
		parent.Node.Content[i+1] = valueNode
		return true
	}

	parent.Node.Content = append(parent.Node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		valueNode,
	)
	return true
}

// Delete removes the last key of path from its parent mapping. It returns
// false when there was nothing to remove. Keys that only come from a merge
// key are left in their anchored mapping.
func (d *Document) Delete(path ...string) bool {
	if len(path) == 0 {
		return false
	}

	parent := d.Lookup(path[:len(path)-1]...)
	if !parent.IsMapping() {
		return false
	}

	i, _ := mappingEntry(parent.Node, path[len(path)-1])
	if i < 0 {
		return false
	}
	parent.Node.Content = append(parent.Node.Content[:i], parent.Node.Content[i+2:]...)
	return true
}

// Encode writes the document without a leading separator. Merge keys are
// written as a plain "<<".
func (d *Document) Encode(w io.Writer) error {
	untagMergeKeys(d.root)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(Indent)
	if err := enc.Encode(d.root); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}

// mappingEntry returns the index of key's key node inside a mapping's
// Content and its value node, or -1 and nil.
func mappingEntry(mapping *yaml.Node, key string) (int, *yaml.Node) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		k := mapping.Content[i]
		if k.Kind == yaml.ScalarNode && k.Value == key {
			return i, mapping.Content[i+1]
		}
	}
	return -1, nil
}

// lookupKey returns key's value in mapping. Direct keys win over merged
// ones, and earlier merge sources win over later ones.
func lookupKey(mapping *yaml.Node, key string) *yaml.Node {
	if _, value := mappingEntry(mapping, key); value != nil {
		return value
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if !isMergeKey(mapping.Content[i]) {
			continue
		}
		for _, source := range mergeSources(mapping.Content[i+1]) {
			if value := lookupKey(source, key); value != nil {
				return value
			}
		}
	}
	return nil
}

// mergeSources returns the mappings a merge key's value refers to: one
// mapping, or a sequence of them.
func mergeSources(value *yaml.Node) []*yaml.Node {
	value = resolve(value)
	switch value.Kind {
	case yaml.MappingNode:
		return []*yaml.Node{value}
	case yaml.SequenceNode:
		var sources []*yaml.Node
		for _, item := range value.Content {
			if item = resolve(item); item.Kind == yaml.MappingNode {
				sources = append(sources, item)
			}
		}
		return sources
	default:
		return nil
	}
}

func isMergeKey(key *yaml.Node) bool {
	return key.Kind == yaml.ScalarNode && key.Value == "<<" && (key.Tag == mergeTag || key.Tag == "")
}

// untagMergeKeys clears the explicit tag yaml.v3 keeps on parsed merge keys,
// which it would otherwise encode as "!!merge <<".
func untagMergeKeys(node *yaml.Node) {
	if node == nil {
		return
	}
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			if isMergeKey(node.Content[i]) {
				node.Content[i].Tag = ""
			}
		}
	}
	for _, child := range node.Content {
		untagMergeKeys(child)
	}
}

func resolve(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null"
}
