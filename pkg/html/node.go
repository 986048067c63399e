// Package html converts element node trees into serialized, escaped HTML.
//
// A tree is built either from Node values constructed in Go code or from
// data-driven map form (one key per node, the key being the tag name), the
// shape pages arrive in when they are described as JSON or YAML. Rendering
// is a pure function over the tree: no identity, no lifecycle, each call
// produces a fresh string.
package html

import (
	"fmt"
	"sort"
)

// Node is a single element in a markup tree.
type Node struct {
	Tag   string
	Props Props
}

// Props holds the content and attributes of a Node.
//
// Children takes precedence over Text when both are set. Children entries
// may be Node, *Node, strings, numbers, booleans, nil, or nested []any
// slices, which are flattened during rendering.
type Props struct {
	Text     string
	Children []any
	Attrs    []Attr
}

// Attr is a single element attribute. Value semantics follow HTML
// conventions: a string renders as key="value", boolean true renders the
// bare attribute name, and false or nil omits the attribute entirely.
// Numbers render as quoted decimal strings.
type Attr struct {
	Key   string
	Value any
}

// El constructs a Node with the given attributes and children.
func El(tag string, attrs []Attr, children ...any) Node {
	return Node{Tag: tag, Props: Props{Attrs: attrs, Children: children}}
}

// Text constructs a Node containing only text content.
func Text(tag, text string) Node {
	return Node{Tag: tag, Props: Props{Text: text}}
}

// A few attribute helpers for hand-built trees.

// A constructs a string attribute.
func A(key, value string) Attr { return Attr{Key: key, Value: value} }

// Flag constructs a boolean attribute.
func Flag(key string) Attr { return Attr{Key: key, Value: true} }

// RawHTML is pre-rendered markup inserted into the tree without escaping.
// The caller vouches for its safety; everything else goes through the
// escapers.
type RawHTML string

// Raw wraps already-safe HTML for insertion as a child.
func Raw(s string) RawHTML { return RawHTML(s) }

// FromMap converts the data-driven node form into a Node.
//
// The map must have exactly one key, the tag name. Its value is either a
// string (shorthand for text content) or a property map whose "text" and
// "children" keys carry content and whose remaining keys become attributes.
// Attribute order is normalized by sorting keys so output is deterministic.
func FromMap(m map[string]any) (Node, error) {
	if len(m) != 1 {
		return Node{}, &MalformedNodeError{KeyCount: len(m), Keys: mapKeys(m)}
	}

	var node Node
	for tag, value := range m {
		node.Tag = tag

		switch v := value.(type) {
		case nil:
			// <tag></tag> with no content
		case string:
			node.Props.Text = v
		case map[string]any:
			props, err := propsFromMap(v)
			if err != nil {
				return Node{}, err
			}
			node.Props = props
		default:
			return Node{}, fmt.Errorf("node %q: unsupported property value of type %T", tag, value)
		}
	}

	return node, nil
}

func propsFromMap(m map[string]any) (Props, error) {
	var props Props

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := m[k]
		switch k {
		case "text":
			props.Text = scalarText(v)
		case "children":
			children, err := childrenFromValue(v)
			if err != nil {
				return Props{}, err
			}
			props.Children = children
		default:
			props.Attrs = append(props.Attrs, Attr{Key: k, Value: v})
		}
	}

	return props, nil
}

// childrenFromValue accepts a single child or a slice of children, converting
// any nested single-key maps into Nodes eagerly so malformed shapes surface
// at construction time rather than mid-render.
func childrenFromValue(v any) ([]any, error) {
	values, ok := v.([]any)
	if !ok {
		values = []any{v}
	}

	children := make([]any, 0, len(values))
	for _, child := range values {
		switch c := child.(type) {
		case map[string]any:
			node, err := FromMap(c)
			if err != nil {
				return nil, err
			}
			children = append(children, node)
		case []any:
			nested, err := childrenFromValue(c)
			if err != nil {
				return nil, err
			}
			children = append(children, nested)
		default:
			children = append(children, child)
		}
	}

	return children, nil
}

func scalarText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return fmt.Sprintf("%t", t)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

func mapKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
