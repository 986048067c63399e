package html

import (
	"fmt"
	"strconv"
	"strings"
)

// voidElements are emitted without a closing tag regardless of content.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// IsVoidElement reports whether tag is an HTML void element.
func IsVoidElement(tag string) bool { return voidElements[strings.ToLower(tag)] }

// Render serializes a node tree to an HTML string.
//
// The value may be a Node, *Node, a map-form node, a string, number, or
// boolean (rendered as escaped text), a slice (rendered as the concatenation
// of its elements, enabling fragments), or nil/false (rendered as "", which
// supports conditional children). The only error conditions are malformed
// map nodes and values of unsupported type.
func Render(value any) (string, error) {
	var sb strings.Builder
	if err := renderValue(&sb, value); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func renderValue(sb *strings.Builder, value any) error {
	switch v := value.(type) {
	case nil:
		return nil
	case bool:
		// false is the dropped branch of a conditional child; true still
		// renders as text, matching scalar child semantics.
		if v {
			sb.WriteString("true")
		}
		return nil
	case string:
		sb.WriteString(EscapeText(v))
		return nil
	case RawHTML:
		sb.WriteString(string(v))
		return nil
	case Node:
		return renderNode(sb, v)
	case *Node:
		if v == nil {
			return nil
		}
		return renderNode(sb, *v)
	case map[string]any:
		node, err := FromMap(v)
		if err != nil {
			return err
		}
		return renderNode(sb, node)
	case []any:
		for _, child := range v {
			if err := renderValue(sb, child); err != nil {
				return err
			}
		}
		return nil
	case []Node:
		for _, child := range v {
			if err := renderNode(sb, child); err != nil {
				return err
			}
		}
		return nil
	}

	if text, ok := formatScalar(value); ok {
		sb.WriteString(EscapeText(text))
		return nil
	}

	return fmt.Errorf("%w: unsupported child of type %T", ErrMalformedNode, value)
}

func renderNode(sb *strings.Builder, node Node) error {
	if node.Tag == "" {
		return &MalformedNodeError{KeyCount: 0}
	}

	sb.WriteByte('<')
	sb.WriteString(node.Tag)
	for _, attr := range node.Props.Attrs {
		renderAttr(sb, attr)
	}
	sb.WriteByte('>')

	if IsVoidElement(node.Tag) {
		return nil
	}

	// Children win over Text when both are present.
	if len(node.Props.Children) > 0 {
		for _, child := range node.Props.Children {
			if err := renderValue(sb, child); err != nil {
				return err
			}
		}
	} else if node.Props.Text != "" {
		sb.WriteString(EscapeText(node.Props.Text))
	}

	sb.WriteString("</")
	sb.WriteString(node.Tag)
	sb.WriteByte('>')
	return nil
}

// renderAttr emits one attribute, or nothing for false/nil values. Event
// handler keys ("on" prefix) carry their value verbatim apart from attribute
// escaping; inline JS content is deliberately not sanitized beyond that.
func renderAttr(sb *strings.Builder, attr Attr) {
	switch v := attr.Value.(type) {
	case nil:
		return
	case bool:
		if v {
			sb.WriteByte(' ')
			sb.WriteString(attr.Key)
		}
		return
	case string:
		writeAttr(sb, attr.Key, v)
		return
	}

	if text, ok := formatScalar(attr.Value); ok {
		writeAttr(sb, attr.Key, text)
		return
	}

	writeAttr(sb, attr.Key, fmt.Sprintf("%v", attr.Value))
}

func writeAttr(sb *strings.Builder, key, value string) {
	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteString(`="`)
	sb.WriteString(EscapeAttr(value))
	sb.WriteByte('"')
}

// formatScalar renders the numeric types a data-driven tree can carry.
func formatScalar(value any) (string, bool) {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), true
	}
	return "", false
}
