package tree

import (
	"io"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ErrMalformedTree is returned when the serialized tree does not follow the
// parser's node layout.
var ErrMalformedTree = zerr.New("malformed document tree")

// ElementList is a sequence of elements. It implements yaml.Unmarshaler so
// nested content decodes into the concrete node types.
type ElementList []Element

// Decode reads a single serialized element (usually the document root)
// from r.
func Decode(r io.Reader) (Element, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		return nil, zerr.Wrap(err, "failed to parse document tree")
	}
	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	return decodeElement(node)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *ElementList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return zerr.With(ErrMalformedTree, "line", node.Line)
	}
	out := make(ElementList, 0, len(node.Content))
	for _, child := range node.Content {
		e, err := decodeElement(child)
		if err != nil {
			return err
		}
		out = append(out, e)
	}
	*l = out
	return nil
}

// decodeElement dispatches on the "type" discriminator the parser writes
// into every node.
func decodeElement(node *yaml.Node) (Element, error) {
	if node.Kind != yaml.MappingNode {
		return nil, zerr.With(ErrMalformedTree, "line", node.Line)
	}

	var head struct {
		Type string `yaml:"type"`
	}
	if err := node.Decode(&head); err != nil {
		return nil, zerr.Wrap(err, "failed to read element type")
	}

	var (
		e   Element
		err error
	)
	switch head.Type {
	case "document":
		e, err = decodeInto(node, &Document{})
	case "heading":
		e, err = decodeInto(node, &Heading{})
	case "text":
		e, err = decodeInto(node, &Text{})
	case "formatted":
		e, err = decodeInto(node, &Formatted{})
	case "paragraph":
		e, err = decodeInto(node, &Paragraph{})
	case "template":
		e, err = decodeInto(node, &Template{})
	case "templateargument":
		e, err = decodeInto(node, &TemplateArgument{})
	case "list":
		e, err = decodeInto(node, &List{})
	case "listitem":
		e, err = decodeInto(node, &ListItem{})
	case "comment":
		e, err = decodeInto(node, &Comment{})
	case "":
		return nil, zerr.With(ErrMalformedTree, "line", node.Line)
	default:
		var raw struct {
			Content ElementList `yaml:"content"`
		}
		if err := node.Decode(&raw); err != nil {
			return nil, zerr.Wrap(err, "failed to decode element content")
		}
		e = &Unsupported{Type: head.Type, Content: raw.Content}
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func decodeInto[T Element](node *yaml.Node, target T) (Element, error) {
	if err := node.Decode(target); err != nil {
		return nil, zerr.Wrap(err, "failed to decode element")
	}
	return target, nil
}
