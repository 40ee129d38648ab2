// Package tree models the document tree emitted by the mediawiki parser
// and provides traversal helpers used by the export pipeline.
package tree

// Element is a node of the parsed document tree.
//
// The set of concrete node types is closed: anything the parser emits that
// this package does not model is decoded as *Unsupported so traversals can
// skip it without losing the nesting structure.
type Element interface {
	element()
}

// Document is the root node of a parsed article.
type Document struct {
	Content ElementList `yaml:"content"`
}

// Heading is a section heading with its nested content.
type Heading struct {
	Depth   int         `yaml:"depth"`
	Caption ElementList `yaml:"caption"`
	Content ElementList `yaml:"content"`
}

// Text is a literal text run.
type Text struct {
	Text string `yaml:"text"`
}

// Formatted is a text span with markup applied (italic, bold, math, ...).
type Formatted struct {
	Markup  string      `yaml:"markup"`
	Content ElementList `yaml:"content"`
}

// Paragraph is a block of flowing content.
type Paragraph struct {
	Content ElementList `yaml:"content"`
}

// Template is a template invocation.
type Template struct {
	Name    ElementList `yaml:"name"`
	Content ElementList `yaml:"content"`
}

// TemplateArgument is a named or positional argument of a template.
type TemplateArgument struct {
	Name  string      `yaml:"name"`
	Value ElementList `yaml:"value"`
}

// List is an ordered, unordered or definition list.
type List struct {
	Content ElementList `yaml:"content"`
}

// ListItem is a single item of a List.
type ListItem struct {
	Depth   int         `yaml:"depth"`
	Content ElementList `yaml:"content"`
}

// Comment is a wikitext comment.
type Comment struct {
	Text string `yaml:"text"`
}

// Unsupported preserves a node kind this package does not model.
// Nested content is still decoded so traversals see the full tree shape.
type Unsupported struct {
	Type    string
	Content ElementList
}

func (*Document) element()         {}
func (*Heading) element()          {}
func (*Text) element()             {}
func (*Formatted) element()        {}
func (*Paragraph) element()        {}
func (*Template) element()         {}
func (*TemplateArgument) element() {}
func (*List) element()             {}
func (*ListItem) element()         {}
func (*Comment) element()          {}
func (*Unsupported) element()      {}
