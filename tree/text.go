package tree

import "strings"

// ExtractPlainText extracts plain text from a list of nodes and
// concatenates it. Only text runs and the content of formatted spans,
// paragraphs and template argument values contribute; all other node
// kinds are skipped.
func ExtractPlainText(content []Element) string {
	var b strings.Builder
	extractPlainText(&b, content)
	return b.String()
}

func extractPlainText(b *strings.Builder, content []Element) {
	for _, root := range content {
		switch e := root.(type) {
		case *Text:
			b.WriteString(e.Text)
		case *Formatted:
			extractPlainText(b, e.Content)
		case *Paragraph:
			extractPlainText(b, e.Content)
		case *TemplateArgument:
			extractPlainText(b, e.Value)
		}
	}
}

// FindArgument returns the first template argument from content whose
// trimmed, lowercased name matches one of names. Names passed in must
// already be lowercase. Returns nil if no argument matches.
func FindArgument(content []Element, names []string) *TemplateArgument {
	for _, child := range content {
		arg, ok := child.(*TemplateArgument)
		if !ok {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(arg.Name))
		for _, candidate := range names {
			if name == candidate {
				return arg
			}
		}
	}
	return nil
}
