package tree_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vroland/mediawiki-parser-utils/tree"
)

func loadArticle(t *testing.T) *tree.Document {
	t.Helper()

	f, err := os.Open(filepath.Join("testdata", "article.yaml"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	root, err := tree.Decode(f)
	require.NoError(t, err)

	doc, ok := root.(*tree.Document)
	require.True(t, ok, "expected *tree.Document, got %T", root)
	return doc
}

func TestDecode_Article(t *testing.T) {
	doc := loadArticle(t)
	require.Len(t, doc.Content, 1)

	heading, ok := doc.Content[0].(*tree.Heading)
	require.True(t, ok, "expected *tree.Heading, got %T", doc.Content[0])
	assert.Equal(t, 1, heading.Depth)
	assert.Equal(t, "Der Grenzwertbegriff", tree.ExtractPlainText(heading.Caption))
	require.Len(t, heading.Content, 3)

	// Node kinds this package does not model keep their type and content.
	unsupported, ok := heading.Content[2].(*tree.Unsupported)
	require.True(t, ok, "expected *tree.Unsupported, got %T", heading.Content[2])
	assert.Equal(t, "gallery", unsupported.Type)
	require.Len(t, unsupported.Content, 1)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		errContains string
	}{
		{
			name:        "missing type discriminator",
			input:       "content: []\n",
			errContains: "malformed document tree",
		},
		{
			name:        "scalar instead of node",
			input:       "just a string\n",
			errContains: "malformed document tree",
		},
		{
			name:        "content is not a sequence",
			input:       "type: paragraph\ncontent: 42\n",
			errContains: "malformed document tree",
		},
		{
			name:        "not yaml at all",
			input:       "{,\n",
			errContains: "failed to parse document tree",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tree.Decode(strings.NewReader(tt.input))
			require.ErrorContains(t, err, tt.errContains)
		})
	}
}

func TestExtractPlainText(t *testing.T) {
	doc := loadArticle(t)
	heading := doc.Content[0].(*tree.Heading)

	got := tree.ExtractPlainText(heading.Content)

	g := goldie.New(t)
	g.Assert(t, "plain_text", []byte(got))
}

func TestExtractPlainText_SkipsUnhandledKinds(t *testing.T) {
	content := []tree.Element{
		&tree.Comment{Text: "invisible"},
		&tree.Text{Text: "a"},
		&tree.Template{Content: tree.ElementList{&tree.Text{Text: "invisible"}}},
		&tree.Paragraph{Content: tree.ElementList{&tree.Text{Text: "b"}}},
	}

	assert.Equal(t, "ab", tree.ExtractPlainText(content))
}

func TestFindArgument(t *testing.T) {
	doc := loadArticle(t)
	heading := doc.Content[0].(*tree.Heading)
	template := heading.Content[1].(*tree.Template)

	t.Run("matches trimmed lowercase name", func(t *testing.T) {
		arg := tree.FindArgument(template.Content, []string{"definition"})
		require.NotNil(t, arg)
		assert.Equal(t, "Der Grenzwert einer Folge ist eindeutig.", tree.ExtractPlainText(arg.Value))
	})

	t.Run("first of several candidates wins", func(t *testing.T) {
		arg := tree.FindArgument(template.Content, []string{"definition", "title"})
		require.NotNil(t, arg)
		assert.Equal(t, "title", arg.Name)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Nil(t, tree.FindArgument(template.Content, []string{"beweis"}))
	})

	t.Run("non-argument nodes are skipped", func(t *testing.T) {
		content := []tree.Element{
			&tree.Text{Text: "title"},
			&tree.TemplateArgument{Name: "Title"},
		}
		arg := tree.FindArgument(content, []string{"title"})
		require.NotNil(t, arg)
		assert.Equal(t, "Title", arg.Name)
	})
}
