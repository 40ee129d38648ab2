package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/vroland/mediawiki-parser-utils/tree"
	"go.trai.ch/zerr"
)

func (c *CLI) newTextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "text [tree-file]",
		Short: "Extract plain text from a serialized document tree",
		Long: "Reads the YAML document tree produced by the parser from the " +
			"given file (or stdin) and prints its plain text content.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return zerr.Wrap(err, "failed to open tree file")
				}
				defer func() { _ = f.Close() }()
				in = f
			}

			root, err := tree.Decode(in)
			if err != nil {
				return err
			}

			content := []tree.Element{root}
			if doc, ok := root.(*tree.Document); ok {
				content = doc.Content
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), tree.ExtractPlainText(content))
			return nil
		},
	}
}
