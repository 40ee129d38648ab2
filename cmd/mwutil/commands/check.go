package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/vroland/mediawiki-parser-utils/internal/logging"
	"github.com/vroland/mediawiki-parser-utils/internal/ui/style"
	"github.com/vroland/mediawiki-parser-utils/texcheck"
	"go.trai.ch/zerr"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	var (
		checkerPath string
		cacheSize   int
	)

	cmd := &cobra.Command{
		Use:   "check [formulas...]",
		Short: "Check LaTeX formulas with the external checker",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if checkerPath == "" {
				checkerPath = os.Getenv("TEXVCCHECK")
			}
			if checkerPath == "" {
				return zerr.New("no checker binary configured, use --checker or set TEXVCCHECK")
			}

			runner := texcheck.NewExecRunner(logging.New())
			checker := texcheck.NewWithRunner(checkerPath, cacheSize, runner)

			out := cmd.OutOrStdout()
			failed := 0
			for _, source := range args {
				result, err := checker.Check(cmd.Context(), source)
				if err != nil {
					return err
				}
				printResult(out, source, result)
				if result.Kind != texcheck.Valid {
					failed++
				}
			}

			if failed > 0 {
				return zerr.With(zerr.New("formulas failed validation"), "count", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&checkerPath, "checker", "", "Path to the texvccheck binary (defaults to $TEXVCCHECK)")
	cmd.Flags().IntVar(&cacheSize, "cache-size", 10000, "Capacity hint for the classification cache")

	return cmd
}

func printResult(w io.Writer, source string, result texcheck.Result) {
	switch result.Kind {
	case texcheck.Valid:
		_, _ = fmt.Fprintf(w, "%s %s\n", style.ValidStyle.Render(style.Check), source)
	case texcheck.UnknownFunction:
		detail := style.DetailStyle.Render("unknown function: " + result.Text)
		_, _ = fmt.Fprintf(w, "%s %s %s\n", style.InvalidStyle.Render(style.Cross), source, detail)
	case texcheck.SyntaxError, texcheck.LexingError:
		detail := style.DetailStyle.Render(result.Kind.String())
		_, _ = fmt.Fprintf(w, "%s %s %s\n", style.InvalidStyle.Render(style.Cross), source, detail)
	default:
		detail := style.DetailStyle.Render(result.Kind.String())
		_, _ = fmt.Fprintf(w, "%s %s %s\n", style.UnknownStyle.Render(style.Warning), source, detail)
	}
}
