package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vroland/mediawiki-parser-utils/sanitize"
)

func (c *CLI) newTargetCmd() *cobra.Command {
	var safe bool

	cmd := &cobra.Command{
		Use:   "target [names...]",
		Short: "Convert article names to make-friendly targets",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, name := range args {
				if safe {
					_, _ = fmt.Fprintln(out, sanitize.SafeTarget(name))
				} else {
					_, _ = fmt.Fprintln(out, sanitize.MakeTarget(name))
				}
			}
		},
	}

	cmd.Flags().BoolVar(&safe, "safe", false, "Bound target length, appending a digest to overlong names")

	return cmd
}
