package depgraph

import (
	"fmt"

	"github.com/arthur-debert/depgraph/pkg/logging"
	"github.com/arthur-debert/depgraph/pkg/style"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var excludeSpecs []string

	cmd := &cobra.Command{
		Use:   "check [coordinate...]",
		Short: MsgCheckShort,
		Long:  MsgCheckLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("check")

			filter, err := parseRules(excludeSpecs)
			if err != nil {
				return err
			}
			logger.Debug().
				Int("rules", len(excludeSpecs)).
				Str("filter", filter.String()).
				Msg("Built filter")

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, style.TitleStyle.Render("Filter:"),
				style.RuleStyle.Render(filter.String()))

			for _, arg := range args {
				coord, err := parseCoordinate(arg)
				if err != nil {
					return err
				}

				accepted := filter.Accepts(coord.module)
				if coord.hasArtifact {
					accepted = filter.AcceptsArtifact(coord.module, coord.artifact)
				}

				mark := style.AcceptStyle.Render(MsgAcceptedMark)
				verdict := "accepted"
				if !accepted {
					mark = style.ExcludeStyle.Render(MsgExcludedMark)
					verdict = "excluded"
				}
				fmt.Fprintf(out, "%s %s %s\n", mark,
					style.CoordinateStyle.Render(coord.String()),
					style.MutedStyle.Render(verdict))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&excludeSpecs, "exclude", "e", nil, MsgFlagExclude)

	return cmd
}
