package depgraph

import (
	"fmt"

	"github.com/arthur-debert/depgraph/pkg/logging"
	"github.com/arthur-debert/depgraph/pkg/style"
	"github.com/spf13/cobra"
)

func newMergeCmd() *cobra.Command {
	var leftSpecs, rightSpecs []string

	cmd := &cobra.Command{
		Use:   "merge",
		Short: MsgMergeShort,
		Long:  MsgMergeLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("merge")

			left, err := parseRules(leftSpecs)
			if err != nil {
				return err
			}
			right, err := parseRules(rightSpecs)
			if err != nil {
				return err
			}

			union := left.Union(right)
			intersection := left.Intersect(right)
			logger.Debug().
				Str("union", union.String()).
				Str("intersection", intersection.String()).
				Msg("Combined filters")

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, style.TitleStyle.Render("Left:"),
				style.RuleStyle.Render(left.String()))
			fmt.Fprintln(out, style.TitleStyle.Render("Right:"),
				style.RuleStyle.Render(right.String()))
			fmt.Fprintln(out, style.TitleStyle.Render("Union:"),
				style.RuleStyle.Render(union.String()))
			fmt.Fprintln(out, style.TitleStyle.Render("Intersection:"),
				style.RuleStyle.Render(intersection.String()))

			if left.ExcludesSameModulesAs(right) {
				fmt.Fprintln(out, style.AcceptStyle.Render(MsgAcceptedMark),
					"left and right exclude the same modules")
			} else {
				fmt.Fprintln(out, style.ExcludeStyle.Render(MsgExcludedMark),
					"left and right exclude different modules")
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&leftSpecs, "left", "l", nil, MsgFlagLeft)
	cmd.Flags().StringArrayVarP(&rightSpecs, "right", "r", nil, MsgFlagRight)

	return cmd
}
