package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/evcal/pkg/commands/options"
	"tableflip.dev/evcal/pkg/runner/grid"
)

func addGrid(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "grid [quick-create command]...",
		Short: "print a month grid",
		Long: `Print the Monday-first grid of a month, padded with the days of the
neighbouring months to full weeks. Each argument is a quick-create command that
is added before the grid is printed.`,
		Example: `
evcal grid
evcal grid --month 2026-02 -o yaml
evcal grid "wed work meeting #work" "14 deadline"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := oo.Validate(); err != nil {
				return err
			}
			s, err := load(false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			month, err := mo.Resolve(s.cal.Now())
			if err != nil {
				return oo.HandleError(err)
			}
			g := grid.Grid{
				Calendar: s.cal,
				Month:    month,
				Lines:    args,
				Format:   oo.Format(),
				ShowID:   oo.ShowID,
				Out:      cmd.OutOrStdout(),
			}
			return oo.HandleError(g.Do(cmd.Context()))
		},
	}

	options.AddMonthArg(cmd, mo)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
