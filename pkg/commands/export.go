package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/evcal/pkg/runner/export"
	"tableflip.dev/evcal/pkg/runner/parse"
)

func addExport(topLevel *cobra.Command) {
	var hidden bool

	cmd := &cobra.Command{
		Use:   "export [command]",
		Short: "write quick-create commands as an iCalendar file",
		Example: `
evcal export tom birthday party > party.ics
cat plans.txt | evcal export --hidden > plans.ics
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := load(false)
			if err != nil {
				return err
			}
			defer s.Close()

			x := export.Export{
				Input: parse.Input{
					Args: args,
					In:   cmd.InOrStdin(),
				},
				Calendar: s.cal,
				Hidden:   hidden,
				Out:      cmd.OutOrStdout(),
			}
			return x.Do(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&hidden, "hidden", false, "include events of hidden or unknown groups")

	topLevel.AddCommand(cmd)
}
