package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/evcal/pkg/commands/options"
	"tableflip.dev/evcal/pkg/printers"
)

func addGroups(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "groups",
		Short: "list the configured groups",
		Example: `
evcal groups
evcal groups -o yaml
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

			pp := printers.PrettyPrint{Out: cmd.OutOrStdout()}
			gs := s.cal.Groups()
			if f := oo.Format(); f != "" {
				return pp.Encode(f, gs)
			}
			pp.NewLine()
			pp.Title("Groups")
			pp.Groups(gs...)
			return nil
		},
	}

	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
