package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/evcal/pkg/commands/options"
	"tableflip.dev/evcal/pkg/runner/parse"
)

func addParse(topLevel *cobra.Command) {
	inter := &options.InteractiveOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "parse [command]",
		Short: "parse quick-create commands",
		Long: `Parse quick-create commands and print the events they create.

The first word is the date: a day of the month, "tod", "tom" or a weekday
abbreviation (mon..sun). The rest is the title; one "#tag" picks the group.
Without arguments, commands are read one per line from stdin.`,
		Example: `
evcal parse wed work meeting
evcal parse tom birthday party #personal --json
printf "14 deadline\nfri drinks #social\n" | evcal parse
evcal parse -i
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

			p := parse.Parse{
				Input: parse.Input{
					Args:        args,
					Interactive: inter.Interactive,
					In:          cmd.InOrStdin(),
				},
				Calendar: s.cal,
				Format:   oo.Format(),
				ShowID:   oo.ShowID,
				Out:      cmd.OutOrStdout(),
			}
			return oo.HandleError(p.Do(cmd.Context()))
		},
	}

	options.AddInteractiveArg(cmd, inter)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
