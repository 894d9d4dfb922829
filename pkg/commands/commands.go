package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/evcal/pkg/commands/options"
)

var (
	lo = &options.LogOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "evcal",
		Short: base.Wrap80("A month calendar with quick-create events and color groups."),
		Long: base.Wrap80(`evcal keeps a month calendar of one-day events in memory. Events are
created with a short quick-create line such as "wed work meeting #work" and belong
to color groups that can be shown or hidden. Settings and seed groups are read from
~/.evcal.yaml.`),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddLogArgs(cmd, lo)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addGrid(topLevel)
	addParse(topLevel)
	addExport(topLevel)
	addGroups(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
