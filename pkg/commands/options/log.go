package options

import (
	"github.com/spf13/cobra"
)

// LogOptions overrides the configured log settings.
type LogOptions struct {
	Level string
	File  string
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.PersistentFlags().StringVar(&o.Level, "log-level", "",
		"Log level: debug, info or error. Overrides log.level from the config file.")
	cmd.PersistentFlags().StringVar(&o.File, "log-file", "",
		"Write logs to this file. Overrides log.file from the config file.")
}
