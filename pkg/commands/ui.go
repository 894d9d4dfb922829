package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/evcal/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	var mcpAddr string

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the month view",
		Example: `
evcal ui
evcal ui --mcp-http 127.0.0.1:8080
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := load(true)
			if err != nil {
				return err
			}
			defer s.Close()
			s.watch()

			i := ui.UI{
				Calendar:      s.cal,
				Refresh:       s.cfg.Refresh,
				MCPListenAddr: mcpAddr,
				Version:       version,
			}
			return i.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&mcpAddr, "mcp-http", "", "also serve MCP over HTTP on this address while the UI is open")

	topLevel.AddCommand(cmd)
}
