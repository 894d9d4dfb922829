// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/evcal/pkg/printers"
)

// OutputOptions selects between pretty, JSON and YAML output.
type OutputOptions struct {
	JSON   bool
	Output string
	ShowID bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
	cmd.Flags().StringVarP(&po.Output, "output", "o", "",
		"Output format. One of 'json' or 'yaml'. Pretty printed when empty.")
	cmd.Flags().BoolVar(&po.ShowID, "id", false,
		"Show event identifiers.")
}

// Format returns "json", "yaml" or "" for pretty output.
func (o *OutputOptions) Format() string {
	if o.JSON {
		return "json"
	}
	return strings.ToLower(strings.TrimSpace(o.Output))
}

// Validate rejects unknown output formats.
func (o *OutputOptions) Validate() error {
	switch o.Format() {
	case "", "json", "yaml":
		return nil
	}
	return fmt.Errorf("unknown output format %q (expected json or yaml)", o.Output)
}

func (o *OutputOptions) HandleError(err error) error {
	if err == nil || o.Format() == "" {
		return err
	}
	out := map[string]string{
		"error": err.Error(),
	}
	pp := printers.PrettyPrint{}
	if encErr := pp.Encode(o.Format(), out); encErr != nil {
		return encErr
	}
	return nil
}
