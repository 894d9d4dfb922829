package printers

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Encode writes v as indented "json" or "yaml".
func (pp *PrettyPrint) Encode(format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(pp.out())
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(pp.out())
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", format)
}
