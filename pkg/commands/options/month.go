package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/evcal/pkg/grid"
)

// MonthOptions selects the month to show.
type MonthOptions struct {
	Month string
}

func AddMonthArg(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVarP(&o.Month, "month", "m", "",
		`Month to show, example: --month="2026-10" or --month="October 2026". Defaults to the current month.`)
}

// Resolve returns the first day of the selected month, or of now's month.
func (o *MonthOptions) Resolve(now time.Time) (time.Time, error) {
	if strings.TrimSpace(o.Month) == "" {
		return grid.FirstOfMonth(now), nil
	}
	t, ok := grid.ParseMonth(o.Month, now.Location())
	if !ok {
		return time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM", o.Month)
	}
	return t, nil
}
