/* Copyright (c) 2021 David Bulkow */

package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dbulkow/dateutil"
	"github.com/spf13/cobra"
)

type durationResult struct {
	Days         int64   `json:"days"`
	Seconds      int64   `json:"seconds"`
	Microseconds int64   `json:"microseconds"`
	Total        float64 `json:"total"`
}

func parseDuration(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", value, err)
	}
	return d, nil
}

func newDurationCmd(app *App) *cobra.Command {
	var days, seconds, micros int64

	cmd := &cobra.Command{
		Use:     "duration [<duration>]",
		Aliases: []string{"dur"},
		Short:   "Total length of a duration in seconds",
		Long: `Report the total length of a duration in seconds

The duration is given as a Go duration string (1h30m, 250ms), as
--days/--seconds/--microseconds, or both, in which case they are added.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := dateutil.NewDuration(days, seconds, micros)

			if len(args) == 1 {
				td, err := parseDuration(args[0])
				if err != nil {
					return err
				}
				x := dateutil.DurationOf(td)
				d = dateutil.NewDuration(d.Days+x.Days, d.Seconds+x.Seconds, d.Microseconds+x.Microseconds)
			}

			total := dateutil.DurationSeconds(d)

			if app.JSON {
				return writeJSON(cmd.OutOrStdout(), durationResult{
					Days:         d.Days,
					Seconds:      d.Seconds,
					Microseconds: d.Microseconds,
					Total:        total,
				})
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(total, 'f', -1, 64))
			return err
		},
	}

	cmd.Flags().Int64Var(&days, "days", 0, "days")
	cmd.Flags().Int64Var(&seconds, "seconds", 0, "seconds")
	cmd.Flags().Int64Var(&micros, "microseconds", 0, "microseconds")

	return cmd
}
