/* Copyright (c) 2021 David Bulkow */

package main

import (
	"fmt"
	"strconv"

	"github.com/dbulkow/dateutil"
	"github.com/spf13/cobra"
)

type epochResult struct {
	Input string  `json:"input,omitempty"`
	Value string  `json:"value"`
	Epoch float64 `json:"epoch"`
}

func formatEpoch(secs float64) string {
	return strconv.FormatFloat(secs, 'f', 6, 64)
}

func newEpochCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "epoch <datetime>",
		Short: "Convert a date or datetime to epoch seconds",
		Long: `Convert a date or datetime to seconds since 1970-01-01T00:00:00 UTC

The wall clock fields are read as UTC. A date is taken at midnight.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := app.parser.Parse(args[0])
			if err != nil {
				return err
			}

			var dt dateutil.DateTime
			switch v := v.(type) {
			case dateutil.DateTime:
				dt = v
			case dateutil.Date:
				dt = v.At(dateutil.Time{})
			default:
				return fmt.Errorf("%q is a %s, epoch needs a date", args[0], v.Kind())
			}

			secs := dateutil.ToEpochSeconds(dt)
			app.log.Printf("%s => %s", dt, formatEpoch(secs))

			if app.JSON {
				return writeJSON(cmd.OutOrStdout(), epochResult{Input: args[0], Value: dt.String(), Epoch: secs})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatEpoch(secs))
			return err
		},
	}
}

func newFromEpochCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "fromepoch <seconds>",
		Short: "Convert epoch seconds to a UTC datetime",
		Long: `Convert seconds since 1970-01-01T00:00:00 UTC to a datetime

Negative values need a '--' before them, e.g. dateutil fromepoch -- -0.5
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secs, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid epoch %q: %w", args[0], err)
			}

			dt := dateutil.FromEpochSeconds(secs)

			if app.JSON {
				return writeJSON(cmd.OutOrStdout(), epochResult{Value: dt.String(), Epoch: secs})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), dt)
			return err
		},
	}
}
