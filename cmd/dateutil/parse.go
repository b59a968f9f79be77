/* Copyright (c) 2021 David Bulkow */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newParseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "parse <text>...",
		Aliases: []string{"p"},
		Short:   "Parse date/time strings",
		Long: `Parse one or more date/time strings

Each argument is parsed on its own and reported as a date, time or
datetime in canonical form. Quote arguments containing spaces.
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]result, 0, len(args))
			failed := 0

			for _, arg := range args {
				res := app.parse(arg)
				if res.Error != "" {
					failed++
				}
				results = append(results, res)
			}

			if app.JSON {
				if err := writeJSON(cmd.OutOrStdout(), results); err != nil {
					return err
				}
			} else {
				w := newTabWriter(cmd.OutOrStdout())
				for _, res := range results {
					if res.Error != "" {
						fmt.Fprintf(w, "%s\terror\t%s\n", res.Input, res.Error)
						continue
					}
					fmt.Fprintf(w, "%s\t%s\t%s\n", res.Input, res.Kind, res.Value)
				}
				if err := w.Flush(); err != nil {
					return err
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d inputs failed to parse", failed, len(args))
			}
			return nil
		},
	}
}
