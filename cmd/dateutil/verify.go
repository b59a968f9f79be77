/* Copyright (c) 2021 David Bulkow */

package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newVerifyCmd(app *App) *cobra.Command {
	var runID string

	cmd := &cobra.Command{
		Use:   "verify [<journal>]",
		Short: "Re-parse a journal and report changed results",
		Long: `Replay a batch journal against the current parser

Each record's input is parsed again and must give the stored kind and
value, or the stored error. The stored canonical value must itself parse
back to the same value. Records can be limited to one batch run with --run.
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := app.Journal
			if len(args) == 1 {
				filename = args[0]
			}
			if filename == "" {
				return errors.New("no journal given; pass a filename or set --journal")
			}

			var only uuid.UUID
			if runID != "" {
				var err error
				only, err = uuid.Parse(runID)
				if err != nil {
					return fmt.Errorf("invalid run id %q: %v", runID, err)
				}
			}

			jnl := &journal{filename: filename}
			out := cmd.OutOrStdout()
			checked, mismatched := 0, 0

			err := jnl.Replay(func(rec *record) error {
				if only != uuid.Nil && rec.Run != only {
					return nil
				}
				checked++

				if problem := app.check(rec); problem != "" {
					mismatched++
					fmt.Fprintf(out, "%s:%d: %q: %s\n", sourceName(rec), rec.Line, rec.Input, problem)
				}
				return nil
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "checked %d records, %d mismatched\n", checked, mismatched)

			if mismatched > 0 {
				return fmt.Errorf("%d records no longer match", mismatched)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&runID, "run", "", "only check records from this batch run")

	return cmd
}

func sourceName(rec *record) string {
	if rec.Source == "" {
		return "-"
	}
	return rec.Source
}

// check returns a description of how rec differs from a fresh parse,
// or "" when it matches.
func (a *App) check(rec *record) string {
	now := a.parse(rec.Input)

	if rec.Error != "" {
		if now.Error != rec.Error {
			return fmt.Sprintf("error was %q, now %s", rec.Error, describe(now))
		}
		return ""
	}

	if now.Error != "" || now.Kind != rec.Kind || now.Value != rec.Value {
		return fmt.Sprintf("was %s %s, now %s", rec.Kind, rec.Value, describe(now))
	}

	again := a.parse(rec.Value)
	if again.Error != "" || again.Kind != rec.Kind || again.Value != rec.Value {
		return fmt.Sprintf("value %s re-parses as %s", rec.Value, describe(again))
	}

	return ""
}

func describe(res result) string {
	if res.Error != "" {
		return fmt.Sprintf("error %q", res.Error)
	}
	return res.Kind + " " + res.Value
}
