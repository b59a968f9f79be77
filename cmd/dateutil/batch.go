/* Copyright (c) 2021 David Bulkow */

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newBatchCmd(app *App) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "batch [<file>...]",
		Short: "Parse one input per line",
		Long: `Parse one input per line from files or standard input

Every non-blank line produces a JSONL record on standard output:

    {"run":"<uuid>","source":"dates.txt","line":3,"input":"...","kind":"date","value":"..."}

Failures carry "error" instead of kind and value. All records of one
invocation share the same run id. When a journal is configured the
records are appended to it as well.
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := uuid.NewRandom()
			if err != nil {
				return fmt.Errorf("run id: %v", err)
			}

			var jnl *journal
			if app.Journal != "" {
				jnl, err = NewJournal(app.Journal)
				if err != nil {
					return err
				}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			total, failed := 0, 0

			emit := func(rec *record) error {
				total++
				if rec.Error != "" {
					failed++
				}
				if err := enc.Encode(rec); err != nil {
					return err
				}
				if jnl != nil {
					return jnl.Append(rec)
				}
				return nil
			}

			if len(args) == 0 {
				if err := app.batch(run, "", cmd.InOrStdin(), emit); err != nil {
					return err
				}
			}

			for _, name := range args {
				file, err := os.Open(name)
				if err != nil {
					return err
				}
				err = app.batch(run, name, file, emit)
				file.Close()
				if err != nil {
					return err
				}
			}

			app.log.Printf("run %s: %d records, %d failed", run, total, failed)

			if strict && failed > 0 {
				return fmt.Errorf("%d of %d inputs failed to parse", failed, total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error if any line fails to parse")

	return cmd
}

// maxLine bounds a single batch input line.
const maxLine = 1 << 20

func (a *App) batch(run uuid.UUID, source string, r io.Reader, emit func(*record) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLine)
	line := 0
	for scanner.Scan() {
		line++

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		rec := &record{
			Run:    run,
			Source: source,
			Line:   line,
			result: a.parse(text),
		}

		if err := emit(rec); err != nil {
			return err
		}
	}
	return scanner.Err()
}
