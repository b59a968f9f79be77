/* Copyright (c) 2021 David Bulkow */

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/dbulkow/dateutil"
	"github.com/dbulkow/dateutil/internal/getenv"
	"github.com/spf13/cobra"
)

const longHelp = `Parse loosely formatted date/time strings and convert between
calendar values, epoch seconds and durations.

accepted input:
    2012-12-06                   date
    12:53:56.123                 time
    2012-12-06T12:53:56.123Z     datetime ('T' or ' ' separated)
    20121206125356               compact datetime
    20121206                     compact date

environment:
    DATEUTIL_CONFIG   config filename
                      DATEUTIL_CONFIG_VALUE
    DATEUTIL_JOURNAL  journal appended to by batch
    DATEUTIL_JSON     JSON output (true/false)
    DATEUTIL_DEBUG    parser debug logging (true/false)
`

// App carries the settings shared by all subcommands.
type App struct {
	ConfigFile string
	Journal    string
	JSON       bool
	Debug      bool

	env    *getenv.Env
	log    *log.Logger
	parser *dateutil.Parser
}

func newApp() *App {
	env := getenv.NewEnv("DATEUTIL")
	return &App{
		ConfigFile: env.Get("CONFIG", ConfFile()),
		env:        env,
		parser:     &dateutil.Parser{},
	}
}

// resolve fills in every setting not given as a flag, environment
// first, then the config file.
func (a *App) resolve(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.ConfigFile)
	if err != nil {
		return err
	}

	if !cmd.Flag("json").Changed {
		a.JSON = a.env.GetBool("JSON", cfg.JSON)
	}
	if !cmd.Flag("debug").Changed {
		a.Debug = a.env.GetBool("DEBUG", cfg.Debug)
	}
	if !cmd.Flag("journal").Changed {
		a.Journal = a.env.Get("JOURNAL", cfg.Journal)
	}

	a.log = log.New(io.Discard, "", 0)
	a.parser = &dateutil.Parser{}
	if a.Debug {
		a.log = log.New(cmd.ErrOrStderr(), "dateutil: ", log.LstdFlags)
		a.parser.Log = a.log
	}

	return nil
}

func (a *App) config() *Config {
	return &Config{
		JSON:    a.JSON,
		Debug:   a.Debug,
		Journal: a.Journal,
	}
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dateutil",
		Short:         "Parse and convert date/time values",
		Long:          strings.ReplaceAll(longHelp, "DATEUTIL_CONFIG_VALUE", app.ConfigFile),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.resolve(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&app.ConfigFile, "config", app.ConfigFile, "config file")
	cmd.PersistentFlags().StringVar(&app.Journal, "journal", "", "journal file (JSONL)")
	cmd.PersistentFlags().BoolVarP(&app.JSON, "json", "j", false, "JSON output")
	cmd.PersistentFlags().BoolVar(&app.Debug, "debug", false, "log parser decisions to stderr")

	cmd.AddCommand(newParseCmd(app))
	cmd.AddCommand(newEpochCmd(app))
	cmd.AddCommand(newFromEpochCmd(app))
	cmd.AddCommand(newDurationCmd(app))
	cmd.AddCommand(newBatchCmd(app))
	cmd.AddCommand(newVerifyCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func main() {
	err := newRootCmd(newApp()).Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
