/* Copyright (c) 2021 David Bulkow */

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/andreyvit/jsonfix"
	"github.com/spf13/cobra"
)

// Config is the on-disk settings file. Comments and trailing commas
// are allowed.
type Config struct {
	JSON    bool   `json:"json"`
	Debug   bool   `json:"debug"`
	Journal string `json:"journal,omitempty"`
}

func ConfFile() string {
	if runtime.GOOS == "windows" {
		home := os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
		if home == "" {
			home = os.Getenv("USERPROFILE")
		}
		return filepath.Join(home, ".dateutil.conf")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "dateutil.conf")
}

// LoadConfig returns an empty config when filename does not exist.
func LoadConfig(filename string) (*Config, error) {
	var cfg Config

	b, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Unable to read config data %v", err)
	}

	if err := json.Unmarshal(jsonfix.Bytes(b), &cfg); err != nil {
		return nil, fmt.Errorf("Unable to parse config %s: %v", filename, err)
	}

	return &cfg, nil
}

func (c *Config) Save(filename string) error {
	b, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return fmt.Errorf("Unable to marshal config data %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("Unable to create config directory %v", err)
	}

	if err := os.WriteFile(filename, append(b, '\n'), 0666); err != nil {
		return fmt.Errorf("Unable to write config data %v", err)
	}

	return nil
}

func newConfigCmd(app *App) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"cfg"},
		Short:   "Display or write configuration",
		Long: `Display the effective configuration

Settings come from flags, then DATEUTIL_* environment variables, then
the config file. With --save the effective settings are written back
to the config file.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := app.config()

			if save {
				if err := cfg.Save(app.ConfigFile); err != nil {
					return err
				}
				app.log.Printf("wrote %s", app.ConfigFile)
			}

			return writeJSON(cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "write settings to the config file")

	return cmd
}
