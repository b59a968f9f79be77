/* Copyright (c) 2021 David Bulkow */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set at link time:
//
//	go build -ldflags "-X main.GitHash=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%FT%TZ)"
var (
	GitHash   = "unknown"
	BuildTime = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display git hash and build data",
		Long:  "Display git hash and build data",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Git Commit Hash: %s\n", GitHash)
			fmt.Fprintf(cmd.OutOrStdout(), "Build Time:      %s\n", BuildTime)
		},
	}
}
