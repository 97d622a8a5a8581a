package main

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

//go:embed VERSION
var versionFile string

// Version is the release of the notes binary.
var Version = strings.TrimSpace(versionFile)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of notes",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "notes version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
