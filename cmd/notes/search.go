package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Find notes containing a keyword",
	Long:  `Search matches the keyword, ignoring case, against titles, contents and tags.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}

		found := s.Search(args[0])
		if !searchJSON && len(found) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Found %d notes:\n", len(found))
		}
		return writeNotes(cmd.OutOrStdout(), found, searchJSON, "Nothing found.")
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
}
