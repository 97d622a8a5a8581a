package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aretw0/notes/pkg/core"
)

var (
	listJSON  bool
	filterTag string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}

		notes := s.Notes()
		if filterTag != "" {
			notes, err = s.FilterByTag(filterTag)
			if err != nil {
				return err
			}
		}

		return writeNotes(cmd.OutOrStdout(), notes, listJSON, "No notes.")
	},
}

// writeNotes prints notes as JSON or rendered text; empty says so in text mode.
func writeNotes(w io.Writer, notes []core.Note, asJSON bool, empty string) error {
	if asJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		if err := encoder.Encode(notes); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	}

	if len(notes) == 0 {
		fmt.Fprintln(w, empty)
		return nil
	}
	printNotes(w, notes)
	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&filterTag, "tag", "", "Only notes with a tag matching this glob (e.g. work/**)")
}
