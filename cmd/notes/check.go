package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/notes/pkg/store"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the notes file",
	Long:  `Check validates the notes file against its JSON schema and then loads it.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := store.New(cfg.File, store.WithLogger(slog.Default()))
		if err := s.CheckFile(); err != nil {
			return err
		}
		if err := s.Load(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d notes, OK\n", s.Path(), s.Len())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
