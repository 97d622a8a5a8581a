package main

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the store state as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}

		return printState(cmd, s)
	},
}

func printState(cmd *cobra.Command, intro introspection.Introspectable) error {
	out := map[string]any{"state": intro.State()}
	if comp, ok := intro.(introspection.Component); ok {
		out["component"] = comp.ComponentType()
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
