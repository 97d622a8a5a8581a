package main

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/notes/pkg/store"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow changes to the notes file",
	Long:  `Watch reloads the notes file whenever it changes and prints the note count, until interrupted.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		events, err := s.Watch(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Watching %s (%d notes)\n", s.Path(), s.Len())
		for ev := range events {
			if ev.Type == store.EventRemove {
				fmt.Fprintf(out, "%s %s removed\n", ev.Time.Format("15:04:05"), ev.Path)
				continue
			}
			if err := s.Load(); err != nil {
				slog.Error("reload failed", "path", ev.Path, "error", err)
				continue
			}
			fmt.Fprintf(out, "%s %s changed (%d notes)\n", ev.Time.Format("15:04:05"), ev.Path, s.Len())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
