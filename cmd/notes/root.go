package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/notes/internal/config"
	"github.com/aretw0/notes/pkg/store"
)

var (
	configFile string
	cfg        = config.DefaultConfig()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notes",
	Short: "Personal notes kept in a single JSON file",
	Long: `notes creates, lists, edits, deletes and searches short text notes.
Every change is written back to the notes file immediately.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cmd.Flags(), configFile)
		if err != nil {
			return err
		}
		cfg = loaded

		level := slog.LevelInfo
		if cfg.Verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fatal("Error", err)
	}
}

// openStore loads the configured notes file.
func openStore() (*store.Store, error) {
	return store.Open(cfg.File, store.WithLogger(slog.Default()))
}

func init() {
	rootCmd.PersistentFlags().StringP("file", "f", cfg.File, "Notes file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().String("render-style", cfg.RenderStyle, "Markdown style for show --render (auto, dark, light, notty)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: "+config.Dir()+"/config.yaml)")
}
