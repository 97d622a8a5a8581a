package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showRender bool

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a note",
	Long:  `Show a note by its ID. With --render the content is rendered as Markdown.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}

		n, ok := s.FindByID(args[0])
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), notFound)
			return nil
		}

		body := ""
		if showRender {
			if body, err = renderMarkdown(n.Content, cfg.RenderStyle); err != nil {
				return err
			}
		}
		fmt.Fprint(cmd.OutOrStdout(), renderNote(n, body))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showRender, "render", false, "Render content as Markdown")
}
