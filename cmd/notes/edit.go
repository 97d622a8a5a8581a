package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notes/pkg/core"
	"github.com/aretw0/notes/pkg/store"
)

const notFound = "Note not found."

var (
	editTitle   string
	editContent string
	editTags    string
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit a note",
	Long: `Edit a note's title, content or tags. Blank values keep the current ones.
Without any of --title, --content or --tags every field is prompted for.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}

		id := args[0]
		if _, ok := s.FindByID(id); !ok {
			fmt.Fprintln(cmd.OutOrStdout(), notFound)
			return nil
		}

		title, content, tags := editTitle, editContent, editTags
		flags := cmd.Flags()
		if !flags.Changed("title") && !flags.Changed("content") && !flags.Changed("tags") {
			p := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
			title, _ = p.line("New title (leave blank to keep): ")
			content = p.body(fmt.Sprintf("New text (finish with '%s'; nothing keeps the current text):", endMarker))
			tags, _ = p.line("New tags (comma separated, blank to keep): ")
		}

		_, ok, err := s.Edit(id,
			store.SetTitle(title),
			store.SetContent(content),
			store.SetTags(core.SplitTags(tags)),
		)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), notFound)
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Note updated.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editContent, "content", "", "New content")
	editCmd.Flags().StringVar(&editTags, "tags", "", "New comma-separated tags")
}
