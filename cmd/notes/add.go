package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notes/pkg/core"
)

var (
	addTitle   string
	addContent string
	addTags    string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a note",
	Long: `Create a note. Values not given as flags are prompted for.
With --content - (or no --content) the body is read until a line containing END.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}

		p := newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())

		title := addTitle
		if !cmd.Flags().Changed("title") {
			title, _ = p.line("Title: ")
		}

		content := addContent
		if !cmd.Flags().Changed("content") || content == "-" {
			content = p.body(fmt.Sprintf("Enter note text (finish with '%s' on its own line):", endMarker))
		}

		tags := addTags
		if !cmd.Flags().Changed("tags") {
			tags, _ = p.line("Tags (comma separated): ")
		}

		n, err := s.Create(title, content, core.SplitTags(tags))
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Note created: %s\n", n.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addTitle, "title", "", "Note title")
	addCmd.Flags().StringVar(&addContent, "content", "", "Note text, or - to read it from stdin")
	addCmd.Flags().StringVar(&addTags, "tags", "", "Comma-separated tags")
}
