package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/notes/pkg/core"
	"github.com/aretw0/notes/pkg/store"
)

const menu = `
Menu:
1. Create note
2. List notes
3. Edit note
4. Delete note
5. Search notes
0. Exit`

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive menu",
	Long:  `Shell runs the interactive numbered menu until 0 is chosen or input ends.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}

		sh := &shell{
			store: s,
			p:     newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
			out:   cmd.OutOrStdout(),
		}
		return sh.run()
	},
}

type shell struct {
	store *store.Store
	p     *prompter
	out   io.Writer
}

func (sh *shell) run() error {
	for {
		fmt.Fprintln(sh.out, menu)
		choice, ok := sh.p.line("Choice: ")
		if !ok {
			return nil
		}

		var err error
		switch strings.TrimSpace(choice) {
		case "1":
			err = sh.create()
		case "2":
			sh.list()
		case "3":
			err = sh.edit()
		case "4":
			err = sh.delete()
		case "5":
			sh.search()
		case "0":
			fmt.Fprintln(sh.out, "Bye.")
			return nil
		default:
			fmt.Fprintln(sh.out, "Invalid choice.")
		}
		if err != nil {
			return err
		}
	}
}

func (sh *shell) create() error {
	title, _ := sh.p.line("Title: ")
	content := sh.p.body(fmt.Sprintf("Enter note text (finish with '%s' on its own line):", endMarker))
	tags, _ := sh.p.line("Tags (comma separated): ")

	if _, err := sh.store.Create(title, content, core.SplitTags(tags)); err != nil {
		return err
	}
	fmt.Fprintln(sh.out, "Note created.")
	return nil
}

func (sh *shell) list() {
	notes := sh.store.Notes()
	if len(notes) == 0 {
		fmt.Fprintln(sh.out, "No notes.")
		return
	}
	printNotes(sh.out, notes)
}

func (sh *shell) edit() error {
	id, _ := sh.p.line("Note ID: ")
	if _, ok := sh.store.FindByID(id); !ok {
		fmt.Fprintln(sh.out, notFound)
		return nil
	}

	title, _ := sh.p.line("New title (leave blank to keep): ")
	content := sh.p.body(fmt.Sprintf("New text (finish with '%s'):", endMarker))
	tags, _ := sh.p.line("New tags (comma separated): ")

	if _, _, err := sh.store.Edit(id,
		store.SetTitle(title),
		store.SetContent(content),
		store.SetTags(core.SplitTags(tags)),
	); err != nil {
		return err
	}
	fmt.Fprintln(sh.out, "Note updated.")
	return nil
}

func (sh *shell) delete() error {
	id, _ := sh.p.line("ID to delete: ")
	ok, err := sh.store.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(sh.out, notFound)
		return nil
	}
	fmt.Fprintln(sh.out, "Note deleted.")
	return nil
}

func (sh *shell) search() {
	keyword, _ := sh.p.line("Keyword: ")
	found := sh.store.Search(keyword)
	if len(found) == 0 {
		fmt.Fprintln(sh.out, "Nothing found.")
		return
	}
	fmt.Fprintf(sh.out, "Found %d notes:\n", len(found))
	printNotes(sh.out, found)
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
