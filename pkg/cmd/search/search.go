package search

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/notehead/internal/fzf"
	searchsvc "github.com/Paintersrp/notehead/internal/search"
	"github.com/Paintersrp/notehead/internal/state"
)

var (
	writeClipboard = clipboard.WriteAll
	isTerminal     = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	pickItem       = func(s *state.State, items []searchsvc.Item, query string) (searchsvc.Item, error) {
		return fzf.NewFuzzyFinder(s.Vault, "Select a header").Pick(items, query)
	}
)

func NewCmdSearch(l *state.Loader) *cobra.Command {
	var pick, copyArg bool

	cmd := &cobra.Command{
		Use:     "search [path-glob:header-glob]",
		Aliases: []string{"s"},
		Short:   "Search note headers across the vault.",
		Long: heredoc.Doc(`
			Search the headers of every note in the vault with a compound query.

			The query is split on the first ':' into a path glob and a header glob.
			Both are case insensitive and wrapped in '*' unless they already start
			or end with one. Use '**' in the path glob to descend into folders.

			Results are printed as JSON items with a title, a subtitle and an
			advanced-uri locator that opens the note at the header. Without a
			query every header of every note is listed.

			Examples:
			  notehead search python:datetime
			  notehead search ':random'
			  notehead search 'Notes*/*:todo' --pick
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := l.State()
			if err != nil {
				return err
			}

			query := ":"
			if len(args) > 0 {
				query = args[0]
			}
			return run(cmd, s, query, pick, copyArg)
		},
	}

	cmd.Flags().BoolVarP(&pick, "pick", "p", false, "Choose a result interactively and print its locator.")
	cmd.Flags().BoolVar(&copyArg, "copy", false, "Copy the chosen (or first) locator to the clipboard.")

	return cmd
}

func run(cmd *cobra.Command, s *state.State, query string, pick, copyArg bool) error {
	idx, err := s.Vault.HeaderIndex(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to index vault: %w", err)
	}

	resp := s.Search.Search(idx, query)
	for _, w := range resp.Warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
	}

	if pick {
		return runPick(cmd, s, resp.Items, query, copyArg)
	}

	if resp.Items == nil {
		resp.Items = []searchsvc.Item{}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	if copyArg && len(resp.Items) > 0 {
		return copyLocator(resp.Items[0].Arg)
	}
	return nil
}

func runPick(cmd *cobra.Command, s *state.State, items []searchsvc.Item, query string, copyArg bool) error {
	if len(items) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No results")
		return nil
	}
	if !isTerminal() {
		return errors.New("--pick requires an interactive terminal")
	}

	item, err := pickItem(s, items, query)
	if errors.Is(err, fzf.ErrNoSelection) {
		fmt.Fprintln(cmd.ErrOrStderr(), "No result selected")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), item.Arg)
	if copyArg {
		return copyLocator(item.Arg)
	}
	return nil
}

func copyLocator(arg string) error {
	if err := writeClipboard(arg); err != nil {
		return fmt.Errorf("failed to copy locator: %w", err)
	}
	return nil
}
