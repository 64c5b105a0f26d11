package daily

import (
	"fmt"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/notehead/internal/state"
	"github.com/Paintersrp/notehead/pkg/cmd/insert"
	"github.com/Paintersrp/notehead/pkg/shared/flags"
)

var now = time.Now

func NewCmdDaily(l *state.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "daily",
		Aliases: []string{"d", "day"},
		Short:   "Work with date-named daily notes.",
		Long: heredoc.Doc(`
			Locate, create and append to daily notes.

			The note path comes from the workspace's daily_note_format, a strftime
			pattern that may contain folders, e.g. "daily_notes/%Y/%m/%d". New
			notes are created from the template configured in the vault's
			.obsidian/daily-notes.json, or empty when there is none.

			Examples:
			  notehead daily path
			  notehead daily create --date 2023-01-01
			  notehead daily append "## Todo" - buy milk
		`),
	}

	flags.AddDate(cmd)

	cmd.AddCommand(
		newCmdPath(l),
		newCmdCreate(l),
		newCmdAppend(l),
	)

	return cmd
}

func newCmdPath(l *state.Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the vault-relative path of the daily note.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, t, err := load(cmd, l)
			if err != nil {
				return err
			}
			rel, err := s.Daily.Path(t)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rel)
			return nil
		},
	}
}

func newCmdCreate(l *state.Loader) *cobra.Command {
	return &cobra.Command{
		Use:     "create",
		Aliases: []string{"c"},
		Short:   "Create the daily note from the template if it does not exist.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, t, err := load(cmd, l)
			if err != nil {
				return err
			}
			rel, created, err := s.Daily.Ensure(t)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", rel)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already exists\n", rel)
			}
			return nil
		},
	}
}

func newCmdAppend(l *state.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "append <header> [--create] [--paste] [--] [content...]",
		Aliases: []string{"a"},
		Short:   "Insert content under a header of the daily note.",
		Long: heredoc.Doc(`
			Insert content under a header of the daily note, creating the note
			from the daily template first when needed.

			Content that starts with "-" must follow "--".

			Examples:
			  notehead daily append "## Todo" -- "- call mom"
			  notehead daily append "## Links" --paste
		`),
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, t, err := load(cmd, l)
			if err != nil {
				return err
			}

			header := args[0]
			content, err := insert.Content(cmd, args, 1)
			if err != nil {
				return err
			}
			create, err := flags.HandleCreate(cmd)
			if err != nil {
				return err
			}

			rel, err := s.Daily.Path(t)
			if err != nil {
				return err
			}
			err = insert.ConfirmCreate(s, rel, header, create, func(create bool) error {
				_, err := s.Daily.Append(t, header, content, create)
				return err
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Inserted under %s in %s\n", header, rel)
			return nil
		},
	}

	flags.AddCreate(cmd)
	flags.AddPaste(cmd)
	cmd.SetFlagErrorFunc(insert.FlagError)

	return cmd
}

func load(cmd *cobra.Command, l *state.Loader) (*state.State, time.Time, error) {
	s, err := l.State()
	if err != nil {
		return nil, time.Time{}, err
	}
	t, err := flags.HandleDate(cmd, now())
	if err != nil {
		return nil, time.Time{}, err
	}
	return s, t, nil
}
