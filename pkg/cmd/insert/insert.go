package insert

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/notehead/internal/headers"
	"github.com/Paintersrp/notehead/internal/state"
	pathcmd "github.com/Paintersrp/notehead/pkg/cmd"
	"github.com/Paintersrp/notehead/pkg/shared/arg"
	"github.com/Paintersrp/notehead/pkg/shared/flags"
)

var (
	readClipboard = clipboard.ReadAll
	isTerminal    = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	confirmCreate = func(header, rel string) (bool, error) {
		prompt := fmt.Sprintf("Header %q is not in %s. Add it?", header, rel)
		return confirmation.New(prompt, confirmation.No).RunPrompt()
	}
)

// ErrNoContent is returned when there is nothing to insert.
var ErrNoContent = errors.New("no content to insert")

func NewCmdInsert(l *state.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "insert <note> <header> [--create] [--paste] [--] [content...]",
		Aliases: []string{"i"},
		Short:   "Insert content under a header of a note.",
		Long: heredoc.Doc(`
			Insert content as the last line of a header's section.

			The header must match a line of the note exactly. With --create a
			missing header is appended to the end of the note first; on an
			interactive terminal you are asked instead.

			Content that starts with "-", such as a list item, must follow "--"
			so it is not read as a flag.

			Examples:
			  notehead insert daily/2023-01-01 "## Todo" -- "- buy milk"
			  notehead insert inbox "## Links" --paste
			  notehead insert projects/notehead "## Ideas" --create -- "- ship it"
		`),
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := l.State()
			if err != nil {
				return err
			}
			return run(cmd, s, args)
		},
	}

	flags.AddCreate(cmd)
	flags.AddPaste(cmd)
	cmd.SetFlagErrorFunc(FlagError)

	return cmd
}

// FlagError adds a hint for content that was mistaken for a flag.
func FlagError(cmd *cobra.Command, err error) error {
	return fmt.Errorf("%w (content starting with \"-\" must follow \"--\")", err)
}

func run(cmd *cobra.Command, s *state.State, args []string) error {
	rel, err := pathcmd.ResolveNotePath(s, args[0])
	if err != nil {
		return err
	}
	header := args[1]

	content, err := Content(cmd, args, 2)
	if err != nil {
		return err
	}

	create, err := flags.HandleCreate(cmd)
	if err != nil {
		return err
	}

	if err := InsertWithConfirm(s, rel, header, content, create); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Inserted under %s in %s\n", header, rel)
	return nil
}

// Content collects the content to insert from the arguments starting at from,
// or from the clipboard when --paste is set.
func Content(cmd *cobra.Command, args []string, from int) (string, error) {
	paste, err := flags.HandlePaste(cmd)
	if err != nil {
		return "", err
	}

	content := arg.HandleContent(args, from)
	if paste {
		clip, err := readClipboard()
		if err != nil {
			return "", fmt.Errorf("failed to read clipboard: %w", err)
		}
		content = clip
	}

	content = strings.TrimRight(content, "\n")
	if strings.TrimSpace(content) == "" {
		return "", ErrNoContent
	}
	return content, nil
}

// InsertWithConfirm inserts content under header. When the header is missing
// and create is not set, an interactive terminal is asked whether to add it.
func InsertWithConfirm(s *state.State, rel, header, content string, create bool) error {
	return ConfirmCreate(s, rel, header, create, func(create bool) error {
		return s.Vault.InsertUnder(rel, header, content, create)
	})
}

// ConfirmCreate runs apply with create. When apply reports a missing header
// on an interactive terminal, the user is asked whether to add it and apply
// runs again with create set.
func ConfirmCreate(s *state.State, rel, header string, create bool, apply func(create bool) error) error {
	err := apply(create)
	if err == nil || create || !errors.Is(err, headers.ErrHeaderNotFound) || !isTerminal() {
		return err
	}

	ok, promptErr := confirmCreate(header, rel)
	if promptErr != nil {
		return fmt.Errorf("failed to confirm header creation: %w", promptErr)
	}
	if !ok {
		return err
	}

	s.Logger.Debug("creating missing header", "note", rel, "header", header)
	return apply(true)
}
