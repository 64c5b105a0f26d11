package section

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/notehead/internal/fzf"
	"github.com/Paintersrp/notehead/internal/headers"
	"github.com/Paintersrp/notehead/internal/state"
	pathcmd "github.com/Paintersrp/notehead/pkg/cmd"
)

var boundsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

func NewCmdSection(l *state.Loader) *cobra.Command {
	var render bool

	cmd := &cobra.Command{
		Use:   "section <note> <header>",
		Short: "Show the content a header owns for insertion.",
		Long: heredoc.Doc(`
			Show where the section of a header starts and where its last line of
			content is. The section stops at the next header of any level, which
			is where new content would be inserted.

			The header must match a line of the note exactly, including the
			hashes and the single space after them.

			Examples:
			  notehead section daily/2023-01-01 "## Todo"
			  notehead section code/python "## Datetime" --render
		`),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := l.State()
			if err != nil {
				return err
			}
			return run(cmd, s, args[0], args[1], render)
		},
	}

	cmd.Flags().BoolVarP(&render, "render", "r", false, "Render the section as Markdown.")

	return cmd
}

func run(cmd *cobra.Command, s *state.State, arg, header string, render bool) error {
	rel, err := pathcmd.ResolveNotePath(s, arg)
	if err != nil {
		return err
	}

	text, err := s.Vault.Read(rel)
	if err != nil {
		return err
	}

	bounds, err := headers.Resolve(text, header)
	if err != nil {
		return fmt.Errorf("%s: %w", rel, err)
	}

	out := cmd.OutOrStdout()
	lines := headers.Lines(text)

	if !bounds.HasContent() {
		fmt.Fprintln(out, boundsStyle.Render(fmt.Sprintf("line %d, no content", bounds.Start+1)))
		return nil
	}

	fmt.Fprintln(out, boundsStyle.Render(
		fmt.Sprintf("lines %d-%d", bounds.Start+1, bounds.LastContent+1),
	))

	body := strings.Join(lines[bounds.Start:bounds.LastContent+1], "\n")
	if render {
		fmt.Fprint(out, fzf.RenderMarkdown(body, 100))
		return nil
	}
	fmt.Fprintln(out, body)
	return nil
}
