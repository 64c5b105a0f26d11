package headers

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	noteheaders "github.com/Paintersrp/notehead/internal/headers"
	"github.com/Paintersrp/notehead/internal/state"
	pathcmd "github.com/Paintersrp/notehead/pkg/cmd"
)

var (
	rangeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(9)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EE6FF8"))
)

func NewCmdHeaders(l *state.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "headers <note> [header]",
		Aliases: []string{"h"},
		Short:   "List the header sections of a note.",
		Long: heredoc.Doc(`
			List every header of a note with the lines its section spans.

			A section runs until the next header of the same or a shallower
			level, so a parent section includes its nested children. Line
			numbers start at 1. Given a header, only that section is shown.

			Examples:
			  notehead headers daily/2023-01-01
			  notehead headers daily/2023-01-01 "## Todo"
			  notehead headers "Notes 2023/01-01.md"
		`),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := l.State()
			if err != nil {
				return err
			}
			header := ""
			if len(args) == 2 {
				header = args[1]
			}
			return run(cmd, s, args[0], header)
		},
	}

	return cmd
}

func run(cmd *cobra.Command, s *state.State, arg, header string) error {
	rel, err := pathcmd.ResolveNotePath(s, arg)
	if err != nil {
		return err
	}

	text, err := s.Vault.Read(rel)
	if err != nil {
		return err
	}

	sections := noteheaders.Index(text)
	out := cmd.OutOrStdout()
	if len(sections) == 0 {
		fmt.Fprintf(out, "No headers in %s\n", rel)
		return nil
	}

	if header != "" {
		sec, ok := noteheaders.Find(sections, header)
		if !ok {
			return fmt.Errorf("%w: %q in %s", noteheaders.ErrHeaderNotFound, header, rel)
		}
		sections = []noteheaders.Section{sec}
	}

	for _, sec := range sections {
		span := fmt.Sprintf("%d-%d", sec.Start+1, sec.End+1)
		indent := strings.Repeat("  ", sec.Level-1)
		fmt.Fprintln(out, rangeStyle.Render(span)+indent+headerStyle.Render(sec.Text))
	}
	return nil
}
