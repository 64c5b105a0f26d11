package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/notehead/internal/config"
	"github.com/Paintersrp/notehead/internal/constants"
	"github.com/Paintersrp/notehead/internal/state"
	"github.com/Paintersrp/notehead/pkg/cmd/daily"
	"github.com/Paintersrp/notehead/pkg/cmd/headers"
	"github.com/Paintersrp/notehead/pkg/cmd/insert"
	"github.com/Paintersrp/notehead/pkg/cmd/search"
	"github.com/Paintersrp/notehead/pkg/cmd/section"
	"github.com/Paintersrp/notehead/pkg/cmd/settings"
)

func NewCmdRoot(l *state.Loader) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:     "notehead",
		Aliases: []string{"nh"},
		Short:   "Search and edit Markdown notes by their headers.",
		Long: heredoc.Doc(`
			notehead indexes the headers of the notes in a vault, answers
			path:header glob queries with deep links into the note app, and
			inserts content under a header of a note or of today's daily note.

			  notehead search 'python:datetime'
			  notehead insert inbox "## Todo" - water the plants
			  notehead daily append "## Notes" "met with the team"
		`),
		Version:       constants.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.String("vault", "", "Vault directory, overriding the active workspace.")
	flags.StringP("workspace", "w", "", "Workspace to use for this command.")
	flags.BoolP("verbose", "v", false, "Log debug diagnostics to stderr.")

	bindings := map[string]string{
		config.KeyVaultDir: "vault",
		state.KeyWorkspace: "workspace",
		state.KeyVerbose:   "verbose",
	}
	for key, flag := range bindings {
		if err := l.Viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, err
		}
	}

	cmd.AddCommand(
		search.NewCmdSearch(l),
		headers.NewCmdHeaders(l),
		section.NewCmdSection(l),
		insert.NewCmdInsert(l),
		daily.NewCmdDaily(l),
		settings.NewCmdSettings(l),
	)

	return cmd, nil
}
