package settings

import (
	"fmt"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/notehead/internal/config"
	"github.com/Paintersrp/notehead/internal/constants"
	"github.com/Paintersrp/notehead/internal/state"
)

func NewCmdSettings(l *state.Loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"settings"},
		Short:   "Create or inspect the notehead configuration.",
		Long: heredoc.Doc(`
			The configuration lives in ~/.notehead/config.yaml and holds one or
			more workspaces, each pointing at a vault. Any value of the active
			workspace can be overridden with a NOTEHEAD_ environment variable,
			e.g. NOTEHEAD_VAULTDIR or NOTEHEAD_DAILY_NOTE_FORMAT, or from a .env
			file in the working directory.
		`),
	}

	cmd.AddCommand(NewCmdInit(l), newCmdShow(l))

	return cmd
}

func NewCmdInit(l *state.Loader) *cobra.Command {
	return &cobra.Command{
		Use:     "init <vault-dir>",
		Aliases: []string{"i"},
		Short:   "Point the active workspace at a vault and save the config.",
		Long: heredoc.Doc(`
			Point a workspace at a vault and save the config.

			Without --workspace the current workspace is updated. A named
			workspace is created when missing and becomes the current one.
		`),
		Example: "notehead config init ~/Documents/vault\nnotehead --workspace work config init ~/work/vault",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := state.GetHomeDir()
			if err != nil {
				return err
			}

			dir, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("failed to resolve vault directory: %w", err)
			}

			cfg, err := config.Init(home, l.Viper.GetString(state.KeyWorkspace), dir)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (workspace %q -> %s)\n", cfg.Path(), cfg.CurrentWorkspace, dir)
			return nil
		},
	}
}

func newCmdShow(l *state.Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the active workspace after overrides.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := state.GetHomeDir()
			if err != nil {
				return err
			}
			if err := config.LoadEnvFiles(constants.DefaultEnvFile); err != nil {
				return err
			}

			cfg, err := state.LoadConfig(home, l.Viper)
			if err != nil {
				return err
			}
			ws, err := cfg.ActiveWorkspace()
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(map[string]*config.Workspace{cfg.CurrentWorkspace: ws})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", cfg.Path())
			fmt.Fprint(out, string(data))
			if err := ws.Validate(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			}
			return nil
		},
	}
}
