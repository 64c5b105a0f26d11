package flags

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"
)

// AddDate registers --date as a persistent flag so subcommands inherit it.
func AddDate(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringP("date", "d", "", "Date of the daily note, e.g. 2023-01-01 or \"Jan 2, 2023\". Defaults to today.")
}

// HandleDate parses the --date flag in local time, falling back to now when
// the flag is empty.
func HandleDate(cmd *cobra.Command, now time.Time) (time.Time, error) {
	f := cmd.Flag("date")
	if f == nil {
		return now, nil
	}
	raw := strings.TrimSpace(f.Value.String())
	if raw == "" {
		return now, nil
	}

	t, err := dateparse.ParseLocal(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: %w", raw, err)
	}
	return t, nil
}
