package flags

import "github.com/spf13/cobra"

func AddCreate(cmd *cobra.Command) {
	cmd.Flags().
		BoolP("create", "c", false, "Append the header to the note when it is missing.")
}

func HandleCreate(cmd *cobra.Command) (bool, error) {
	return cmd.Flags().GetBool("create")
}
