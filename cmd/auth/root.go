package auth

import "github.com/spf13/cobra"

// GetRootCmd returns the `lagoon auth` command group.
func GetRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage authentication",
		Long:  "Commands to log in to a Lagoon API and inspect the stored credentials",
	}

	rootCmd.AddCommand(getLoginCmd())
	rootCmd.AddCommand(getLogoutCmd())
	rootCmd.AddCommand(getStatusCmd())

	return rootCmd
}
