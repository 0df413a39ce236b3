package project

import (
	"github.com/spf13/cobra"

	"github.com/nbaosullivan/lagoon/cmd/project/command"
)

// GetRootCmd returns the `lagoon project` command group.
func GetRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"proj"},
		Short:   "Manage Lagoon projects",
		Long:    `Commands to create, list and delete Lagoon projects`,
	}

	rootCmd.AddCommand(command.NewCreateProjectCmd())
	rootCmd.AddCommand(command.NewListProjectCmd())
	rootCmd.AddCommand(command.NewDeleteProjectCmd())

	return rootCmd
}
