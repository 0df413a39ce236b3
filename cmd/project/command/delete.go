package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nbaosullivan/lagoon/api"
	"github.com/nbaosullivan/lagoon/config"
	"github.com/nbaosullivan/lagoon/internal/tui"
)

// NewDeleteProjectCmd wires up:
//
//	lagoon project delete <name>
func NewDeleteProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a project",
		Long:  "Deletes the named project. Asks for confirmation unless --force is given.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			if !config.Global.Force {
				confirmed, err := tui.ConfirmDelete("project", name)
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			client := api.New(config.Global.APIBaseURL, config.Global.AuthToken)
			if err := client.DeleteProject(cmd.Context(), name); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Project %s deleted.\n", name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&config.Global.Force, "force", false, "skip the confirmation prompt")

	return cmd
}
