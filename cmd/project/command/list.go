package command

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nbaosullivan/lagoon/api"
	"github.com/nbaosullivan/lagoon/config"
	"github.com/nbaosullivan/lagoon/internal/tui"
	"github.com/nbaosullivan/lagoon/util/printer"
)

// NewListProjectCmd wires up:
//
//	lagoon project list
func NewListProjectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.New(config.Global.APIBaseURL, config.Global.AuthToken)

			result, err := tui.Await("Fetching projects", func() (any, error) {
				return client.Projects(cmd.Context())
			})
			if err != nil {
				return err
			}
			projects := result.([]api.Project)

			rows := make([][]string, len(projects))
			for i, p := range projects {
				rows[i] = []string{
					strconv.Itoa(p.ID), p.Name, p.GitURL, p.Branches, p.Pullrequests, p.Created,
				}
			}
			return printer.Table(cmd.OutOrStdout(),
				[]string{"ID", "Name", "Git URL", "Branches", "Pull Requests", "Created"},
				rows)
		},
	}
}
