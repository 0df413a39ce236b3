package openshift

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nbaosullivan/lagoon/api"
	"github.com/nbaosullivan/lagoon/config"
	"github.com/nbaosullivan/lagoon/internal/tui"
	"github.com/nbaosullivan/lagoon/util/printer"
)

// GetRootCmd returns the `lagoon openshift` command group.
func GetRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "openshift",
		Aliases: []string{"os"},
		Short:   "Manage deployment targets",
	}

	rootCmd.AddCommand(newListCmd())

	return rootCmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all deployment targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.New(config.Global.APIBaseURL, config.Global.AuthToken)

			result, err := tui.Await("Fetching deployment targets", func() (any, error) {
				return client.Openshifts(cmd.Context())
			})
			if err != nil {
				return err
			}
			targets := result.([]api.Openshift)

			rows := make([][]string, len(targets))
			for i, o := range targets {
				rows[i] = []string{strconv.Itoa(o.ID), o.Name, o.ConsoleURL, o.Created}
			}
			return printer.Table(cmd.OutOrStdout(),
				[]string{"ID", "Name", "Console URL", "Created"}, rows)
		},
	}
}
