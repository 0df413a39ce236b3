package customer

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nbaosullivan/lagoon/api"
	"github.com/nbaosullivan/lagoon/config"
	"github.com/nbaosullivan/lagoon/internal/tui"
	"github.com/nbaosullivan/lagoon/util/printer"
)

// GetRootCmd returns the `lagoon customer` command group.
func GetRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "customer",
		Short: "Manage Lagoon customers",
	}

	rootCmd.AddCommand(newListCmd())

	return rootCmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.New(config.Global.APIBaseURL, config.Global.AuthToken)

			result, err := tui.Await("Fetching customers", func() (any, error) {
				return client.Customers(cmd.Context())
			})
			if err != nil {
				return err
			}
			customers := result.([]api.Customer)

			rows := make([][]string, len(customers))
			for i, c := range customers {
				rows[i] = []string{strconv.Itoa(c.ID), c.Name, c.Comment, c.Created}
			}
			return printer.Table(cmd.OutOrStdout(),
				[]string{"ID", "Name", "Comment", "Created"}, rows)
		},
	}
}
