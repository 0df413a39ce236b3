package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nbaosullivan/lagoon/api"
	"github.com/nbaosullivan/lagoon/internal/style"
)

func getStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current authentication state",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if cfg.APIURL == "" || cfg.Token == "" {
				fmt.Fprintln(out, "Not logged in.")
				fmt.Fprintln(out, style.Hint("Run 'lagoon auth login' to authenticate."))
				return nil
			}

			fmt.Fprintf(out, "Endpoint: %s\n", cfg.APIURL)
			fmt.Fprintf(out, "Token:    %s\n", maskToken(cfg.Token))

			if err := api.New(cfg.APIURL, cfg.Token).Ping(cmd.Context()); err != nil {
				fmt.Fprintln(out, style.Warning.Render("Token was rejected by the API."))
				return nil
			}
			fmt.Fprintln(out, style.Success.Render("Token is valid."))
			return nil
		},
	}
}
