package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nbaosullivan/lagoon/cmd/auth"
	"github.com/nbaosullivan/lagoon/cmd/customer"
	"github.com/nbaosullivan/lagoon/cmd/openshift"
	"github.com/nbaosullivan/lagoon/cmd/project"
	"github.com/nbaosullivan/lagoon/config"
	"github.com/nbaosullivan/lagoon/internal/style"
	"github.com/nbaosullivan/lagoon/internal/terminal"
)

// version is set via ldflags during build
var version = "dev"

// commands that must work without stored credentials
func skipsAuth(cmd *cobra.Command) bool {
	path := cmd.CommandPath()
	if strings.HasPrefix(path, "lagoon auth") || path == "lagoon version" {
		return true
	}
	return cmd.Name() == "help" || cmd.Name() == "completion" || cmd.IsAdditionalHelpTopicCommand()
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "lagoon",
		Short:         "CLI for the Lagoon application delivery platform",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			termInfo := terminal.Detect(config.Global.NoColor)
			style.Init(termInfo.ColorEnabled)

			if config.Global.Verbose {
				log.Logger = log.Output(zerolog.ConsoleWriter{
					Out:        os.Stderr,
					TimeFormat: time.RFC3339,
					NoColor:    !termInfo.ColorEnabled,
				})
			} else {
				log.Logger = zerolog.Nop()
			}

			resolveConfig()

			if skipsAuth(cmd) {
				return nil
			}
			if config.Global.APIBaseURL == "" || config.Global.AuthToken == "" {
				fmt.Fprintln(os.Stderr, "Not logged in.")
				fmt.Fprintln(os.Stderr, style.Hint("Run 'lagoon auth login' to authenticate."))
				os.Exit(1)
			}
			return nil
		},
	}

	// Persistent flags available to all commands, bound to the global config.
	rootCmd.PersistentFlags().StringVar(&config.Global.APIBaseURL, "api-url", "",
		"GraphQL endpoint of the Lagoon API (overrides saved config)")
	rootCmd.PersistentFlags().StringVar(&config.Global.AuthToken, "token", "",
		"Authentication token (overrides saved config)")
	rootCmd.PersistentFlags().BoolVarP(&config.Global.Verbose, "verbose", "v", false,
		"Enable verbose logging to console")
	rootCmd.PersistentFlags().BoolVar(&config.Global.NoColor, "no-color", false,
		"Disable colour output (also respects NO_COLOR env)")

	rootCmd.AddCommand(auth.GetRootCmd())
	rootCmd.AddCommand(project.GetRootCmd())
	rootCmd.AddCommand(customer.GetRootCmd())
	rootCmd.AddCommand(openshift.GetRootCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		if style.Enabled {
			fmt.Fprintln(os.Stderr, style.Error.Render(err.Error()))
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// resolveConfig fills config.Global values not set by flags, in order of
// precedence: environment, project-local .lagoon.yml, saved auth config.
func resolveConfig() {
	if config.Global.APIBaseURL == "" {
		config.Global.APIBaseURL = os.Getenv("LAGOON_API_URL")
	}
	if config.Global.AuthToken == "" {
		config.Global.AuthToken = os.Getenv("LAGOON_TOKEN")
	}

	if config.Global.APIBaseURL == "" {
		if cwd, err := os.Getwd(); err == nil {
			if path, err := config.FindProjectFile(cwd); err == nil {
				if pf, err := config.LoadProjectFile(path); err == nil && pf.API != "" {
					config.Global.APIBaseURL = pf.API
					log.Debug().Str("path", path).Msg("using API endpoint from .lagoon.yml")
				}
			}
		}
	}

	authCfg, err := auth.LoadConfig()
	if err != nil {
		log.Debug().Err(err).Msg("could not load saved auth config")
		return
	}
	if config.Global.APIBaseURL == "" {
		config.Global.APIBaseURL = authCfg.APIURL
	}
	if config.Global.AuthToken == "" {
		config.Global.AuthToken = authCfg.Token
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "lagoon version", version)
		},
	}
}
