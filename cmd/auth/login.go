package auth

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nbaosullivan/lagoon/api"
	"github.com/nbaosullivan/lagoon/internal/style"
)

// readToken reads the API token from stdin without echoing it.
func readToken(prompt string) (string, error) {
	fmt.Print(prompt)
	token, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}
	return strings.TrimSpace(string(token)), nil
}

// readInput reads a line of text from stdin.
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(input), nil
}

// normalizeEndpoint turns what the operator typed into a full GraphQL
// endpoint URL: a missing scheme defaults to https, a missing path to
// /graphql.
func normalizeEndpoint(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("no API endpoint given")
	}
	if !strings.Contains(input, "://") {
		input = "https://" + input
	}

	u, err := url.Parse(input)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid API endpoint %q", input)
	}
	if u.Path == "" || u.Path == "/" {
		u.Path = "/graphql"
	}
	return u.String(), nil
}

// maskToken shortens a token for display, keeping enough to recognise it.
func maskToken(token string) string {
	if len(token) <= 8 {
		return "********"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

func getLoginCmd() *cobra.Command {
	var (
		apiURL string
		token  string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with a Lagoon API",
		Long:  "Stores the API endpoint and token in ~/.lagoon/auth.json after verifying them against the API.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if apiURL == "" {
				apiURL, err = readInput("API endpoint: ")
				if err != nil {
					return err
				}
			}
			endpoint, err := normalizeEndpoint(apiURL)
			if err != nil {
				return err
			}

			if token == "" {
				token, err = readToken("API token: ")
				if err != nil {
					return err
				}
			}
			if token == "" {
				return fmt.Errorf("no token given")
			}

			if err := api.New(endpoint, token).Ping(cmd.Context()); err != nil {
				return fmt.Errorf("could not verify credentials against %s: %w", endpoint, err)
			}

			if err := SaveConfig(Config{APIURL: endpoint, Token: token}); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), style.Success.Render("Logged in to "+endpoint))
			return nil
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", "", "GraphQL endpoint of the Lagoon API")
	cmd.Flags().StringVar(&token, "token", "", "API token (prompted when omitted)")

	return cmd
}
