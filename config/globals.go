package config

// GlobalFlags holds the resolved global settings shared by all commands.
// Values are merged in main from flags, environment variables, the
// project-local .lagoon.yml and the saved auth config, in that precedence.
type GlobalFlags struct {
	// APIBaseURL is the GraphQL endpoint of the Lagoon API.
	APIBaseURL string
	// AuthToken is the bearer token sent with every API request.
	AuthToken string

	// Verbose enables debug logging to stderr.
	Verbose bool
	// NoColor disables ANSI colour output.
	NoColor bool
	// Force skips interactive confirmation on destructive commands.
	Force bool
}

// Global is the shared instance of GlobalFlags.
var Global = GlobalFlags{}
