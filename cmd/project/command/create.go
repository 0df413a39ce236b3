package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/nbaosullivan/lagoon/api"
	"github.com/nbaosullivan/lagoon/config"
	"github.com/nbaosullivan/lagoon/internal/style"
	"github.com/nbaosullivan/lagoon/internal/tui"
	"github.com/nbaosullivan/lagoon/util/printer"
)

// Defaults for the build-system fields of a new project. The legacy schema
// keeps branches as a string, so "true" here is the literal string.
const (
	defaultActiveSystemsDeploy = "lagoon_openshiftBuildDeploy"
	defaultActiveSystemsRemove = "lagoon_openshiftRemove"
	defaultBranches            = "true"
)

// projectCreator is the slice of the API client the create flow needs.
type projectCreator interface {
	ProjectOptions(ctx context.Context) (*api.ProjectOptions, error)
	AddProject(ctx context.Context, input api.ProjectInput) (*api.Project, error)
}

// NewCreateProjectCmd wires up:
//
//	lagoon project create
func NewCreateProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long: heredoc.Doc(`
			Interactively creates a new Lagoon project.

			The command fetches the available customers and openshifts, asks for
			the project attributes and submits the new project to the API. When
			only one customer or openshift exists it is selected automatically.`),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.New(config.Global.APIBaseURL, config.Global.AuthToken)
			return runCreate(cmd.Context(), client, tui.FormPrompter{}, cmd.OutOrStdout())
		},
	}

	return cmd
}

// runCreate is the sequential create pipeline: fetch reference lists, prompt
// for attributes, submit the mutation, print the result. Each step aborts
// the rest on error.
func runCreate(ctx context.Context, client projectCreator, prompt tui.Prompter, out io.Writer) error {
	opts, err := client.ProjectOptions(ctx)
	if err != nil {
		return err
	}

	input, err := collectProjectInput(opts, prompt, out)
	if err != nil {
		return err
	}

	created, err := client.AddProject(ctx, *input)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, style.Success.Render(fmt.Sprintf("Project %s created.", created.Name)))
	return printer.Details(out, projectDetails(created))
}

// collectProjectInput runs the prompt sequence. Prompt order is part of the
// command's contract and must not change.
func collectProjectInput(opts *api.ProjectOptions, prompt tui.Prompter, out io.Writer) (*api.ProjectInput, error) {
	var in api.ProjectInput
	var err error

	if in.Customer, err = resolveOption("Customer", opts.Customers, prompt, out); err != nil {
		return nil, err
	}
	if in.Name, err = prompt.Input("Project name", "", validateProjectName); err != nil {
		return nil, err
	}
	if in.GitURL, err = prompt.Input("Git URL", "", validateGitURL); err != nil {
		return nil, err
	}
	if in.Openshift, err = resolveOption("Openshift", opts.Openshifts, prompt, out); err != nil {
		return nil, err
	}
	if in.ActiveSystemsDeploy, err = prompt.Input("Active systems deploy", defaultActiveSystemsDeploy, nil); err != nil {
		return nil, err
	}
	if in.ActiveSystemsRemove, err = prompt.Input("Active systems remove", defaultActiveSystemsRemove, nil); err != nil {
		return nil, err
	}
	if in.Branches, err = prompt.Input("Branches", defaultBranches, nil); err != nil {
		return nil, err
	}
	if in.Pullrequests, err = prompt.Input("Pull requests", "", nil); err != nil {
		return nil, err
	}
	if in.ProductionEnvironment, err = prompt.Input("Production environment", "", nil); err != nil {
		return nil, err
	}

	return &in, nil
}

// resolveOption answers a selection without prompting when exactly one
// option exists, printing a notice instead. Any other list length defers to
// the prompter.
func resolveOption(label string, options []api.Option, prompt tui.Prompter, out io.Writer) (int, error) {
	if len(options) == 1 {
		fmt.Fprintf(out, "Using %s %q, the only one found.\n", strings.ToLower(label), options[0].Name)
		return options[0].Value, nil
	}

	choices := make([]tui.Choice, len(options))
	for i, o := range options {
		choices[i] = tui.Choice{Label: o.Name, Value: o.Value}
	}
	return prompt.Select(label, choices)
}

func validateProjectName(name string) error {
	if name == "" {
		return errors.New("Please enter a project name.")
	}
	return nil
}

var gitHostPattern = regexp.MustCompile(`github\.com|bitbucket\.org|gitlab\.com`)

// validateGitURL accepts absolute URLs that point at a known git host or
// end in .git.
func validateGitURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return errors.New("Please enter a valid Git URL.")
	}
	if gitHostPattern.MatchString(raw) || strings.HasSuffix(raw, ".git") {
		return nil
	}
	return errors.New("Please enter a valid Git URL.")
}

// projectDetails maps a created project onto the confirmation table rows.
// Values come straight from the API response.
func projectDetails(p *api.Project) [][2]string {
	return [][2]string{
		{"Project Name", p.Name},
		{"Customer", p.Customer.Name},
		{"Git URL", p.GitURL},
		{"Active Systems Deploy", p.ActiveSystemsDeploy},
		{"Active Systems Remove", p.ActiveSystemsRemove},
		{"Branches", p.Branches},
		{"Pull Requests", p.Pullrequests},
		{"Openshift", p.Openshift.Name},
		{"Created", p.Created},
	}
}
