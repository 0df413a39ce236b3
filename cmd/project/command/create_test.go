package command

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/nbaosullivan/lagoon/api"
	"github.com/nbaosullivan/lagoon/internal/style"
	"github.com/nbaosullivan/lagoon/internal/tui"
)

type fakeCreator struct {
	opts      *api.ProjectOptions
	optsErr   error
	created   *api.Project
	createErr error
	gotInput  *api.ProjectInput
}

func (f *fakeCreator) ProjectOptions(ctx context.Context) (*api.ProjectOptions, error) {
	if f.optsErr != nil {
		return nil, f.optsErr
	}
	return f.opts, nil
}

func (f *fakeCreator) AddProject(ctx context.Context, in api.ProjectInput) (*api.Project, error) {
	f.gotInput = &in
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

// scriptedPrompter answers prompts from canned maps and records which
// Select prompts were actually shown.
type scriptedPrompter struct {
	selects  map[string]int    // Select title -> chosen value
	answers  map[string]string // Input title -> typed answer; missing = accept default
	selected []string
}

func (p *scriptedPrompter) Select(title string, choices []tui.Choice) (int, error) {
	p.selected = append(p.selected, title)
	return p.selects[title], nil
}

func (p *scriptedPrompter) Input(title, defaultValue string, validate func(string) error) (string, error) {
	answer, ok := p.answers[title]
	if !ok {
		answer = defaultValue
	}
	if validate != nil {
		if err := validate(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func plainOutput(t *testing.T) {
	t.Helper()
	pterm.DisableColor()
	style.Enabled = false
	t.Cleanup(func() {
		pterm.EnableColor()
		style.Enabled = true
	})
}

func TestResolveOption(t *testing.T) {
	t.Run("single entry is auto-filled with a notice", func(t *testing.T) {
		prompt := &scriptedPrompter{}
		var out bytes.Buffer
		value, err := resolveOption("Customer", []api.Option{{Value: 3, Name: "Acme"}}, prompt, &out)
		assert.NoError(t, err)
		assert.Equal(t, 3, value)
		assert.Contains(t, out.String(), `Using customer "Acme"`)
		assert.Empty(t, prompt.selected, "prompt must be skipped for a single entry")
	})

	t.Run("two entries show the prompt", func(t *testing.T) {
		prompt := &scriptedPrompter{selects: map[string]int{"Customer": 2}}
		var out bytes.Buffer
		value, err := resolveOption("Customer", []api.Option{
			{Value: 1, Name: "Acme"},
			{Value: 2, Name: "Umbrella"},
		}, prompt, &out)
		assert.NoError(t, err)
		assert.Equal(t, 2, value)
		assert.Equal(t, []string{"Customer"}, prompt.selected)
		assert.Empty(t, out.String())
	})

	t.Run("empty list still shows the prompt", func(t *testing.T) {
		prompt := &scriptedPrompter{selects: map[string]int{}}
		var out bytes.Buffer
		_, err := resolveOption("Openshift", nil, prompt, &out)
		assert.NoError(t, err)
		assert.Equal(t, []string{"Openshift"}, prompt.selected)
	})
}

func TestValidateGitURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{url: "https://github.com/org/repo", wantErr: false},
		{url: "https://gitlab.com/org/repo", wantErr: false},
		{url: "https://bitbucket.org/org/repo", wantErr: false},
		{url: "https://example.com/x.git", wantErr: false},
		{url: "not-a-url", wantErr: true},
		{url: "https://example.com/repo", wantErr: true},
		{url: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			err := validateGitURL(tt.url)
			if tt.wantErr {
				assert.EqualError(t, err, "Please enter a valid Git URL.")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateProjectName(t *testing.T) {
	assert.EqualError(t, validateProjectName(""), "Please enter a project name.")
	assert.NoError(t, validateProjectName("demo"))
}

func TestCreateFetchErrorAbortsPipeline(t *testing.T) {
	client := &fakeCreator{optsErr: errors.New("graphql: Unauthorized")}
	var out bytes.Buffer

	err := runCreate(context.Background(), client, &scriptedPrompter{}, &out)
	assert.Error(t, err)
	assert.Nil(t, client.gotInput, "creation must not be issued when the fetch fails")
	assert.Empty(t, out.String())
}

func TestCreateSubmitErrorSkipsTable(t *testing.T) {
	plainOutput(t)
	client := &fakeCreator{
		opts: &api.ProjectOptions{
			Customers:  []api.Option{{Value: 1, Name: "Acme"}},
			Openshifts: []api.Option{{Value: 7, Name: "eu-west"}},
		},
		createErr: errors.New("graphql: Duplicate project name"),
	}
	prompt := &scriptedPrompter{answers: map[string]string{
		"Project name": "demo",
		"Git URL":      "https://github.com/acme/demo.git",
	}}
	var out bytes.Buffer

	err := runCreate(context.Background(), client, prompt, &out)
	assert.Error(t, err)
	assert.NotContains(t, out.String(), "Project Name", "no table on creation failure")
	assert.NotContains(t, out.String(), "created")
}

func TestCreateEndToEnd(t *testing.T) {
	plainOutput(t)
	client := &fakeCreator{
		opts: &api.ProjectOptions{
			Customers: []api.Option{{Value: 1, Name: "Acme"}},
			Openshifts: []api.Option{
				{Value: 10, Name: "eu-west"},
				{Value: 11, Name: "us-east"},
			},
		},
		created: &api.Project{
			ID:                  42,
			Name:                "demo",
			GitURL:              "https://github.com/acme/demo.git",
			ActiveSystemsDeploy: "lagoon_openshiftBuildDeploy",
			ActiveSystemsRemove: "lagoon_openshiftRemove",
			Branches:            "true",
			Created:             "2026-08-30 10:00:00",
		},
	}
	client.created.Customer.Name = "Acme"
	client.created.Openshift.Name = "us-east"

	prompt := &scriptedPrompter{
		selects: map[string]int{"Openshift": 11},
		answers: map[string]string{
			"Project name": "demo",
			"Git URL":      "https://github.com/acme/demo.git",
		},
	}
	var out bytes.Buffer

	err := runCreate(context.Background(), client, prompt, &out)
	assert.NoError(t, err)

	// customer auto-filled, openshift selected
	assert.Equal(t, []string{"Openshift"}, prompt.selected)
	assert.Contains(t, out.String(), `Using customer "Acme"`)

	// the mutation carries exactly the collected nine fields
	assert.Equal(t, &api.ProjectInput{
		Customer:              1,
		Name:                  "demo",
		GitURL:                "https://github.com/acme/demo.git",
		Openshift:             11,
		ActiveSystemsDeploy:   "lagoon_openshiftBuildDeploy",
		ActiveSystemsRemove:   "lagoon_openshiftRemove",
		Branches:              "true",
		Pullrequests:          "",
		ProductionEnvironment: "",
	}, client.gotInput)

	assert.Contains(t, out.String(), "Project demo created.")

	// the first table row is the project name
	nameIdx := strings.Index(out.String(), "Project Name")
	customerIdx := strings.Index(out.String(), "Customer")
	assert.GreaterOrEqual(t, nameIdx, 0)
	assert.Greater(t, customerIdx, nameIdx)
}

func TestProjectDetailsIsPure(t *testing.T) {
	p := &api.Project{
		Name:                "demo",
		GitURL:              "https://github.com/acme/demo.git",
		ActiveSystemsDeploy: "lagoon_openshiftBuildDeploy",
		ActiveSystemsRemove: "lagoon_openshiftRemove",
		Branches:            "true",
		Pullrequests:        "",
		Created:             "2026-08-30 10:00:00",
	}
	p.Customer.Name = "Acme"
	p.Openshift.Name = "eu-west"

	first := projectDetails(p)
	second := projectDetails(p)
	assert.Equal(t, first, second)

	assert.Equal(t, [2]string{"Project Name", "demo"}, first[0])
	assert.Equal(t, [2]string{"Created", "2026-08-30 10:00:00"}, first[len(first)-1])
	assert.Len(t, first, 9)
}
