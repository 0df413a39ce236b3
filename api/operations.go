package api

import "context"

const projectOptionsQuery = `
query {
  allCustomers {
    value: id
    name
  }
  allOpenshifts {
    value: id
    name
  }
}`

// ProjectOptions fetches the customer and openshift lists a new project can
// reference. A list missing from the response is returned empty.
func (c *Client) ProjectOptions(ctx context.Context) (*ProjectOptions, error) {
	var resp struct {
		AllCustomers  []Option `json:"allCustomers"`
		AllOpenshifts []Option `json:"allOpenshifts"`
	}
	if err := c.run(ctx, projectOptionsQuery, nil, &resp); err != nil {
		return nil, err
	}
	return &ProjectOptions{
		Customers:  resp.AllCustomers,
		Openshifts: resp.AllOpenshifts,
	}, nil
}

const addProjectMutation = `
mutation AddProject($input: ProjectInput!) {
  addProject(input: $input) {
    id
    name
    customer {
      name
    }
    git_url
    active_systems_deploy
    active_systems_remove
    branches
    pullrequests
    openshift {
      name
    }
    created
  }
}`

// AddProject creates a project and returns the server's echo of the new
// record.
func (c *Client) AddProject(ctx context.Context, input ProjectInput) (*Project, error) {
	var resp struct {
		AddProject Project `json:"addProject"`
	}
	vars := map[string]interface{}{"input": input}
	if err := c.run(ctx, addProjectMutation, vars, &resp); err != nil {
		return nil, err
	}
	return &resp.AddProject, nil
}

const allProjectsQuery = `
query {
  allProjects {
    id
    name
    git_url
    branches
    pullrequests
    created
  }
}`

// Projects lists all projects visible to the token.
func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	var resp struct {
		AllProjects []Project `json:"allProjects"`
	}
	if err := c.run(ctx, allProjectsQuery, nil, &resp); err != nil {
		return nil, err
	}
	return resp.AllProjects, nil
}

const deleteProjectMutation = `
mutation DeleteProject($input: DeleteProjectInput!) {
  deleteProject(input: $input)
}`

// DeleteProject removes a project by name.
func (c *Client) DeleteProject(ctx context.Context, name string) error {
	var resp struct {
		DeleteProject string `json:"deleteProject"`
	}
	vars := map[string]interface{}{
		"input": map[string]string{"project": name},
	}
	return c.run(ctx, deleteProjectMutation, vars, &resp)
}

const allCustomersQuery = `
query {
  allCustomers {
    id
    name
    comment
    created
  }
}`

// Customers lists all customers visible to the token.
func (c *Client) Customers(ctx context.Context) ([]Customer, error) {
	var resp struct {
		AllCustomers []Customer `json:"allCustomers"`
	}
	if err := c.run(ctx, allCustomersQuery, nil, &resp); err != nil {
		return nil, err
	}
	return resp.AllCustomers, nil
}

const allOpenshiftsQuery = `
query {
  allOpenshifts {
    id
    name
    console_url
    created
  }
}`

// Openshifts lists all deployment targets visible to the token.
func (c *Client) Openshifts(ctx context.Context) ([]Openshift, error) {
	var resp struct {
		AllOpenshifts []Openshift `json:"allOpenshifts"`
	}
	if err := c.run(ctx, allOpenshiftsQuery, nil, &resp); err != nil {
		return nil, err
	}
	return resp.AllOpenshifts, nil
}

const pingQuery = `
query {
  allProjects {
    id
  }
}`

// Ping issues a cheap query to verify the endpoint is reachable and the
// token is accepted.
func (c *Client) Ping(ctx context.Context) error {
	var resp struct {
		AllProjects []struct {
			ID int `json:"id"`
		} `json:"allProjects"`
	}
	return c.run(ctx, pingQuery, nil, &resp)
}
