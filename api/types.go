package api

// Option is a selectable reference entry (a customer or an openshift). The
// API aliases the numeric id to "value" so option lists can be fed straight
// into a chooser.
type Option struct {
	Value int    `json:"value"`
	Name  string `json:"name"`
}

// ProjectOptions holds the reference lists a new project chooses from.
type ProjectOptions struct {
	Customers  []Option
	Openshifts []Option
}

// ProjectInput is the payload of the addProject mutation. Field names follow
// the legacy API schema; Branches and Pullrequests are string-typed there
// (a branch name, a regex, "true" or "false"), not booleans.
type ProjectInput struct {
	Customer              int    `json:"customer"`
	Name                  string `json:"name"`
	GitURL                string `json:"git_url"`
	Openshift             int    `json:"openshift"`
	ActiveSystemsDeploy   string `json:"active_systems_deploy"`
	ActiveSystemsRemove   string `json:"active_systems_remove"`
	Branches              string `json:"branches"`
	Pullrequests          string `json:"pullrequests"`
	ProductionEnvironment string `json:"production_environment"`
}

// Project is a project record as returned by the API.
type Project struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	GitURL              string `json:"git_url"`
	ActiveSystemsDeploy string `json:"active_systems_deploy"`
	ActiveSystemsRemove string `json:"active_systems_remove"`
	Branches            string `json:"branches"`
	Pullrequests        string `json:"pullrequests"`
	Created             string `json:"created"`
	Customer            struct {
		Name string `json:"name"`
	} `json:"customer"`
	Openshift struct {
		Name string `json:"name"`
	} `json:"openshift"`
}

// Customer is a customer record as returned by allCustomers.
type Customer struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Comment string `json:"comment"`
	Created string `json:"created"`
}

// Openshift is a deployment target record as returned by allOpenshifts.
type Openshift struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	ConsoleURL string `json:"console_url"`
	Created    string `json:"created"`
}
