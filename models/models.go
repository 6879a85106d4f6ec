// Package models defines the core data types for controlsync,
// a tool that pushes new default input-control values into the XML
// resources of an enterprise reporting server.
package models

// Config is the full run configuration: the organizations to authenticate
// against and the report jobs to process. It is loaded once at startup and
// never mutated afterwards.
type Config struct {
	// Orgs lists every organization referenced by a report job.
	Orgs []Org `json:"orgs"`

	// Reports lists the report jobs to process, strictly in this order.
	Reports []Report `json:"reports"`
}

// Org identifies an organization on the report server together with the
// credentials used for its resource requests. Empty credentials are filled
// from the environment at startup.
type Org struct {
	// Org is the server-side organization identifier (e.g. "acme").
	Org string `json:"org"`

	// Username authenticates resource requests for this organization.
	Username string `json:"username,omitempty"`

	// Password for Username. Usually left empty in checked-in
	// configurations and supplied via REPORTSERVER_PASSWORD instead.
	Password string `json:"password,omitempty"`
}

// Report describes one report job: which report and view to update and the
// desired value for each targeted input control.
type Report struct {
	// Org references an entry in Config.Orgs by its Org identifier.
	Org string `json:"org"`

	// ReportPath is the repository path of the report resource.
	ReportPath string `json:"reportPath"`

	// ViewPath is the repository path of the ad hoc view the report is
	// built on. The legal-value domain and the state document live here.
	ViewPath string `json:"viewPath"`

	// InputControls maps a control's display label to its desired value.
	// Multi-valued controls take a comma-joined list (e.g. "red, blue").
	InputControls map[string]string `json:"inputControls"`
}

// OrgByID looks up an organization record by identifier.
//
// Returns the org and true if found, a zero Org and false otherwise.
func (c *Config) OrgByID(id string) (Org, bool) {
	for _, org := range c.Orgs {
		if org.Org == id {
			return org, true
		}
	}
	return Org{}, false
}

// Domain holds the server-authoritative legal values for a view's input
// controls, keyed by control label, with option order as the server
// reported it. It is queried, never mutated.
type Domain map[string][]string

// Options returns the legal values for a control label.
//
// Returns the options and true if the label is known, nil and false otherwise.
func (d Domain) Options(label string) ([]string, bool) {
	options, ok := d[label]
	return options, ok
}
