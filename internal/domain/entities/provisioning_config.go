package entities

import (
	"fmt"
	"net/url"
)

// ProvisioningConfig is the immutable input of a provisioning run.
type ProvisioningConfig struct {
	Designation  string // e.g. "a1"
	Namespace    string // destination group, e.g. "ece459-1231"
	TemplatePath string // template project path, e.g. "ece459/ece459-a1"
	Token        string
}

// ProjectName derives the project name for the roster entry at the zero-based index.
// Individuals are named after the student, groups after the 1-based row number.
func (c ProvisioningConfig) ProjectName(entry RosterEntry, index int) string {
	if len(entry) == 1 {
		return fmt.Sprintf("%s-%s-%s", c.Namespace, c.Designation, entry[0])
	}
	return fmt.Sprintf("%s-%s-g%d", c.Namespace, c.Designation, index+1)
}

// ImportURL returns the template URL with the caller's credentials embedded.
func (c ProvisioningConfig) ImportURL(host, username string) string {
	//nolint:exhaustruct // only the fields needed for an authenticated HTTPS remote
	importURL := url.URL{
		Scheme: "https",
		User:   url.UserPassword(username, c.Token),
		Host:   host,
		Path:   "/" + c.TemplatePath + ".git",
	}
	return importURL.String()
}
