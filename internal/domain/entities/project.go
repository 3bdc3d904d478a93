package entities

// Destination holds the identifiers resolved once per run by the namespace lookup.
type Destination struct {
	Username    string // authenticated caller, embedded in the import URL
	NamespaceID int64
}

// ProvisionedProject is a project created for one roster entry. ID is zero on failure.
type ProvisionedProject struct {
	Name        string
	ID          int64
	NamespaceID int64
}

// CreateProjectInput describes a project creation request.
type CreateProjectInput struct {
	Name          string
	NamespaceID   int64
	DefaultBranch string
	ImportURL     string
}
