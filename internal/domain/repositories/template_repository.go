package repositories

import "context"

// TemplateRepository inspects the template repository before anything is created.
type TemplateRepository interface {
	// HasBranch reports whether the remote at url (credentials embedded) has the branch.
	HasBranch(ctx context.Context, url, branch string) (bool, error)
}
