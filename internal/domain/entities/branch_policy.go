package entities

// AccessLevel mirrors the platform permission tiers used by this tool.
type AccessLevel int

const (
	DeveloperAccess AccessLevel = 30
	AdminAccess     AccessLevel = 60
)

// BranchProtectionPolicy is the protection applied to every new project's default branch.
type BranchProtectionPolicy struct {
	Branch          string
	AllowForcePush  bool
	PushAccess      AccessLevel
	MergeAccess     AccessLevel
	UnprotectAccess AccessLevel
}

// DefaultBranchProtectionPolicy returns the fixed policy for the given default branch.
func DefaultBranchProtectionPolicy(branch string) BranchProtectionPolicy {
	return BranchProtectionPolicy{
		Branch:          branch,
		AllowForcePush:  false,
		PushAccess:      DeveloperAccess,
		MergeAccess:     DeveloperAccess,
		UnprotectAccess: AdminAccess,
	}
}
