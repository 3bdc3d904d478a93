package entities

// ResolvedIdentity pairs a roster identity with its platform user, if one was found.
type ResolvedIdentity struct {
	Identity string `yaml:"identity"`
	UserID   int64  `yaml:"user_id,omitempty"`
	Resolved bool   `yaml:"resolved"`
}

// UserIDs returns the platform ids of the resolved identities, in roster order.
func UserIDs(identities []ResolvedIdentity) []int64 {
	ids := make([]int64, 0, len(identities))
	for _, identity := range identities {
		if identity.Resolved {
			ids = append(ids, identity.UserID)
		}
	}
	return ids
}
