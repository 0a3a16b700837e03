package models

// Group names a set of profiles that share one SSO start URL and region.
type Group struct {
	Name     string
	StartURL string
	Region   string
	Profiles []string
}

// Profile is one account/role pair targeted by a refresh.
type Profile struct {
	Name      string
	AccountID string
	Role      string
	// Assumes lists further profile sections to populate by assuming their
	// role with this profile's credentials. Empty when no chaining is
	// configured.
	Assumes []string
}
