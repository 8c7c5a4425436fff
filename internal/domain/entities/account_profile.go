package entities

// AccountProfile is the public account record of a GitHub user.
type AccountProfile struct {
	Login       string
	Name        string // Display name; empty when the user has not set one
	PublicRepos *int   // nil when the API response omits the counter
	Followers   *int
	Following   *int
}
