package entities

// AggregateRecord combines an account with its repositories.
// Artifacts may be empty but is never nil once retrieval succeeded.
type AggregateRecord struct {
	Profile   AccountProfile
	Artifacts []ArtifactSummary
}
