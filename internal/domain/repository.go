package domain

import "context"

// Enricher defines the interface for the enrichment provider.
// Implementations never return an error: every outcome is a Result.
type Enricher interface {
	EnrichCompany(ctx context.Context, apiKey string, req CompanyRequest) Result
	EnrichContact(ctx context.Context, apiKey string, req PersonRequest) Result
}
