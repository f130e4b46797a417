package source

import (
	"context"

	"github.com/atif128873806/lead-intelligence-platfor/internal/domain"
)

// Source defines the interface for business data providers feeding the
// ingestion pipeline. A source turns a search request into raw business
// records; it performs no scoring, deduplication, or persistence.
type Source interface {
	// Name returns the stable identifier for this source.
	// Parameters: none.
	// Returns:
	//   - string: stable source identifier, stored on leads it produced.
	Name() string

	// Fetch retrieves business records matching the query.
	// Parameters:
	//   - ctx: context for cancellation and deadlines.
	//   - query: business category or free-text search term.
	//   - location: geographic qualifier, may be empty.
	//   - maxResults: maximum number of records to return.
	// Returns:
	//   - records: at most maxResults records in provider order.
	//   - err: non-nil if the provider call fails; never partial results.
	Fetch(ctx context.Context, query, location string, maxResults int) (records []domain.RawBusinessRecord, err error)
}
