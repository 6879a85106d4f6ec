package models

import "context"

// ReportClient is the contract with the reporting server.
//
// It is deliberately narrow: the pipeline edits XML resources locally and
// only needs to list legal input-control values, fetch raw resources and
// put them back. All session and authentication mechanics live behind the
// implementation.
//
// Every method returns a *TransportError on any server-side failure.
// Implementations need not be safe for concurrent use; the pipeline never
// has two calls in flight at once.
type ReportClient interface {
	// ListInputControls returns the legal-value domain for a view:
	// control label to ordered option values.
	ListInputControls(ctx context.Context, org, viewPath string) (Domain, error)

	// FetchResource returns the raw XML bytes of a repository resource.
	FetchResource(ctx context.Context, org, path string) ([]byte, error)

	// PutResource overwrites a repository resource with body, declaring
	// contentType to the server.
	PutResource(ctx context.Context, org, path string, body []byte, contentType string) error
}
