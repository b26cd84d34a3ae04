package healthclient

import (
	"context"

	"github.com/eurofurence/reg-response-result/internal/envelope"
)

// HealthStatus is the payload of the health envelope sent by the /info/health endpoint.
type HealthStatus struct {
	Status string `json:"status"`
}

type HealthClient interface {
	// Probe calls the health endpoint of the downstream and returns its envelope.
	//
	// Transport errors and non-2xx responses yield downstreams.ErrDownStreamUnavailable.
	Probe(ctx context.Context) (*envelope.Result[HealthStatus], error)
}
