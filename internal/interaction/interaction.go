package interaction

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/eurofurence/reg-response-result/internal/apierrors"
	"github.com/eurofurence/reg-response-result/internal/logging"
	"github.com/eurofurence/reg-response-result/internal/repository/downstreams/healthclient"
)

var _ Interactor = (*serviceInteractor)(nil)

type Interactor interface {
	// ListDownstreams returns the names of all configured downstreams, sorted.
	ListDownstreams(ctx context.Context) []string

	// ProbeDownstream calls the health endpoint of the named downstream.
	//
	// Returns a not found status error for unknown names, and a bad gateway status error
	// if the downstream cannot be reached or reports a failure.
	ProbeDownstream(ctx context.Context, name string) (*DownstreamStatus, error)
}

type DownstreamStatus struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type serviceInteractor struct {
	logger  logging.Logger
	clients map[string]healthclient.HealthClient
}

func NewServiceInteractor(clients map[string]healthclient.HealthClient, logger logging.Logger) (Interactor, error) {
	if clients == nil {
		return nil, errors.New("downstream clients must not be nil")
	}

	if logger == nil {
		logger = logging.NewNoopLogger()
	}

	return &serviceInteractor{
		logger:  logger,
		clients: clients,
	}, nil
}

func (s *serviceInteractor) ListDownstreams(ctx context.Context) []string {
	names := make([]string, 0, len(s.clients))
	for name := range s.clients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *serviceInteractor) ProbeDownstream(ctx context.Context, name string) (*DownstreamStatus, error) {
	client, ok := s.clients[name]
	if !ok {
		return nil, apierrors.NewNotFound("downstream not found", name)
	}

	result, err := client.Probe(ctx)
	if err != nil {
		s.logger.Warn("probe of downstream %s failed: %v", name, err)
		return nil, apierrors.NewBadGateway("downstream unavailable", name)
	}

	if !result.IsOk() {
		s.logger.Warn("downstream %s reported a failure: %s", name, result)
		return nil, apierrors.NewBadGateway("downstream unavailable", fmt.Sprintf("%s: %s", name, result.Message()))
	}

	status := &DownstreamStatus{
		Name:    name,
		Status:  "unknown",
		Message: result.Message(),
	}
	if data := result.Data(); data != nil && data.Status != "" {
		status.Status = data.Status
	}

	return status, nil
}
