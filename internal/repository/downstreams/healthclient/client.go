package healthclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	aurestclientapi "github.com/StephanHCB/go-autumn-restclient/api"

	"github.com/eurofurence/reg-response-result/internal/envelope"
	"github.com/eurofurence/reg-response-result/internal/logging"
	"github.com/eurofurence/reg-response-result/internal/repository/downstreams"
)

type Impl struct {
	client  aurestclientapi.Client
	baseUrl string
}

func New(name string, baseUrl string, fixedApiToken string) (HealthClient, error) {
	if baseUrl == "" {
		return nil, fmt.Errorf("service.downstreams.%s not configured", name)
	}

	client, err := downstreams.ClientWith(
		downstreams.ApiTokenRequestManipulator(fixedApiToken),
		fmt.Sprintf("%s-breaker", name),
	)
	if err != nil {
		return nil, err
	}

	return &Impl{
		client:  client,
		baseUrl: baseUrl,
	}, nil
}

func (i *Impl) Probe(ctx context.Context) (*envelope.Result[HealthStatus], error) {
	url := fmt.Sprintf("%s/info/health", i.baseUrl)
	bodyDto := envelope.DefaultError[HealthStatus]()
	response := aurestclientapi.ParsedResponse{
		Body: bodyDto,
	}

	err := i.client.Perform(ctx, http.MethodGet, url, nil, &response)
	if err = downstreams.ErrByStatus(err, response.Status); err != nil {
		logging.LoggerFromContext(ctx).Warn("health probe %s failed: %v", url, err)
		if errors.Is(err, downstreams.ErrDownStreamUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", downstreams.ErrDownStreamUnavailable, err)
	}

	return bodyDto, nil
}
