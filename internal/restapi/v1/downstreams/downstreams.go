package v1downstreams

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eurofurence/reg-response-result/internal/envelope"
	"github.com/eurofurence/reg-response-result/internal/interaction"
	"github.com/eurofurence/reg-response-result/internal/logging"
	"github.com/eurofurence/reg-response-result/internal/restapi/common"
)

type DownstreamListDto struct {
	Downstreams []string `json:"downstreams"`
}

type ProbeRequest struct {
	Name string
}

type downstreamHandler struct {
	interactor interaction.Interactor
}

func Create(router chi.Router, i interaction.Interactor) {
	handler := downstreamHandler{
		interactor: i,
	}

	router.Get("/downstreams", common.CreateHandler[struct{}, DownstreamListDto](
		handler.listEndpoint,
		common.NoRequestBody,
		common.SuccessResponseHandler[DownstreamListDto](envelope.DefaultSuccessMessage),
	))

	router.Get("/downstreams/{name}", common.CreateHandler[ProbeRequest, interaction.DownstreamStatus](
		handler.probeEndpoint,
		probeRequestHandler,
		common.SuccessResponseHandler[interaction.DownstreamStatus](envelope.DefaultSuccessMessage),
	))
}

func (h *downstreamHandler) listEndpoint(ctx context.Context, _ *struct{}, logger logging.Logger) (*DownstreamListDto, error) {
	return &DownstreamListDto{
		Downstreams: h.interactor.ListDownstreams(ctx),
	}, nil
}

func probeRequestHandler(r *http.Request) (*ProbeRequest, error) {
	return &ProbeRequest{
		Name: chi.URLParam(r, "name"),
	}, nil
}

func (h *downstreamHandler) probeEndpoint(ctx context.Context, request *ProbeRequest, logger logging.Logger) (*interaction.DownstreamStatus, error) {
	logger.Info("probing downstream %s on behalf of %s", request.Name, common.GetSubject(ctx))
	return h.interactor.ProbeDownstream(ctx, request.Name)
}
