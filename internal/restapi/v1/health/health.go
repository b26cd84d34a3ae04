package v1health

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eurofurence/reg-response-result/internal/envelope"
	"github.com/eurofurence/reg-response-result/internal/logging"
	"github.com/eurofurence/reg-response-result/internal/restapi/common"
)

type HealthResultDto struct {
	Status string `json:"status"`
}

func Create(server chi.Router) {
	server.Get("/info/health", healthGet)
	server.Get("/", healthGet)
}

func healthGet(w http.ResponseWriter, r *http.Request) {
	result := envelope.Ok(envelope.DefaultSuccessMessage, HealthResultDto{Status: "up"})
	common.SendResult(w, http.StatusOK, result, logging.LoggerFromContext(r.Context()))
}
