package handler

import (
	"net/http"

	"github.com/modulogestor/gestor-api/pkg/log"
	"github.com/modulogestor/gestor-api/pkg/utils"
)

// HealthcheckHandler responde sem tocar no banco; serve para liveness probes
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := utils.RespondJSON(w, map[string]string{"status": "ok"}); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("healthcheck: falha ao codificar resposta")
		}
	})
}
