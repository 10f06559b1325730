package handler

import (
	"net/http"

	"github.com/modulogestor/gestor-api/internal/usecases/visaogeral"
	"github.com/modulogestor/gestor-api/pkg/apiErrors"
	"github.com/modulogestor/gestor-api/pkg/log"
	"github.com/modulogestor/gestor-api/pkg/utils"
)

func GetOverview(service visaogeral.Summarizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		ano, ok := parseAno(w, r)
		if !ok {
			return
		}

		overview, err := service.Overview(r.Context(), ano)
		if err != nil {
			logger.WithField("ano", ano).WithError(err).Error("overview: falha ao montar visão geral")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "falha ao consultar a visão geral", nil)
			return
		}

		if err := utils.RespondJSON(w, overview); err != nil {
			logger.WithError(err).Error("overview: falha ao codificar resposta")
		}
	})
}
