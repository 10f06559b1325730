package handler

import (
	"net/http"

	"github.com/modulogestor/gestor-api/internal/usecases/pessoal"
	"github.com/modulogestor/gestor-api/pkg/apiErrors"
	"github.com/modulogestor/gestor-api/pkg/log"
	"github.com/modulogestor/gestor-api/pkg/utils"
)

func GetRHResumo(service pessoal.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		ano, ok := parseAno(w, r)
		if !ok {
			return
		}

		resumo, err := service.RHResumo(r.Context(), ano)
		if err != nil {
			logger.WithField("ano", ano).WithError(err).Error("pessoal: falha ao montar resumo de RH")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "falha ao consultar o resumo de RH", nil)
			return
		}

		if err := utils.RespondJSON(w, resumo); err != nil {
			logger.WithError(err).Error("pessoal: falha ao codificar resposta")
		}
	})
}
