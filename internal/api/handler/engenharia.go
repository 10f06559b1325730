package handler

import (
	"net/http"

	"github.com/modulogestor/gestor-api/internal/usecases/engenharia"
	"github.com/modulogestor/gestor-api/pkg/apiErrors"
	"github.com/modulogestor/gestor-api/pkg/log"
	"github.com/modulogestor/gestor-api/pkg/utils"
)

func GetObrasResumo(service engenharia.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		resumo, err := service.ObrasResumo(r.Context())
		if err != nil {
			logger.WithError(err).Error("engenharia: falha ao montar resumo de obras")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "falha ao consultar o resumo de obras", nil)
			return
		}

		if err := utils.RespondJSON(w, resumo); err != nil {
			logger.WithError(err).Error("engenharia: falha ao codificar resposta")
		}
	})
}

func GetConveniosResumo(service engenharia.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		resumo, err := service.ConveniosResumo(r.Context())
		if err != nil {
			logger.WithError(err).Error("engenharia: falha ao montar resumo de convênios")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "falha ao consultar o resumo de convênios", nil)
			return
		}

		if err := utils.RespondJSON(w, resumo); err != nil {
			logger.WithError(err).Error("engenharia: falha ao codificar resposta")
		}
	})
}
