package handler

import (
	"net/http"

	"github.com/modulogestor/gestor-api/internal/usecases/financas"
	"github.com/modulogestor/gestor-api/pkg/apiErrors"
	"github.com/modulogestor/gestor-api/pkg/log"
	"github.com/modulogestor/gestor-api/pkg/utils"
)

func GetReceitaResumo(service financas.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		ano, ok := parseAnoObrigatorio(w, r)
		if !ok {
			return
		}

		resumo, err := service.ReceitaResumo(r.Context(), ano)
		if err != nil {
			logger.WithField("ano", ano).WithError(err).Error("financas: falha ao montar resumo de receita")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "falha ao consultar o resumo de receita", nil)
			return
		}

		if err := utils.RespondJSON(w, resumo); err != nil {
			logger.WithError(err).Error("financas: falha ao codificar resposta")
		}
	})
}

func GetDespesaResumo(service financas.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		ano, ok := parseAnoObrigatorio(w, r)
		if !ok {
			return
		}

		resumo, err := service.DespesaResumo(r.Context(), ano)
		if err != nil {
			logger.WithField("ano", ano).WithError(err).Error("financas: falha ao montar resumo de despesa")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "falha ao consultar o resumo de despesa", nil)
			return
		}

		if err := utils.RespondJSON(w, resumo); err != nil {
			logger.WithError(err).Error("financas: falha ao codificar resposta")
		}
	})
}
