package handler

import (
	"net/http"

	"github.com/modulogestor/gestor-api/internal/usecases/compras"
	"github.com/modulogestor/gestor-api/pkg/apiErrors"
	"github.com/modulogestor/gestor-api/pkg/log"
	"github.com/modulogestor/gestor-api/pkg/utils"
)

func GetLicitacoesResumo(service compras.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		ano, ok := parseAnoObrigatorio(w, r)
		if !ok {
			return
		}

		resumo, err := service.LicitacoesResumo(r.Context(), ano)
		if err != nil {
			logger.WithField("ano", ano).WithError(err).Error("compras: falha ao montar resumo de licitações")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "falha ao consultar o resumo de licitações", nil)
			return
		}

		if err := utils.RespondJSON(w, resumo); err != nil {
			logger.WithError(err).Error("compras: falha ao codificar resposta")
		}
	})
}

func GetContratosProximosVencimentos(service compras.Reporter, diasPadrao int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dias, ok := parseDias(w, r, diasPadrao)
		if !ok {
			return
		}

		resumo, err := service.ContratosProximosVencimentos(r.Context(), dias)
		if err != nil {
			logger.WithField("dias", dias).WithError(err).Error("compras: falha ao listar contratos a vencer")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "falha ao consultar contratos a vencer", nil)
			return
		}

		if err := utils.RespondJSON(w, resumo); err != nil {
			logger.WithError(err).Error("compras: falha ao codificar resposta")
		}
	})
}
