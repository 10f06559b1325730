package handler

import (
	"net/http"

	"github.com/modulogestor/gestor-api/internal/usecases/atendimento"
	"github.com/modulogestor/gestor-api/pkg/apiErrors"
	"github.com/modulogestor/gestor-api/pkg/log"
	"github.com/modulogestor/gestor-api/pkg/utils"
)

func GetProtocoloResumo(service atendimento.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		ano, ok := parseAno(w, r)
		if !ok {
			return
		}

		resumo, err := service.ProtocoloResumo(r.Context(), ano)
		if err != nil {
			logger.WithField("ano", ano).WithError(err).Error("atendimento: falha ao montar resumo de protocolo")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "falha ao consultar o resumo de protocolo", nil)
			return
		}

		if err := utils.RespondJSON(w, resumo); err != nil {
			logger.WithError(err).Error("atendimento: falha ao codificar resposta")
		}
	})
}

func GetEsicResumo(service atendimento.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		ano, ok := parseAno(w, r)
		if !ok {
			return
		}

		resumo, err := service.EsicResumo(r.Context(), ano)
		if err != nil {
			logger.WithField("ano", ano).WithError(err).Error("atendimento: falha ao montar resumo do e-SIC")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "falha ao consultar o resumo do e-SIC", nil)
			return
		}

		if err := utils.RespondJSON(w, resumo); err != nil {
			logger.WithError(err).Error("atendimento: falha ao codificar resposta")
		}
	})
}
