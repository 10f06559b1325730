package handler

import (
	"net/http"

	"github.com/modulogestor/gestor-api/internal/usecases/tributos"
	"github.com/modulogestor/gestor-api/pkg/apiErrors"
	"github.com/modulogestor/gestor-api/pkg/log"
	"github.com/modulogestor/gestor-api/pkg/utils"
)

func GetIPTU(service tributos.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		ano, ok := parseAno(w, r)
		if !ok {
			return
		}

		resumo, err := service.IPTU(r.Context(), ano)
		if err != nil {
			logger.WithField("ano", ano).WithError(err).Error("tributos: falha ao montar relatório de IPTU")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "falha ao consultar o relatório de IPTU", nil)
			return
		}

		if err := utils.RespondJSON(w, resumo); err != nil {
			logger.WithError(err).Error("tributos: falha ao codificar resposta")
		}
	})
}

func GetISS(service tributos.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		ano, ok := parseAno(w, r)
		if !ok {
			return
		}

		resumo, err := service.ISS(r.Context(), ano)
		if err != nil {
			logger.WithField("ano", ano).WithError(err).Error("tributos: falha ao montar relatório de ISS")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "falha ao consultar o relatório de ISS", nil)
			return
		}

		if err := utils.RespondJSON(w, resumo); err != nil {
			logger.WithError(err).Error("tributos: falha ao codificar resposta")
		}
	})
}

func GetDividaAtiva(service tributos.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		ano, ok := parseAno(w, r)
		if !ok {
			return
		}

		resumo, err := service.DividaAtiva(r.Context(), ano)
		if err != nil {
			logger.WithField("ano", ano).WithError(err).Error("tributos: falha ao montar relatório de dívida ativa")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "falha ao consultar o relatório de dívida ativa", nil)
			return
		}

		if err := utils.RespondJSON(w, resumo); err != nil {
			logger.WithError(err).Error("tributos: falha ao codificar resposta")
		}
	})
}
