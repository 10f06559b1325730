package handler

import (
	"net/http"

	"github.com/modulogestor/gestor-api/internal/usecases/suprimentos"
	"github.com/modulogestor/gestor-api/pkg/apiErrors"
	"github.com/modulogestor/gestor-api/pkg/log"
	"github.com/modulogestor/gestor-api/pkg/utils"
)

func GetPatrimonioResumo(service suprimentos.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		resumo, err := service.PatrimonioResumo(r.Context())
		if err != nil {
			logger.WithError(err).Error("suprimentos: falha ao montar resumo de patrimônio")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "falha ao consultar o resumo de patrimônio", nil)
			return
		}

		if err := utils.RespondJSON(w, resumo); err != nil {
			logger.WithError(err).Error("suprimentos: falha ao codificar resposta")
		}
	})
}

func GetAlmoxarifadoResumo(service suprimentos.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		ano, ok := parseAno(w, r)
		if !ok {
			return
		}

		mes, ok := parseMes(w, r)
		if !ok {
			return
		}

		resumo, err := service.AlmoxarifadoResumo(r.Context(), ano, mes)
		if err != nil {
			logger.WithFields(log.Fields{"ano": ano, "mes": mes}).WithError(err).Error("suprimentos: falha ao montar resumo de almoxarifado")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "falha ao consultar o resumo de almoxarifado", nil)
			return
		}

		if err := utils.RespondJSON(w, resumo); err != nil {
			logger.WithError(err).Error("suprimentos: falha ao codificar resposta")
		}
	})
}
