package handler

import (
	"net/http"

	"github.com/modulogestor/gestor-api/internal/usecases/frotas"
	"github.com/modulogestor/gestor-api/pkg/apiErrors"
	"github.com/modulogestor/gestor-api/pkg/log"
	"github.com/modulogestor/gestor-api/pkg/utils"
)

func GetFrotasResumo(service frotas.Reporter) http.Handler {
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

		resumo, err := service.FrotasResumo(r.Context(), ano, mes)
		if err != nil {
			logger.WithFields(log.Fields{"ano": ano, "mes": mes}).WithError(err).Error("frotas: falha ao montar resumo de frotas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "falha ao consultar o resumo de frotas", nil)
			return
		}

		if err := utils.RespondJSON(w, resumo); err != nil {
			logger.WithError(err).Error("frotas: falha ao codificar resposta")
		}
	})
}

func GetTransporteEscolarResumo(service frotas.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		ano, ok := parseAno(w, r)
		if !ok {
			return
		}

		resumo, err := service.TransporteEscolarResumo(r.Context(), ano)
		if err != nil {
			logger.WithField("ano", ano).WithError(err).Error("frotas: falha ao montar resumo de transporte escolar")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "falha ao consultar o transporte escolar", nil)
			return
		}

		if err := utils.RespondJSON(w, resumo); err != nil {
			logger.WithError(err).Error("frotas: falha ao codificar resposta")
		}
	})
}
