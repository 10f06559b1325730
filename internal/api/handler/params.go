package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/modulogestor/gestor-api/pkg/apiErrors"
)

// parseAno lê o parâmetro ano; na ausência assume o exercício corrente.
func parseAno(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("ano")
	if raw == "" {
		return time.Now().Year(), true
	}

	ano, err := strconv.Atoi(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "parâmetro ano deve ser um inteiro", map[string]string{"ano": raw})
		return 0, false
	}

	return ano, true
}

// parseAnoObrigatorio exige o parâmetro ano na query string.
func parseAnoObrigatorio(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("ano")
	if raw == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "parâmetro ano é obrigatório", nil)
		return 0, false
	}

	ano, err := strconv.Atoi(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "parâmetro ano deve ser um inteiro", map[string]string{"ano": raw})
		return 0, false
	}

	return ano, true
}

// parseMes lê o parâmetro mes (1 a 12); na ausência assume o mês corrente.
func parseMes(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("mes")
	if raw == "" {
		return int(time.Now().Month()), true
	}

	mes, err := strconv.Atoi(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "parâmetro mes deve ser um inteiro", map[string]string{"mes": raw})
		return 0, false
	}

	if mes < 1 || mes > 12 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "parâmetro mes deve estar entre 1 e 12", map[string]string{"mes": raw})
		return 0, false
	}

	return mes, true
}

// parseDias lê o parâmetro dias (janela em dias, > 0) com valor padrão.
func parseDias(w http.ResponseWriter, r *http.Request, padrao int) (int, bool) {
	raw := r.URL.Query().Get("dias")
	if raw == "" {
		return padrao, true
	}

	dias, err := strconv.Atoi(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "parâmetro dias deve ser um inteiro", map[string]string{"dias": raw})
		return 0, false
	}

	if dias <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, fmt.Sprintf("parâmetro dias deve ser maior que zero, recebido %d", dias), nil)
		return 0, false
	}

	return dias, true
}
