package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/modulogestor/gestor-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/modulogestor/gestor-api/pkg/apiErrors"
)

type financasReporterStub struct {
	receita *domain.ReceitaResumoResponse
	despesa *domain.DespesaResumoResponse
	err     error
}

func (s *financasReporterStub) ReceitaResumo(_ context.Context, _ int) (*domain.ReceitaResumoResponse, error) {
	return s.receita, s.err
}

func (s *financasReporterStub) DespesaResumo(_ context.Context, _ int) (*domain.DespesaResumoResponse, error) {
	return s.despesa, s.err
}

func TestGetReceitaResumo(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		service        *financasReporterStub
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "Resumo montado com sucesso",
			target: "/dashboard/receita/resumo?ano=2025",
			service: &financasReporterStub{
				receita: &domain.ReceitaResumoResponse{Ano: 2025},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Ano ausente",
			target:         "/dashboard/receita/resumo",
			service:        &financasReporterStub{},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:           "Ano não numérico",
			target:         "/dashboard/receita/resumo?ano=abc",
			service:        &financasReporterStub{},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:   "Falha na consulta",
			target: "/dashboard/receita/resumo?ano=2025",
			service: &financasReporterStub{
				err: errors.New("conexão recusada"),
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)

			GetReceitaResumo(tt.service).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeAPIError(t, rec).Code)
			}
		})
	}
}

func TestGetDespesaResumo_Sucesso(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/despesa/resumo?ano=2025", nil)

	service := &financasReporterStub{despesa: &domain.DespesaResumoResponse{Ano: 2025}}
	GetDespesaResumo(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ano":2025`)
}
