package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/modulogestor/gestor-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
)

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	return apiErr
}

func TestParseAno(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		expectedOK   bool
		expectedAno  int
		expectedCode string
	}{
		{
			name:        "Ano informado",
			query:       "ano=2024",
			expectedOK:  true,
			expectedAno: 2024,
		},
		{
			name:         "Ano não numérico",
			query:        "ano=abc",
			expectedOK:   false,
			expectedCode: apiErrors.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/dashboard/teste?"+tt.query, nil)

			ano, ok := parseAno(rec, req)

			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, tt.expectedAno, ano)
				return
			}

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.expectedCode, decodeAPIError(t, rec).Code)
		})
	}
}

func TestParseAno_AssumeExercicioCorrente(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard/teste", nil)

	ano, ok := parseAno(rec, req)

	assert.True(t, ok)
	assert.NotZero(t, ano)
}

func TestParseAnoObrigatorio(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		expectedOK   bool
		expectedAno  int
		expectedCode string
	}{
		{
			name:        "Ano informado",
			query:       "ano=2025",
			expectedOK:  true,
			expectedAno: 2025,
		},
		{
			name:         "Ano ausente",
			query:        "",
			expectedOK:   false,
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:         "Ano não numérico",
			query:        "ano=vinte",
			expectedOK:   false,
			expectedCode: apiErrors.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/dashboard/teste?"+tt.query, nil)

			ano, ok := parseAnoObrigatorio(rec, req)

			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, tt.expectedAno, ano)
				return
			}

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.expectedCode, decodeAPIError(t, rec).Code)
		})
	}
}

func TestParseMes(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		expectedOK   bool
		expectedMes  int
		expectedCode string
	}{
		{
			name:        "Mês válido",
			query:       "mes=7",
			expectedOK:  true,
			expectedMes: 7,
		},
		{
			name:        "Limite inferior",
			query:       "mes=1",
			expectedOK:  true,
			expectedMes: 1,
		},
		{
			name:        "Limite superior",
			query:       "mes=12",
			expectedOK:  true,
			expectedMes: 12,
		},
		{
			name:         "Mês acima do intervalo",
			query:        "mes=13",
			expectedOK:   false,
			expectedCode: apiErrors.ErrInvalidRequest,
		},
		{
			name:         "Mês abaixo do intervalo",
			query:        "mes=0",
			expectedOK:   false,
			expectedCode: apiErrors.ErrInvalidRequest,
		},
		{
			name:         "Mês não numérico",
			query:        "mes=janeiro",
			expectedOK:   false,
			expectedCode: apiErrors.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/dashboard/teste?"+tt.query, nil)

			mes, ok := parseMes(rec, req)

			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, tt.expectedMes, mes)
				return
			}

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.expectedCode, decodeAPIError(t, rec).Code)
		})
	}
}

func TestParseDias(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		expectedOK   bool
		expectedDias int
		expectedCode string
	}{
		{
			name:         "Dias ausente usa o padrão",
			query:        "",
			expectedOK:   true,
			expectedDias: 90,
		},
		{
			name:         "Dias informado",
			query:        "dias=30",
			expectedOK:   true,
			expectedDias: 30,
		},
		{
			name:         "Dias zerado",
			query:        "dias=0",
			expectedOK:   false,
			expectedCode: apiErrors.ErrInvalidRequest,
		},
		{
			name:         "Dias negativo",
			query:        "dias=-5",
			expectedOK:   false,
			expectedCode: apiErrors.ErrInvalidRequest,
		},
		{
			name:         "Dias não numérico",
			query:        "dias=muitos",
			expectedOK:   false,
			expectedCode: apiErrors.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/dashboard/teste?"+tt.query, nil)

			dias, ok := parseDias(rec, req, 90)

			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, tt.expectedDias, dias)
				return
			}

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.expectedCode, decodeAPIError(t, rec).Code)
		})
	}
}
