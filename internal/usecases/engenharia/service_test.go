package engenharia

import (
	"context"
	"testing"
	"time"

	"github.com/modulogestor/gestor-api/infrastructure/repository"
	"github.com/modulogestor/gestor-api/infrastructure/repository/mocks"
	"github.com/modulogestor/gestor-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_classificaRisco(t *testing.T) {
	hoje := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	service := &Service{execucaoMinimaPct: 30}

	ontem := hoje.AddDate(0, 0, -1)
	amanha := hoje.AddDate(0, 0, 1)

	tests := []struct {
		name            string
		percentual      float64
		dataFimPrevista *time.Time
		expected        string
	}{
		{
			name:            "Prazo vencido prevalece mesmo com execução alta",
			percentual:      95,
			dataFimPrevista: &ontem,
			expected:        RiscoPrazoExpirado,
		},
		{
			name:            "Vencimento exatamente hoje ainda não expira",
			percentual:      10,
			dataFimPrevista: &hoje,
			expected:        RiscoBaixaExecucao,
		},
		{
			name:            "Execução abaixo do mínimo com prazo em dia",
			percentual:      29.99,
			dataFimPrevista: &amanha,
			expected:        RiscoBaixaExecucao,
		},
		{
			name:            "Execução no limite mínimo é regular",
			percentual:      30,
			dataFimPrevista: &amanha,
			expected:        RiscoRegular,
		},
		{
			name:            "Sem data prevista avalia apenas a execução",
			percentual:      50,
			dataFimPrevista: nil,
			expected:        RiscoRegular,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.classificaRisco(tt.percentual, tt.dataFimPrevista, hoje))
		})
	}
}

func TestPercentualExecucao(t *testing.T) {
	tests := []struct {
		name        string
		totalPago   float64
		valorGlobal float64
		expected    float64
	}{
		{
			name:        "Valor global zerado devolve 0",
			totalPago:   5000,
			valorGlobal: 0,
			expected:    0,
		},
		{
			name:        "Percentual arredondado em duas casas",
			totalPago:   1000,
			valorGlobal: 3000,
			expected:    33.33,
		},
		{
			name:        "Execução completa",
			totalPago:   200000,
			valorGlobal: 200000,
			expected:    100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, percentualExecucao(tt.totalPago, tt.valorGlobal))
		})
	}
}

func TestService_ConveniosResumo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockObraRepo := mocks.NewMockObraRepository(ctrl)
	mockConvenioRepo := mocks.NewMockConvenioRepository(ctrl)

	hoje := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	service := &Service{
		obraRepository:     mockObraRepo,
		convenioRepository: mockConvenioRepo,
		execucaoMinimaPct:  30,
		agora:              func() time.Time { return hoje },
	}

	ontem := hoje.AddDate(0, 0, -1)
	proximoAno := hoje.AddDate(1, 0, 0)

	porOrgao := []domain.ConvenioPorOrgao{
		{OrgaoRepassador: "FNDE", Quantidade: 2, ValorGlobal: 300000},
	}

	mockConvenioRepo.EXPECT().
		PorOrgaoRepassador(gomock.Any()).
		Return(porOrgao, nil)

	mockConvenioRepo.EXPECT().
		ExecucaoFinanceira(gomock.Any()).
		Return([]repository.ConvenioExecucaoRow{
			{ConvenioID: 1, Descricao: "Pavimentação", ValorGlobal: 100000, TotalPago: 80000, DataFimPrevista: &proximoAno},
			{ConvenioID: 2, Descricao: "Creche", ValorGlobal: 200000, TotalPago: 20000, DataFimPrevista: &proximoAno},
			{ConvenioID: 3, Descricao: "Quadra", ValorGlobal: 0, TotalPago: 5000, DataFimPrevista: &ontem},
			{ConvenioID: 4, Descricao: "Posto de saúde", ValorGlobal: 50000, TotalPago: 25000, DataFimPrevista: &hoje},
		}, nil)

	resumo, err := service.ConveniosResumo(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, porOrgao, resumo.QtdeConveniosPorOrgaoRepassador)

	// Ordenados do menos executado para o mais executado
	assert.Len(t, resumo.PercentualExecucaoFinanceiraPorConvenio, 4)
	assert.Equal(t, int64(3), resumo.PercentualExecucaoFinanceiraPorConvenio[0].ConvenioID)
	assert.Equal(t, int64(2), resumo.PercentualExecucaoFinanceiraPorConvenio[1].ConvenioID)
	assert.Equal(t, int64(4), resumo.PercentualExecucaoFinanceiraPorConvenio[2].ConvenioID)
	assert.Equal(t, int64(1), resumo.PercentualExecucaoFinanceiraPorConvenio[3].ConvenioID)

	assert.Equal(t, 0.0, resumo.PercentualExecucaoFinanceiraPorConvenio[0].PercentualExecucaoFinanceira)
	assert.Equal(t, RiscoPrazoExpirado, resumo.PercentualExecucaoFinanceiraPorConvenio[0].Risco)
	assert.Equal(t, 10.0, resumo.PercentualExecucaoFinanceiraPorConvenio[1].PercentualExecucaoFinanceira)
	assert.Equal(t, RiscoBaixaExecucao, resumo.PercentualExecucaoFinanceiraPorConvenio[1].Risco)

	// Vencimento exatamente hoje com execução acima do mínimo segue regular
	assert.Equal(t, 50.0, resumo.PercentualExecucaoFinanceiraPorConvenio[2].PercentualExecucaoFinanceira)
	assert.Equal(t, RiscoRegular, resumo.PercentualExecucaoFinanceiraPorConvenio[2].Risco)
	assert.Equal(t, RiscoRegular, resumo.PercentualExecucaoFinanceiraPorConvenio[3].Risco)

	// Apenas os classificados fora de regular entram na lista de risco
	assert.Len(t, resumo.ConveniosEmRisco, 2)
	assert.Equal(t, int64(3), resumo.ConveniosEmRisco[0].ConvenioID)
	assert.Equal(t, int64(2), resumo.ConveniosEmRisco[1].ConvenioID)
}

func TestService_ConveniosResumo_DesempatePorID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockObraRepo := mocks.NewMockObraRepository(ctrl)
	mockConvenioRepo := mocks.NewMockConvenioRepository(ctrl)

	hoje := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	service := &Service{
		obraRepository:     mockObraRepo,
		convenioRepository: mockConvenioRepo,
		execucaoMinimaPct:  30,
		agora:              func() time.Time { return hoje },
	}

	mockConvenioRepo.EXPECT().
		PorOrgaoRepassador(gomock.Any()).
		Return([]domain.ConvenioPorOrgao{}, nil)

	mockConvenioRepo.EXPECT().
		ExecucaoFinanceira(gomock.Any()).
		Return([]repository.ConvenioExecucaoRow{
			{ConvenioID: 9, Descricao: "B", ValorGlobal: 100, TotalPago: 50},
			{ConvenioID: 4, Descricao: "A", ValorGlobal: 100, TotalPago: 50},
		}, nil)

	resumo, err := service.ConveniosResumo(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(4), resumo.PercentualExecucaoFinanceiraPorConvenio[0].ConvenioID)
	assert.Equal(t, int64(9), resumo.PercentualExecucaoFinanceiraPorConvenio[1].ConvenioID)
}

func TestService_ObrasResumo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockObraRepo := mocks.NewMockObraRepository(ctrl)
	mockConvenioRepo := mocks.NewMockConvenioRepository(ctrl)

	hoje := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	service := &Service{
		obraRepository:     mockObraRepo,
		convenioRepository: mockConvenioRepo,
		execucaoMinimaPct:  30,
		agora:              func() time.Time { return hoje },
	}

	porSituacao := []domain.ObrasPorSituacao{
		{Situacao: "EM EXECUCAO", Quantidade: 7},
		{Situacao: "PARALISADA", Quantidade: 2},
	}

	mockObraRepo.EXPECT().
		PorSituacao(gomock.Any()).
		Return(porSituacao, nil)

	mockObraRepo.EXPECT().
		ExecucaoFisicaMedia(gomock.Any()).
		Return(47.126, nil)

	mockObraRepo.EXPECT().
		Atrasadas(gomock.Any(), hoje).
		Return([]repository.ObraAtrasadaRow{
			{ID: 12, Descricao: "Ponte do rio", DataFimPrevista: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), Situacao: "EM EXECUCAO"},
		}, nil)

	resumo, err := service.ObrasResumo(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, porSituacao, resumo.QtdeObrasPorSituacao)
	assert.Equal(t, 47.13, resumo.ExecucaoFisicaMedia)
	assert.Len(t, resumo.ObrasAtrasadas, 1)
	assert.Equal(t, "2025-03-31", resumo.ObrasAtrasadas[0].DataFimPrevista)
}

func TestService_ObrasResumo_ErroNoRepositorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockObraRepo := mocks.NewMockObraRepository(ctrl)
	mockConvenioRepo := mocks.NewMockConvenioRepository(ctrl)

	service := &Service{
		obraRepository:     mockObraRepo,
		convenioRepository: mockConvenioRepo,
		execucaoMinimaPct:  30,
		agora:              time.Now,
	}

	mockObraRepo.EXPECT().
		PorSituacao(gomock.Any()).
		Return(nil, errors.New("conexão recusada"))

	resumo, err := service.ObrasResumo(context.Background())

	assert.Error(t, err)
	assert.Nil(t, resumo)
	assert.Contains(t, err.Error(), "obras por situação")
}
