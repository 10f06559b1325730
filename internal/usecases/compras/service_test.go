package compras

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

func TestService_ContratosProximosVencimentos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLicitacaoRepo := mocks.NewMockLicitacaoRepository(ctrl)
	mockContratoRepo := mocks.NewMockContratoRepository(ctrl)

	hoje := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	service := &Service{
		licitacaoRepository: mockLicitacaoRepo,
		contratoRepository:  mockContratoRepo,
		agora:               func() time.Time { return hoje },
	}

	// A janela consultada deve ser [hoje, hoje+dias]
	fim := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

	mockContratoRepo.EXPECT().
		ProximosVencimentos(gomock.Any(), hoje, fim).
		Return([]repository.ContratoVencimentoRow{
			{
				ID:         31,
				Numero:     "042/2024",
				Fornecedor: "Construtora Alfa LTDA",
				Valor:      185000.50,
				DataFim:    time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
				Status:     "VIGENTE",
			},
		}, nil)

	resumo, err := service.ContratosProximosVencimentos(context.Background(), 90)

	assert.NoError(t, err)
	assert.Equal(t, 90, resumo.Dias)
	assert.Len(t, resumo.Contratos, 1)
	assert.Equal(t, domain.ContratoProximoVencimento{
		ID:         31,
		Numero:     "042/2024",
		Fornecedor: "Construtora Alfa LTDA",
		Valor:      185000.50,
		DataFim:    "2025-04-30",
		Status:     "VIGENTE",
	}, resumo.Contratos[0])
}

func TestService_ContratosProximosVencimentos_SemContratos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLicitacaoRepo := mocks.NewMockLicitacaoRepository(ctrl)
	mockContratoRepo := mocks.NewMockContratoRepository(ctrl)

	hoje := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	service := &Service{
		licitacaoRepository: mockLicitacaoRepo,
		contratoRepository:  mockContratoRepo,
		agora:               func() time.Time { return hoje },
	}

	mockContratoRepo.EXPECT().
		ProximosVencimentos(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]repository.ContratoVencimentoRow{}, nil)

	resumo, err := service.ContratosProximosVencimentos(context.Background(), 30)

	assert.NoError(t, err)
	assert.NotNil(t, resumo.Contratos)
	assert.Empty(t, resumo.Contratos)
}

func TestService_LicitacoesResumo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLicitacaoRepo := mocks.NewMockLicitacaoRepository(ctrl)
	mockContratoRepo := mocks.NewMockContratoRepository(ctrl)

	service := &Service{
		licitacaoRepository: mockLicitacaoRepo,
		contratoRepository:  mockContratoRepo,
		agora:               time.Now,
	}

	porStatus := []domain.LicitacaoStatusResumo{{Status: "HOMOLOGADA", Quantidade: 12}}
	porModalidade := []domain.LicitacaoModalidadeResumo{{Modalidade: "PREGAO ELETRONICO", Quantidade: 9}}

	mockLicitacaoRepo.EXPECT().QuantidadePorStatus(gomock.Any(), 2025).Return(porStatus, nil)
	mockLicitacaoRepo.EXPECT().QuantidadePorModalidade(gomock.Any(), 2025).Return(porModalidade, nil)
	mockLicitacaoRepo.EXPECT().ValorTotalLicitado(gomock.Any(), 2025).Return(2500000.0, nil)
	mockLicitacaoRepo.EXPECT().ValorTotalContratado(gomock.Any(), 2025).Return(2100000.0, nil)
	mockLicitacaoRepo.EXPECT().TempoMedioAberturaHomologacao(gomock.Any(), 2025).Return(34.5, nil)

	resumo, err := service.LicitacoesResumo(context.Background(), 2025)

	assert.NoError(t, err)
	assert.Equal(t, 2025, resumo.Ano)
	assert.Equal(t, porStatus, resumo.QuantidadeProcessosPorStatus)
	assert.Equal(t, porModalidade, resumo.QuantidadePorModalidade)
	assert.Equal(t, 2500000.0, resumo.ValorTotalLicitadoAno)
	assert.Equal(t, 2100000.0, resumo.ValorTotalContratadoAno)
	assert.Equal(t, 34.5, resumo.TempoMedioEntreAberturaEHomologacao)
}

func TestService_LicitacoesResumo_ErroNoRepositorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLicitacaoRepo := mocks.NewMockLicitacaoRepository(ctrl)
	mockContratoRepo := mocks.NewMockContratoRepository(ctrl)

	service := &Service{
		licitacaoRepository: mockLicitacaoRepo,
		contratoRepository:  mockContratoRepo,
		agora:               time.Now,
	}

	mockLicitacaoRepo.EXPECT().
		QuantidadePorStatus(gomock.Any(), 2025).
		Return(nil, errors.New("timeout"))

	resumo, err := service.LicitacoesResumo(context.Background(), 2025)

	assert.Error(t, err)
	assert.Nil(t, resumo)
	assert.Contains(t, err.Error(), "processos por status")
}
