package tributos

import (
	"context"
	"testing"

	"github.com/modulogestor/gestor-api/infrastructure/repository/mocks"
	"github.com/modulogestor/gestor-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestTaxaInadimplencia(t *testing.T) {
	tests := []struct {
		name       string
		lancado    float64
		arrecadado float64
		expected   float64
	}{
		{
			name:       "Nada lançado devolve 0",
			lancado:    0,
			arrecadado: 500,
			expected:   0,
		},
		{
			name:       "Arrecadação parcial",
			lancado:    1000,
			arrecadado: 800,
			expected:   20,
		},
		{
			name:       "Arrecadação acima do lançado não fica negativa",
			lancado:    1000,
			arrecadado: 1200,
			expected:   0,
		},
		{
			name:       "Taxa arredondada em duas casas",
			lancado:    300,
			arrecadado: 200,
			expected:   33.33,
		},
		{
			name:       "Inadimplência total",
			lancado:    5000,
			arrecadado: 0,
			expected:   100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, taxaInadimplencia(tt.lancado, tt.arrecadado))
		})
	}
}

func TestService_IPTU(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTributoRepo := mocks.NewMockTributoRepository(ctrl)
	service := NewService(mockTributoRepo)

	ranking := []domain.BairroArrecadacao{
		{Bairro: "CENTRO", ValorArrecadado: 420000},
		{Bairro: "SAO JOSE", ValorArrecadado: 180000},
	}

	mockTributoRepo.EXPECT().IPTULancado(gomock.Any(), 2025).Return(1000000.0, nil)
	mockTributoRepo.EXPECT().IPTUArrecadado(gomock.Any(), 2025).Return(650000.0, nil)
	mockTributoRepo.EXPECT().RankingBairros(gomock.Any(), 2025).Return(ranking, nil)

	resumo, err := service.IPTU(context.Background(), 2025)

	assert.NoError(t, err)
	assert.Equal(t, 2025, resumo.Ano)
	assert.Equal(t, 1000000.0, resumo.IPTULancadoAno)
	assert.Equal(t, 650000.0, resumo.IPTUArrecadadoAno)
	assert.Equal(t, 35.0, resumo.TaxaInadimplencia)
	assert.Equal(t, ranking, resumo.RankingBairrosPorArrecadacao)
}

func TestService_DividaAtiva(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTributoRepo := mocks.NewMockTributoRepository(ctrl)
	service := NewService(mockTributoRepo)

	estoque := []domain.EstoqueDividaAtiva{
		{Tributo: "IPTU", Valor: 800000},
		{Tributo: "ISS", Valor: 350000},
	}

	mockTributoRepo.EXPECT().EstoqueDividaAtiva(gomock.Any(), 2025).Return(1150000.0, nil)
	mockTributoRepo.EXPECT().EstoquePorTributo(gomock.Any(), 2025).Return(estoque, nil)
	mockTributoRepo.EXPECT().ValorRecuperado(gomock.Any(), 2025).Return(95000.0, nil)
	mockTributoRepo.EXPECT().QuantidadeAcordos(gomock.Any(), 2025).Return(64, nil)

	resumo, err := service.DividaAtiva(context.Background(), 2025)

	assert.NoError(t, err)
	assert.Equal(t, 1150000.0, resumo.EstoqueDividaAtivaTotal)
	assert.Equal(t, estoque, resumo.EstoquePorTributo)
	assert.Equal(t, 95000.0, resumo.ValorRecuperadoAno)
	assert.Equal(t, 64, resumo.QuantidadeAcordosParcelamentoAno)
}

func TestService_ISS_ErroNoRepositorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTributoRepo := mocks.NewMockTributoRepository(ctrl)
	service := NewService(mockTributoRepo)

	mockTributoRepo.EXPECT().
		ISSDeclarado(gomock.Any(), 2025).
		Return(0.0, errors.New("conexão recusada"))

	resumo, err := service.ISS(context.Background(), 2025)

	assert.Error(t, err)
	assert.Nil(t, resumo)
	assert.Contains(t, err.Error(), "ISS declarado")
}
