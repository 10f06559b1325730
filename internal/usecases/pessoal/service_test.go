package pessoal

import (
	"context"
	"testing"

	"github.com/modulogestor/gestor-api/infrastructure/repository/mocks"
	"github.com/modulogestor/gestor-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPercentualSobreRCL(t *testing.T) {
	tests := []struct {
		name     string
		gasto    float64
		rcl      float64
		expected *float64
	}{
		{
			name:     "Sem RCL apurada devolve nil",
			gasto:    1000000,
			rcl:      0,
			expected: nil,
		},
		{
			name:     "Percentual arredondado em duas casas",
			gasto:    48500000,
			rcl:      90000000,
			expected: float64Ptr(53.89),
		},
		{
			name:     "Gasto zerado com RCL apurada devolve 0",
			gasto:    0,
			rcl:      90000000,
			expected: float64Ptr(0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := percentualSobreRCL(tt.gasto, tt.rcl)
			if tt.expected == nil {
				assert.Nil(t, result)
				return
			}
			assert.NotNil(t, result)
			assert.Equal(t, *tt.expected, *result)
		})
	}
}

func TestService_RHResumo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRHRepo := mocks.NewMockRHRepository(ctrl)
	service := NewService(mockRHRepo)

	mensal := []domain.SerieMensal{{Mes: 1, Valor: 4000000}, {Mes: 2, Valor: 4100000}}
	porVinculo := []domain.HeadcountResumo{{Categoria: "EFETIVO", Quantidade: 812}}
	porOrgao := []domain.HeadcountResumo{{Categoria: "SECRETARIA DE EDUCACAO", Quantidade: 430}}

	mockRHRepo.EXPECT().GastoPessoalAno(gomock.Any(), 2025).Return(48500000.0, nil)
	mockRHRepo.EXPECT().GastoPessoalMensal(gomock.Any(), 2025).Return(mensal, nil)
	mockRHRepo.EXPECT().ReceitaCorrenteLiquida(gomock.Any(), 2025).Return(90000000.0, nil)
	mockRHRepo.EXPECT().HeadcountPorVinculo(gomock.Any()).Return(porVinculo, nil)
	mockRHRepo.EXPECT().HeadcountPorOrgao(gomock.Any()).Return(porOrgao, nil)
	mockRHRepo.EXPECT().EventosPorDescricao(gomock.Any(), 2025, padraoFerias).Return(120, nil)
	mockRHRepo.EXPECT().EventosPorDescricao(gomock.Any(), 2025, padraoLicencas).Return(35, nil)
	mockRHRepo.EXPECT().EventosPorDescricao(gomock.Any(), 2025, padraoRescisoes).Return(18, nil)

	resumo, err := service.RHResumo(context.Background(), 2025)

	assert.NoError(t, err)
	assert.Equal(t, 2025, resumo.Ano)
	assert.Equal(t, 48500000.0, resumo.GastoPessoalAno)
	assert.Equal(t, mensal, resumo.GastoPessoalMensal)
	assert.NotNil(t, resumo.PercentualDespesaPessoalSobreRCL)
	assert.Equal(t, 53.89, *resumo.PercentualDespesaPessoalSobreRCL)
	assert.Equal(t, porVinculo, resumo.HeadcountPorTipoVinculo)
	assert.Equal(t, porOrgao, resumo.HeadcountPorOrgao)
	assert.Equal(t, 120, resumo.QtdeFeriasNoPeriodo)
	assert.Equal(t, 35, resumo.QtdeLicencas)
	assert.Equal(t, 18, resumo.QtdeRescisoes)
}

func TestService_RHResumo_SemRCL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRHRepo := mocks.NewMockRHRepository(ctrl)
	service := NewService(mockRHRepo)

	mockRHRepo.EXPECT().GastoPessoalAno(gomock.Any(), 2025).Return(48500000.0, nil)
	mockRHRepo.EXPECT().GastoPessoalMensal(gomock.Any(), 2025).Return([]domain.SerieMensal{}, nil)
	mockRHRepo.EXPECT().ReceitaCorrenteLiquida(gomock.Any(), 2025).Return(0.0, nil)
	mockRHRepo.EXPECT().HeadcountPorVinculo(gomock.Any()).Return([]domain.HeadcountResumo{}, nil)
	mockRHRepo.EXPECT().HeadcountPorOrgao(gomock.Any()).Return([]domain.HeadcountResumo{}, nil)
	mockRHRepo.EXPECT().EventosPorDescricao(gomock.Any(), 2025, gomock.Any()).Return(0, nil).Times(3)

	resumo, err := service.RHResumo(context.Background(), 2025)

	assert.NoError(t, err)
	// Sem base de cálculo o percentual fica indefinido, não 0%
	assert.Nil(t, resumo.PercentualDespesaPessoalSobreRCL)
}

func TestService_RHResumo_ErroNoRepositorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRHRepo := mocks.NewMockRHRepository(ctrl)
	service := NewService(mockRHRepo)

	mockRHRepo.EXPECT().
		GastoPessoalAno(gomock.Any(), 2025).
		Return(0.0, errors.New("timeout"))

	resumo, err := service.RHResumo(context.Background(), 2025)

	assert.Error(t, err)
	assert.Nil(t, resumo)
	assert.Contains(t, err.Error(), "gasto de pessoal")
}

func float64Ptr(f float64) *float64 {
	return &f
}
